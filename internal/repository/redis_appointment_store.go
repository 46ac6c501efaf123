package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for the persisted appointment collection
const appointmentsKeyPrefix = "scheduling:appointments:"

// redisAppointmentStore keeps the serialized collection under a single
// namespaced key. GET and SET of one value are atomic on the server, which
// gives SaveAll its old-or-new guarantee for free.
type redisAppointmentStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisAppointmentStore(client *redis.Client, namespace string) domainRepo.AppointmentStore {
	return &redisAppointmentStore{client: client, namespace: namespace}
}

func (s *redisAppointmentStore) key() string {
	return appointmentsKeyPrefix + s.namespace
}

func (s *redisAppointmentStore) LoadAll(ctx context.Context) ([]entity.Appointment, error) {
	data, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", domainRepo.ErrStorage, s.key(), err)
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("%w: malformed payload at %s: %v", domainRepo.ErrStorage, s.key(), err)
	}
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return appointments, nil
}

func (s *redisAppointmentStore) SaveAll(ctx context.Context, appointments []entity.Appointment) error {
	data, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("%w: encode appointments: %v", domainRepo.ErrStorage, err)
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", domainRepo.ErrStorage, s.key(), err)
	}
	return nil
}
