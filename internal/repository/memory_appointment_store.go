package repository

import (
	"context"
	"sync"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"
)

// memoryAppointmentStore holds the collection in process memory. Used by the
// "memory" storage driver and by tests.
type memoryAppointmentStore struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
}

func NewMemoryAppointmentStore() domainRepo.AppointmentStore {
	return &memoryAppointmentStore{}
}

func (s *memoryAppointmentStore) LoadAll(ctx context.Context) ([]entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}

func (s *memoryAppointmentStore) SaveAll(ctx context.Context, appointments []entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = make([]entity.Appointment, len(appointments))
	copy(s.appointments, appointments)
	return nil
}
