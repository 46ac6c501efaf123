package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"
)

// fileAppointmentStore persists the appointment collection as a single JSON
// file named after the namespace. Writes go through a temp file plus rename
// so a reader never observes a torn payload.
type fileAppointmentStore struct {
	dir       string
	namespace string
	mu        sync.Mutex
}

func NewFileAppointmentStore(dir, namespace string) domainRepo.AppointmentStore {
	return &fileAppointmentStore{dir: dir, namespace: namespace}
}

func (s *fileAppointmentStore) path() string {
	return filepath.Join(s.dir, s.namespace+".json")
}

func (s *fileAppointmentStore) LoadAll(ctx context.Context) ([]entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domainRepo.ErrStorage, s.path(), err)
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		// Corrupted payloads are surfaced, not coerced to an empty collection.
		return nil, fmt.Errorf("%w: malformed payload in %s: %v", domainRepo.ErrStorage, s.path(), err)
	}
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return appointments, nil
}

func (s *fileAppointmentStore) SaveAll(ctx context.Context, appointments []entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(appointments, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode appointments: %v", domainRepo.ErrStorage, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", domainRepo.ErrStorage, s.dir, err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", domainRepo.ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domainRepo.ErrStorage, s.path(), err)
	}
	return nil
}
