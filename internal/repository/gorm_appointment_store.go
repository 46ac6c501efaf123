package repository

import (
	"context"
	"fmt"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"

	"gorm.io/gorm"
)

// gormAppointmentStore maps the store contract onto an appointments table.
// SaveAll replaces the table contents inside one transaction, so concurrent
// readers see the old or the new collection.
type gormAppointmentStore struct {
	db *gorm.DB
}

func NewGormAppointmentStore(db *gorm.DB) domainRepo.AppointmentStore {
	return &gormAppointmentStore{db: db}
}

func (s *gormAppointmentStore) LoadAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: load appointments: %v", domainRepo.ErrStorage, err)
	}
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return appointments, nil
}

func (s *gormAppointmentStore) SaveAll(ctx context.Context, appointments []entity.Appointment) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if len(appointments) == 0 {
			return nil
		}
		return tx.Create(&appointments).Error
	})
	if err != nil {
		return fmt.Errorf("%w: save appointments: %v", domainRepo.ErrStorage, err)
	}
	return nil
}
