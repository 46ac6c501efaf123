package entity_test

import (
	"testing"
	"time"

	"go-salon-scheduling/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestOccupies(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	appointment := entity.Appointment{
		ProfessionalID: "pro-001",
		Date:           date,
		Time:           "10:00 AM",
		Status:         entity.AppointmentStatusConfirmed,
	}

	assert.True(t, appointment.Occupies("pro-001", date, "10:00 AM"))
	assert.False(t, appointment.Occupies("pro-002", date, "10:00 AM"))
	assert.False(t, appointment.Occupies("pro-001", date.AddDate(0, 0, 1), "10:00 AM"))
	assert.False(t, appointment.Occupies("pro-001", date, "10:30 AM"))

	appointment.Cancel()
	assert.False(t, appointment.Occupies("pro-001", date, "10:00 AM"),
		"cancelled appointments release the slot")
}

func TestSameDateIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 22, 45, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, entity.SameDate(morning, evening))
	assert.False(t, entity.SameDate(evening, nextDay))
}

func TestCancelTransition(t *testing.T) {
	appointment := entity.Appointment{Status: entity.AppointmentStatusConfirmed}
	assert.True(t, appointment.IsConfirmed())

	appointment.Cancel()
	assert.True(t, appointment.IsCancelled())
	assert.False(t, appointment.IsConfirmed())
}
