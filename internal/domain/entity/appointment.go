package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked slot with a professional.
// Note: AppointmentStatusCompleted is part of the wire format but is never
// assigned here; an elapsed confirmed appointment is classified as past at
// read time instead.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID   string            `gorm:"type:varchar(64);not null;index" json:"professional_id"`
	ProfessionalName string            `gorm:"type:varchar(255);not null" json:"professional_name"`
	Date             time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time             string            `gorm:"type:varchar(16);not null" json:"time"`
	Status           AppointmentStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Occupies reports whether this appointment holds the given slot, i.e. it is
// confirmed and matches the (professional, date, time) tuple. Cancelled
// appointments do not occupy their slot.
func (a *Appointment) Occupies(professionalID string, date time.Time, timeLabel string) bool {
	return a.IsConfirmed() &&
		a.ProfessionalID == professionalID &&
		a.Time == timeLabel &&
		SameDate(a.Date, date)
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
