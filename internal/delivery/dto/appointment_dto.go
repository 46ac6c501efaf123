package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	ProfessionalID   string `json:"professional_id" validate:"required"`
	ProfessionalName string `json:"professional_name" validate:"required"`
	Date             string `json:"date" validate:"required"` // calendar date, 2006-01-02
	Time             string `json:"time" validate:"required"` // catalog label, e.g. "10:00 AM"
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
	Total    int                   `json:"total"`
}
