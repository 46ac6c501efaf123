package converter

import (
	"time"

	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		ProfessionalID:   appointment.ProfessionalID,
		ProfessionalName: appointment.ProfessionalName,
		Date:             appointment.Date.Format(time.DateOnly),
		Time:             appointment.Time,
		Status:           string(appointment.Status),
		CreatedAt:        appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
