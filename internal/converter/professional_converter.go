package converter

import (
	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to its response DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	services := make([]dto.OfferedServiceResponse, len(professional.Services))
	for i, s := range professional.Services {
		services[i] = dto.OfferedServiceResponse{
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	return &dto.ProfessionalResponse{
		ID:        professional.ID,
		Name:      professional.Name,
		Specialty: professional.Specialty,
		Center:    professional.Center,
		Services:  services,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to response DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
