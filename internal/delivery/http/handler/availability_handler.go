package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/service"
	"go-salon-scheduling/pkg/response"
)

type AvailabilityHandler struct {
	availability *service.AvailabilityService
	horizonDays  int
}

func NewAvailabilityHandler(availability *service.AvailabilityService, horizonDays int) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		horizonDays:  horizonDays,
	}
}

// GetAvailableDates lists the bookable dates within the horizon. An optional
// days query parameter narrows the horizon.
func (h *AvailabilityHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	horizon := h.horizonDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			response.Error(w, http.StatusBadRequest, "Invalid days parameter", nil)
			return
		}
		horizon = days
	}

	dates := h.availability.AvailableDates(horizon)
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(time.DateOnly)
	}

	response.Success(w, http.StatusOK, "Available dates retrieved successfully", &dto.AvailableDatesResponse{
		Dates: formatted,
		Total: len(formatted),
	})
}

// GetAvailableSlots lists the open time labels for a professional on a date.
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	professionalID := r.URL.Query().Get("professional_id")
	rawDate := r.URL.Query().Get("date")
	if professionalID == "" || rawDate == "" {
		response.Error(w, http.StatusBadRequest, "professional_id and date are required", nil)
		return
	}

	date, err := time.Parse(time.DateOnly, rawDate)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	times, err := h.availability.AvailableSlots(r.Context(), professionalID, date)
	if err != nil {
		if errors.Is(err, repository.ErrStorage) {
			response.ServiceUnavailable(w, "Appointment storage is unavailable, please retry")
			return
		}
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", &dto.AvailableSlotsResponse{
		ProfessionalID: professionalID,
		Date:           rawDate,
		Times:          times,
		Total:          len(times),
	})
}
