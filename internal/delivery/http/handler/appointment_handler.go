package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/usecase"
	"go-salon-scheduling/pkg/response"
	"go-salon-scheduling/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	validator         *validator.CustomValidator
}

func NewAppointmentHandler(schedulingUsecase usecase.SchedulingUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		schedulingUsecase: schedulingUsecase,
		validator:         validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.schedulingUsecase.Book(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSelection):
			response.Error(w, http.StatusBadRequest, "Selected date and time are not bookable", nil)
		case errors.Is(err, usecase.ErrSlotConflict):
			response.Error(w, http.StatusConflict, "Slot is no longer available, please pick another", nil)
		case errors.Is(err, repository.ErrStorage):
			response.ServiceUnavailable(w, "Appointment storage is unavailable, please retry")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.schedulingUsecase.List(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrStorage) {
			response.ServiceUnavailable(w, "Appointment storage is unavailable, please retry")
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.schedulingUsecase.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.Error(w, http.StatusConflict, "Appointment is already cancelled", nil)
		case errors.Is(err, repository.ErrStorage):
			response.ServiceUnavailable(w, "Appointment storage is unavailable, please retry")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}
