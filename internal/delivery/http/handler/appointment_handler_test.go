package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/delivery/http/handler"
	domainRepo "go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/usecase"
	"go-salon-scheduling/pkg/response"
	"go-salon-scheduling/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSchedulingUsecase struct {
	bookFn   func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	cancelFn func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	listFn   func(ctx context.Context) (*dto.AppointmentListResponse, error)
}

func (s *stubSchedulingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.bookFn(ctx, req)
}

func (s *stubSchedulingUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.cancelFn(ctx, id)
}

func (s *stubSchedulingUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.listFn(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestBookAppointmentCreated(t *testing.T) {
	stub := &stubSchedulingUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{
				ID:               uuid.New(),
				ProfessionalID:   req.ProfessionalID,
				ProfessionalName: req.ProfessionalName,
				Date:             req.Date,
				Time:             req.Time,
				Status:           "confirmed",
				CreatedAt:        time.Now(),
			}, nil
		},
	}
	h := handler.NewAppointmentHandler(stub, validator.NewValidator())

	payload := `{"professional_id":"pro-001","professional_name":"Sara Haddad","date":"2025-06-10","time":"10:00 AM"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestBookAppointmentValidationFailure(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubSchedulingUsecase{}, validator.NewValidator())

	payload := `{"professional_id":"pro-001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestBookAppointmentErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid selection", usecase.ErrInvalidSelection, http.StatusBadRequest},
		{"slot conflict", usecase.ErrSlotConflict, http.StatusConflict},
		{"storage failure", domainRepo.ErrStorage, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubSchedulingUsecase{
				bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
					return nil, tc.err
				},
			}
			h := handler.NewAppointmentHandler(stub, validator.NewValidator())

			payload := `{"professional_id":"pro-001","professional_name":"Sara Haddad","date":"2025-06-10","time":"10:00 AM"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
			rec := httptest.NewRecorder()

			h.BookAppointment(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCancelAppointmentInvalidID(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubSchedulingUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.CancelAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelAppointmentErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"already cancelled", usecase.ErrInvalidTransition, http.StatusConflict},
		{"storage failure", domainRepo.ErrStorage, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubSchedulingUsecase{
				cancelFn: func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
					return nil, tc.err
				},
			}
			h := handler.NewAppointmentHandler(stub, validator.NewValidator())

			id := uuid.New().String()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": id})
			rec := httptest.NewRecorder()

			h.CancelAppointment(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetAppointmentsOK(t *testing.T) {
	stub := &stubSchedulingUsecase{
		listFn: func(ctx context.Context) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{
				Upcoming: []dto.AppointmentResponse{},
				Past:     []dto.AppointmentResponse{},
				Total:    0,
			}, nil
		},
	}
	h := handler.NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()

	h.GetAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}
