package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go-salon-scheduling/internal/converter"
	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/entity"
	"go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/service"
	"go-salon-scheduling/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSelection    = errors.New("selected date and time are incomplete or not bookable")
	ErrSlotConflict        = errors.New("slot was taken by another booking")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("appointment is already cancelled")
)

type SchedulingUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type schedulingUsecase struct {
	store        repository.AppointmentStore
	availability *service.AvailabilityService
	clock        clock.Clock
	log          *logrus.Logger

	// mu serializes the load-modify-save cycles of Book and Cancel so two
	// concurrent mutations cannot lose each other's writes.
	mu sync.Mutex
}

func NewSchedulingUsecase(
	store repository.AppointmentStore,
	availability *service.AvailabilityService,
	clk clock.Clock,
	log *logrus.Logger,
) SchedulingUsecase {
	return &schedulingUsecase{
		store:        store,
		availability: availability,
		clock:        clk,
		log:          log,
	}
}

// Book creates a confirmed appointment for (professional, date, time).
//
// Flow:
// 1. Validate the selection (non-empty fields, parseable date, bookable date)
// 2. Under the mutation lock, reload the store and re-check occupancy,
//    closing the race between the availability query and the write
// 3. Append the new record and persist the full collection
func (u *schedulingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.ProfessionalID == "" || req.Date == "" || req.Time == "" {
		return nil, ErrInvalidSelection
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		u.log.Warnf("Rejected booking with unparseable date %q: %+v", req.Date, err)
		return nil, ErrInvalidSelection
	}
	if !u.availability.IsDateBookable(date) {
		return nil, ErrInvalidSelection
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appointments, err := u.store.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments for booking: %+v", err)
		return nil, err
	}

	// Re-validate against the freshly loaded data; a stale availability read
	// becomes a clean conflict instead of a double booking.
	for i := range appointments {
		if appointments[i].Occupies(req.ProfessionalID, date, req.Time) {
			return nil, ErrSlotConflict
		}
	}

	appointment := entity.Appointment{
		ID:               uuid.New(),
		ProfessionalID:   req.ProfessionalID,
		ProfessionalName: req.ProfessionalName,
		Date:             entity.DateOf(date),
		Time:             req.Time,
		Status:           entity.AppointmentStatusConfirmed,
		CreatedAt:        u.clock.Now(),
	}
	appointments = append(appointments, appointment)

	if err := u.store.SaveAll(ctx, appointments); err != nil {
		u.log.Errorf("Failed to persist booking: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, professional=%s, date=%s, time=%s",
		appointment.ID, appointment.ProfessionalID, req.Date, req.Time)
	return converter.AppointmentToResponse(&appointment), nil
}

// Cancel moves a confirmed appointment to cancelled. Cancellation is
// one-way: cancelling an already-cancelled appointment is rejected and the
// store is left untouched.
func (u *schedulingUsecase) Cancel(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	appointments, err := u.store.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments for cancellation: %+v", err)
		return nil, err
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrAppointmentNotFound
	}
	if !appointments[idx].IsConfirmed() {
		return nil, ErrInvalidTransition
	}

	appointments[idx].Cancel()

	if err := u.store.SaveAll(ctx, appointments); err != nil {
		u.log.Errorf("Failed to persist cancellation: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment cancelled: id=%s, professional=%s",
		appointmentID, appointments[idx].ProfessionalID)
	return converter.AppointmentToResponse(&appointments[idx]), nil
}

// List partitions the stored appointments into upcoming and past. Upcoming
// means confirmed with a date of today or later; everything else is past,
// including cancelled appointments and confirmed ones whose date elapsed.
// Read-only.
func (u *schedulingUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.store.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments for listing: %+v", err)
		return nil, err
	}

	today := entity.DateOf(u.clock.Now())
	var upcoming, past []entity.Appointment
	for _, a := range appointments {
		if a.IsConfirmed() && !entity.DateOf(a.Date).Before(today) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	sortByDateDesc(upcoming)
	sortByDateDesc(past)

	return &dto.AppointmentListResponse{
		Upcoming: converter.AppointmentsToResponses(upcoming),
		Past:     converter.AppointmentsToResponses(past),
		Total:    len(appointments),
	}, nil
}

// sortByDateDesc orders most recent first, createdAt breaking date ties.
func sortByDateDesc(appointments []entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		di, dj := entity.DateOf(appointments[i].Date), entity.DateOf(appointments[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
}
