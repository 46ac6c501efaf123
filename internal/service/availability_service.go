package service

import (
	"context"
	"time"

	"go-salon-scheduling/internal/domain/entity"
	"go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/pkg/clock"

	"github.com/sirupsen/logrus"
)

// AvailabilityService decides which catalog entries are actually bookable:
// it excludes past dates, configured closed weekdays, and slots already held
// by a confirmed appointment. It only reads the store.
type AvailabilityService struct {
	store          repository.AppointmentStore
	catalog        *SlotCatalog
	clock          clock.Clock
	closedWeekdays map[time.Weekday]bool
	log            *logrus.Logger
}

func NewAvailabilityService(
	store repository.AppointmentStore,
	catalog *SlotCatalog,
	clk clock.Clock,
	closedWeekdays []time.Weekday,
	log *logrus.Logger,
) *AvailabilityService {
	closed := make(map[time.Weekday]bool, len(closedWeekdays))
	for _, d := range closedWeekdays {
		closed[d] = true
	}
	return &AvailabilityService{
		store:          store,
		catalog:        catalog,
		clock:          clk,
		closedWeekdays: closed,
		log:            log,
	}
}

// IsDateBookable reports whether date can take bookings at all: past dates
// never can, nor can dates on a closed weekday.
func (s *AvailabilityService) IsDateBookable(date time.Time) bool {
	today := entity.DateOf(s.clock.Now())
	day := entity.DateOf(date)
	if day.Before(today) {
		return false
	}
	return !s.closedWeekdays[day.Weekday()]
}

// IsSlotBookable reports whether (professionalID, date, timeLabel) is open:
// the date must be bookable and no confirmed appointment may already occupy
// the slot.
func (s *AvailabilityService) IsSlotBookable(ctx context.Context, professionalID string, date time.Time, timeLabel string) (bool, error) {
	if !s.IsDateBookable(date) {
		return false, nil
	}

	appointments, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to load appointments for availability check: %+v", err)
		return false, err
	}
	for i := range appointments {
		if appointments[i].Occupies(professionalID, date, timeLabel) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableDates returns the catalog dates within the horizon that are
// bookable. Occupancy is per slot, so it is not consulted here.
func (s *AvailabilityService) AvailableDates(horizonDays int) []time.Time {
	var dates []time.Time
	for _, d := range s.catalog.Dates(horizonDays) {
		if s.IsDateBookable(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// AvailableSlots returns the time labels still open for the professional on
// the given date, in catalog order.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, professionalID string, date time.Time) ([]string, error) {
	if !s.IsDateBookable(date) {
		return []string{}, nil
	}

	appointments, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to load appointments for slot listing: %+v", err)
		return nil, err
	}

	open := make([]string, 0, len(s.catalog.TimeLabels()))
	for _, label := range s.catalog.TimeLabels() {
		occupied := false
		for i := range appointments {
			if appointments[i].Occupies(professionalID, date, label) {
				occupied = true
				break
			}
		}
		if !occupied {
			open = append(open, label)
		}
	}
	return open, nil
}
