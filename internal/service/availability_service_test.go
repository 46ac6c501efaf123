package service_test

import (
	"context"
	"testing"
	"time"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/repository"
	"go-salon-scheduling/internal/service"
	"go-salon-scheduling/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday
var availabilityNow = time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

func newAvailability(t *testing.T, store domainRepo.AppointmentStore) *service.AvailabilityService {
	t.Helper()
	clk := clock.Fixed(availabilityNow)
	catalog := service.NewSlotCatalog(clk, nil)
	closed := []time.Weekday{time.Friday, time.Saturday}
	return service.NewAvailabilityService(store, catalog, clk, closed, logrus.New())
}

func TestIsDateBookableClosedWeekdays(t *testing.T) {
	availability := newAvailability(t, repository.NewMemoryAppointmentStore())

	friday := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, availability.IsDateBookable(friday))
	assert.False(t, availability.IsDateBookable(saturday))
	assert.True(t, availability.IsDateBookable(sunday))
	assert.True(t, availability.IsDateBookable(tuesday))
}

func TestIsDateBookablePastDates(t *testing.T) {
	availability := newAvailability(t, repository.NewMemoryAppointmentStore())

	yesterday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	assert.False(t, availability.IsDateBookable(yesterday))

	// Today is bookable even though the clock is mid-morning.
	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, availability.IsDateBookable(today))
}

func TestIsSlotBookableOccupancy(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAll(context.Background(), []entity.Appointment{
		{
			ID:               uuid.New(),
			ProfessionalID:   "pro-001",
			ProfessionalName: "Sara Haddad",
			Date:             date,
			Time:             "10:00 AM",
			Status:           entity.AppointmentStatusConfirmed,
			CreatedAt:        availabilityNow,
		},
	}))

	availability := newAvailability(t, store)

	taken, err := availability.IsSlotBookable(context.Background(), "pro-001", date, "10:00 AM")
	require.NoError(t, err)
	assert.False(t, taken, "confirmed appointment occupies its slot")

	other, err := availability.IsSlotBookable(context.Background(), "pro-001", date, "10:30 AM")
	require.NoError(t, err)
	assert.True(t, other, "other time labels stay open")

	otherPro, err := availability.IsSlotBookable(context.Background(), "pro-002", date, "10:00 AM")
	require.NoError(t, err)
	assert.True(t, otherPro, "occupancy is per professional")
}

func TestIsSlotBookableIgnoresCancelled(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAll(context.Background(), []entity.Appointment{
		{
			ID:             uuid.New(),
			ProfessionalID: "pro-001",
			Date:           date,
			Time:           "10:00 AM",
			Status:         entity.AppointmentStatusCancelled,
			CreatedAt:      availabilityNow,
		},
	}))

	availability := newAvailability(t, store)

	open, err := availability.IsSlotBookable(context.Background(), "pro-001", date, "10:00 AM")
	require.NoError(t, err)
	assert.True(t, open, "cancelled appointments do not occupy the slot")
}

func TestAvailableDatesSkipsClosedWeekdays(t *testing.T) {
	availability := newAvailability(t, repository.NewMemoryAppointmentStore())

	// Mon 9th .. Sun 15th: Friday 13th and Saturday 14th are closed.
	dates := availability.AvailableDates(7)
	require.Len(t, dates, 5)
	for _, d := range dates {
		assert.NotEqual(t, time.Friday, d.Weekday())
		assert.NotEqual(t, time.Saturday, d.Weekday())
	}
}

func TestAvailableSlotsExcludesOccupied(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAll(context.Background(), []entity.Appointment{
		{
			ID:             uuid.New(),
			ProfessionalID: "pro-001",
			Date:           date,
			Time:           "10:00 AM",
			Status:         entity.AppointmentStatusConfirmed,
			CreatedAt:      availabilityNow,
		},
	}))

	availability := newAvailability(t, store)

	times, err := availability.AvailableSlots(context.Background(), "pro-001", date)
	require.NoError(t, err)
	assert.Len(t, times, 11)
	assert.NotContains(t, times, "10:00 AM")
}

func TestAvailableSlotsClosedDateIsEmpty(t *testing.T) {
	availability := newAvailability(t, repository.NewMemoryAppointmentStore())

	friday := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	times, err := availability.AvailableSlots(context.Background(), "pro-001", friday)
	require.NoError(t, err)
	assert.Empty(t, times)
}
