package service

import (
	"time"

	"go-salon-scheduling/internal/domain/entity"
	"go-salon-scheduling/pkg/clock"
)

// SlotCatalog produces the offerable dates and time labels. It is a pure
// function of the injected clock and its configured labels; occupancy and
// closed days are AvailabilityService concerns.
type SlotCatalog struct {
	clock      clock.Clock
	timeLabels []string
}

func NewSlotCatalog(clk clock.Clock, timeLabels []string) *SlotCatalog {
	if len(timeLabels) == 0 {
		timeLabels = DefaultTimeLabels()
	}
	return &SlotCatalog{clock: clk, timeLabels: timeLabels}
}

// Dates returns horizonDays consecutive calendar dates starting today
// inclusive, in ascending order.
func (c *SlotCatalog) Dates(horizonDays int) []time.Time {
	if horizonDays <= 0 {
		return nil
	}
	today := entity.DateOf(c.clock.Now())
	dates := make([]time.Time, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}

// TimeLabels returns the fixed ordered list of bookable time-of-day labels.
func (c *SlotCatalog) TimeLabels() []string {
	out := make([]string, len(c.timeLabels))
	copy(out, c.timeLabels)
	return out
}

// DefaultTimeLabels is the standard salon day: six morning and six afternoon
// slots with a midday break.
func DefaultTimeLabels() []string {
	return []string{
		"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
		"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
	}
}
