package service_test

import (
	"testing"
	"time"

	"go-salon-scheduling/internal/service"
	"go-salon-scheduling/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCatalogDates(t *testing.T) {
	// Monday
	now := time.Date(2025, 6, 9, 14, 30, 0, 0, time.UTC)
	catalog := service.NewSlotCatalog(clock.Fixed(now), nil)

	dates := catalog.Dates(7)
	require.Len(t, dates, 7)

	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, dates[0].Equal(today), "first date must be today")
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].Equal(dates[i-1].AddDate(0, 0, 1)),
			"dates must be consecutive and ascending")
	}
}

func TestSlotCatalogDatesNonPositiveHorizon(t *testing.T) {
	catalog := service.NewSlotCatalog(clock.Fixed(time.Now()), nil)

	assert.Empty(t, catalog.Dates(0))
	assert.Empty(t, catalog.Dates(-3))
}

func TestSlotCatalogDefaultTimeLabels(t *testing.T) {
	catalog := service.NewSlotCatalog(clock.Fixed(time.Now()), nil)

	labels := catalog.TimeLabels()
	require.Len(t, labels, 12)
	assert.Equal(t, "09:00 AM", labels[0])
	assert.Equal(t, "11:30 AM", labels[5])
	assert.Equal(t, "02:00 PM", labels[6], "midday gap between morning and afternoon")
	assert.Equal(t, "04:30 PM", labels[11])
}

func TestSlotCatalogCustomTimeLabels(t *testing.T) {
	custom := []string{"10:00 AM", "03:00 PM"}
	catalog := service.NewSlotCatalog(clock.Fixed(time.Now()), custom)

	assert.Equal(t, custom, catalog.TimeLabels())
}

func TestSlotCatalogTimeLabelsReturnsCopy(t *testing.T) {
	catalog := service.NewSlotCatalog(clock.Fixed(time.Now()), nil)

	labels := catalog.TimeLabels()
	labels[0] = "mutated"

	assert.Equal(t, "09:00 AM", catalog.TimeLabels()[0])
}
