package repository

import (
	"context"
	"errors"

	"go-salon-scheduling/internal/domain/entity"
)

// ErrStorage is returned when the backing medium is unreadable or unwritable,
// including a persisted payload that no longer parses. A missing file or
// absent key is the first-run empty collection, not an error. Implementations
// wrap ErrStorage so callers can match it with errors.Is.
var ErrStorage = errors.New("appointment storage unavailable")

// AppointmentStore is the durable collection of all appointments on the
// device. SaveAll replaces the whole collection atomically: a concurrent
// LoadAll observes either the old or the new collection, never a partial
// write. The scheduling usecase is the sole writer.
type AppointmentStore interface {
	LoadAll(ctx context.Context) ([]entity.Appointment, error)
	SaveAll(ctx context.Context, appointments []entity.Appointment) error
}
