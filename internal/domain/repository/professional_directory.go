package repository

import (
	"context"

	"go-salon-scheduling/internal/domain/entity"
)

// ProfessionalDirectory is the read-only directory backing the slot picker.
// FindByID returns (nil, nil) when no professional matches.
type ProfessionalDirectory interface {
	FindAll(ctx context.Context) ([]entity.Professional, error)
	FindByID(ctx context.Context, id string) (*entity.Professional, error)
}
