package repository

import (
	"context"

	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// staticDirectory serves the professional directory from a fixed in-memory
// catalog. The directory is an external collaborator of the scheduling core;
// booking never validates ids against it.
type staticDirectory struct {
	professionals []entity.Professional
}

func NewStaticDirectory(professionals []entity.Professional) domainRepo.ProfessionalDirectory {
	if professionals == nil {
		professionals = DefaultProfessionals()
	}
	return &staticDirectory{professionals: professionals}
}

func (d *staticDirectory) FindAll(ctx context.Context) ([]entity.Professional, error) {
	out := make([]entity.Professional, len(d.professionals))
	copy(out, d.professionals)
	return out, nil
}

func (d *staticDirectory) FindByID(ctx context.Context, id string) (*entity.Professional, error) {
	for i := range d.professionals {
		if d.professionals[i].ID == id {
			p := d.professionals[i]
			return &p, nil
		}
	}
	return nil, nil
}

// DefaultProfessionals is the seed catalog used when no directory data is
// supplied.
func DefaultProfessionals() []entity.Professional {
	return []entity.Professional{
		{
			ID:        "pro-001",
			Name:      "Sara Haddad",
			Specialty: "Hair Stylist",
			Center:    "Glow Beauty Center",
			Services: []entity.OfferedService{
				{Name: "Haircut & Blowdry", DurationMinutes: 45, Price: decimal.NewFromInt(120)},
				{Name: "Full Color", DurationMinutes: 90, Price: decimal.NewFromInt(280)},
			},
		},
		{
			ID:        "pro-002",
			Name:      "Lina Farouk",
			Specialty: "Nail Artist",
			Center:    "Glow Beauty Center",
			Services: []entity.OfferedService{
				{Name: "Classic Manicure", DurationMinutes: 30, Price: decimal.NewFromInt(60)},
				{Name: "Gel Pedicure", DurationMinutes: 50, Price: decimal.NewFromInt(95)},
			},
		},
		{
			ID:        "pro-003",
			Name:      "Maya Khalil",
			Specialty: "Skin Therapist",
			Center:    "Pure Skin Studio",
			Services: []entity.OfferedService{
				{Name: "Deep Cleansing Facial", DurationMinutes: 60, Price: decimal.NewFromInt(200)},
				{Name: "Express Glow", DurationMinutes: 25, Price: decimal.NewFromFloat(85.5)},
			},
		},
		{
			ID:        "pro-004",
			Name:      "Rana Aziz",
			Specialty: "Makeup Artist",
			Center:    "Pure Skin Studio",
			Services: []entity.OfferedService{
				{Name: "Evening Makeup", DurationMinutes: 75, Price: decimal.NewFromInt(250)},
			},
		},
	}
}
