package entity

import "github.com/shopspring/decimal"

// Professional represents a bookable staff member from the salon directory.
// The directory is supplied externally; ids are treated as opaque strings.
type Professional struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Specialty string           `json:"specialty"`
	Center    string           `json:"center"`
	Services  []OfferedService `json:"services,omitempty"`
}

// OfferedService is a treatment a professional offers, with its list price.
type OfferedService struct {
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
}
