package dto

import "github.com/shopspring/decimal"

type OfferedServiceResponse struct {
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
}

type ProfessionalResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Specialty string                   `json:"specialty"`
	Center    string                   `json:"center"`
	Services  []OfferedServiceResponse `json:"services,omitempty"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
