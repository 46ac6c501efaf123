package dto

type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
	Total int      `json:"total"`
}

type AvailableSlotsResponse struct {
	ProfessionalID string   `json:"professional_id"`
	Date           string   `json:"date"`
	Times          []string `json:"times"`
	Total          int      `json:"total"`
}
