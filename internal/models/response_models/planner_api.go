package response_models

import (
	"tripway/internal/models/request_models"
)

// ParseRequestResponse is the planner service's envelope for the
// natural-language parse endpoint.
type ParseRequestResponse struct {
	Success       bool                               `json:"success"`
	Status        ParseStatus                        `json:"status"`
	TripRequest   *request_models.TripRequest        `json:"trip_request,omitempty"`
	MissingFields []string                           `json:"missing_fields,omitempty"`
	Suggestions   string                             `json:"suggestions,omitempty"`
	PartialData   *request_models.PartialTripRequest `json:"partial_data,omitempty"`
	Message       string                             `json:"message,omitempty"`
}

// TripPlanResponse is the planner service's envelope for plan creation.
type TripPlanResponse struct {
	Success bool      `json:"success"`
	Data    *TripPlan `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
}
