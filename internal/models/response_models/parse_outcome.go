package response_models

import (
	"tripway/internal/models/request_models"
)

type ParseStatus string

const (
	ParseStatusComplete   ParseStatus = "complete"
	ParseStatusIncomplete ParseStatus = "incomplete"
	ParseStatusError      ParseStatus = "error"
)

// ParseOutcome is the result of one negotiation turn. It is created fresh per
// turn and never mutated afterwards; the next turn's outcome supersedes it.
type ParseOutcome struct {
	Status          ParseStatus                        `json:"status"`
	ResolvedRequest *request_models.TripRequest        `json:"resolved_request,omitempty"`
	MissingFields   []string                           `json:"missing_fields,omitempty"`
	Suggestions     string                             `json:"suggestions,omitempty"`
	PartialData     *request_models.PartialTripRequest `json:"partial_data,omitempty"`
	ErrorMessage    string                             `json:"error_message,omitempty"`
}
