package response_models

import (
	"tripway/internal/models/request_models"
)

// NegotiationTurn is what one call to the parse entry point yields: the
// turn's outcome, plus the created plan when the turn completed and the
// auto-submission succeeded. SubmissionMessage carries the displayable
// error when it did not.
type NegotiationTurn struct {
	SessionID         string        `json:"session_id"`
	State             string        `json:"state"`
	Outcome           *ParseOutcome `json:"outcome"`
	Plan              *TripPlan     `json:"plan,omitempty"`
	SubmissionMessage string        `json:"submission_message,omitempty"`
}

// SessionView is the read-only session snapshot for the presentation layer.
type SessionView struct {
	SessionID        string                     `json:"session_id"`
	State            string                     `json:"state"`
	ParseBusy        bool                       `json:"parse_busy"`
	SubmissionBusy   bool                       `json:"submission_busy"`
	Draft            request_models.TripRequest `json:"draft"`
	LastOutcome      *ParseOutcome              `json:"last_outcome,omitempty"`
}
