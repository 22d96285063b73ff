package services

import (
	"sync"
	"time"

	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/utils"
)

type NegotiationState string

const (
	StateIdle       NegotiationState = "idle"
	StateParsing    NegotiationState = "parsing"
	StateComplete   NegotiationState = "complete"
	StateIncomplete NegotiationState = "incomplete"
	StateError      NegotiationState = "error"
)

// NegotiationSession is the lifecycle of resolving one natural-language
// request into a submittable TripRequest. It owns the draft; only one
// user-driven action can touch it at a time.
type NegotiationSession struct {
	mu sync.Mutex

	ID        string
	State     NegotiationState
	Draft     request_models.TripRequest
	Outcome   *response_models.ParseOutcome
	CreatedAt time.Time
}

func NewNegotiationSession(id string) *NegotiationSession {
	return &NegotiationSession{
		ID:        id,
		State:     StateIdle,
		Draft:     request_models.NewDraft(),
		CreatedAt: time.Now(),
	}
}

// BeginParse moves the session into Parsing. Re-entry is allowed from Idle
// and from the two user-correctable terminal states; a turn already in
// flight or a completed session rejects the transition.
func (s *NegotiationSession) BeginParse() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.State {
	case StateParsing:
		return utils.ErrParseInFlight
	case StateComplete:
		return utils.ErrInvalidTransition
	case StateIdle, StateIncomplete, StateError:
		s.State = StateParsing
		return nil
	default:
		return utils.ErrInvalidTransition
	}
}

// FinishParse records the turn's outcome and moves to the matching state.
// The previous turn's partial data is discarded; the draft is rebuilt from
// scratch with only this turn's extraction, which is what the user sees for
// reference before the next attempt.
func (s *NegotiationSession) FinishParse(outcome *response_models.ParseOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Outcome = outcome

	switch outcome.Status {
	case response_models.ParseStatusComplete:
		s.State = StateComplete
		if outcome.ResolvedRequest != nil {
			s.Draft = *outcome.ResolvedRequest
		}
	case response_models.ParseStatusIncomplete:
		s.State = StateIncomplete
		draft := request_models.NewDraft()
		outcome.PartialData.ApplyTo(&draft)
		s.Draft = draft
	default:
		s.State = StateError
	}
}

// Busy reports whether a parse turn is in flight.
func (s *NegotiationSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State == StateParsing
}

// Snapshot returns a copy of the mutable session fields for display.
func (s *NegotiationSession) Snapshot() (NegotiationState, request_models.TripRequest, *response_models.ParseOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State, s.Draft, s.Outcome
}
