package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripway/internal/infra"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/logger"
	"tripway/pkg/utils"
)

type NegotiationServiceInterface interface {
	SubmitText(ctx context.Context, sessionID string, text string) (*response_models.NegotiationTurn, error)
	Resubmit(ctx context.Context, sessionID string) (*response_models.NegotiationTurn, error)
	GetSession(sessionID string) (*response_models.SessionView, error)
}

type NegotiationService struct {
	planner    infra.PlannerAPI
	submission SubmissionServiceInterface
	sessions   SessionStore
}

func NewNegotiationService(
	planner infra.PlannerAPI,
	submission SubmissionServiceInterface,
	sessions SessionStore,
) NegotiationServiceInterface {
	return &NegotiationService{
		planner:    planner,
		submission: submission,
		sessions:   sessions,
	}
}

// SubmitText runs one negotiation turn: exactly one remote parse call, a
// deterministic mapping of its result, and — when the parser resolves a
// complete request — a single automatic hand-off to submission. Incomplete
// and error outcomes return control to the user; nothing retries on its own.
func (n *NegotiationService) SubmitText(ctx context.Context, sessionID string, text string) (*response_models.NegotiationTurn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.ErrEmptyInput
	}

	session, err := n.resolveSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.BeginParse(); err != nil {
		return nil, err
	}

	envelope, err := n.planner.ParseRequest(ctx, text)
	outcome := mapParseResult(envelope, err)
	session.FinishParse(outcome)
	n.sessions.Put(session)

	turn := &response_models.NegotiationTurn{
		SessionID: session.ID,
		State:     string(sessionState(session)),
		Outcome:   outcome,
	}

	if outcome.Status != response_models.ParseStatusComplete {
		return turn, nil
	}

	plan, err := n.submission.Submit(ctx, *outcome.ResolvedRequest)
	if err != nil {
		turn.SubmissionMessage = err.Error()
		return turn, nil
	}
	turn.Plan = plan
	return turn, nil
}

// Resubmit retries plan creation with the resolved request of a completed
// session. The draft survives a failed submission, so no data re-entry is
// needed; the retry itself is always an explicit user action.
func (n *NegotiationService) Resubmit(ctx context.Context, sessionID string) (*response_models.NegotiationTurn, error) {
	session, ok := n.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	state, draft, outcome := session.Snapshot()
	if state != StateComplete {
		return nil, utils.ErrInvalidTransition
	}

	turn := &response_models.NegotiationTurn{
		SessionID: session.ID,
		State:     string(state),
		Outcome:   outcome,
	}

	plan, err := n.submission.Submit(ctx, draft)
	if err != nil {
		turn.SubmissionMessage = err.Error()
		return turn, nil
	}
	turn.Plan = plan
	return turn, nil
}

// GetSession exposes the busy flags and last outcome for display.
func (n *NegotiationService) GetSession(sessionID string) (*response_models.SessionView, error) {
	session, ok := n.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	state, draft, outcome := session.Snapshot()
	return &response_models.SessionView{
		SessionID:      session.ID,
		State:          string(state),
		ParseBusy:      state == StateParsing,
		SubmissionBusy: n.submission.InFlight(),
		Draft:          draft,
		LastOutcome:    outcome,
	}, nil
}

func (n *NegotiationService) resolveSession(sessionID string) (*NegotiationSession, error) {
	if sessionID == "" {
		session := NewNegotiationSession(uuid.New().String())
		n.sessions.Put(session)
		return session, nil
	}
	session, ok := n.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func sessionState(session *NegotiationSession) NegotiationState {
	state, _, _ := session.Snapshot()
	return state
}

// mapParseResult turns the remote envelope (or the failure to obtain one)
// into this turn's outcome. The mapping is deterministic; the parser's
// missing_fields and suggestions pass through verbatim, and extracted
// fields are never guessed at.
func mapParseResult(envelope *response_models.ParseRequestResponse, err error) *response_models.ParseOutcome {
	if err != nil {
		logger.Log.Warn("parse call failed", zap.Error(err))
		return errorOutcome()
	}

	switch envelope.Status {
	case response_models.ParseStatusComplete:
		if envelope.TripRequest == nil {
			logger.Log.Warn("parser reported complete without a trip request")
			return errorOutcome()
		}
		resolved := withDefaults(*envelope.TripRequest)
		if result := request_models.Validate(resolved); !result.Valid() {
			logger.Log.Warn("parser reported complete but request fails validation",
				zap.Strings("violations", result.Fields()))
			return errorOutcome()
		}
		return &response_models.ParseOutcome{
			Status:          response_models.ParseStatusComplete,
			ResolvedRequest: &resolved,
		}

	case response_models.ParseStatusIncomplete:
		return &response_models.ParseOutcome{
			Status:        response_models.ParseStatusIncomplete,
			MissingFields: envelope.MissingFields,
			Suggestions:   envelope.Suggestions,
			PartialData:   envelope.PartialData,
		}

	default:
		logger.Log.Warn("parser returned unrecognized status", zap.String("status", string(envelope.Status)))
		return errorOutcome()
	}
}

func errorOutcome() *response_models.ParseOutcome {
	return &response_models.ParseOutcome{
		Status:       response_models.ParseStatusError,
		ErrorMessage: "解析失败，请重新描述您的需求",
	}
}

func withDefaults(req request_models.TripRequest) request_models.TripRequest {
	if req.Transportation == "" {
		req.Transportation = request_models.TransportPublicTransit
	}
	if req.Accommodation == "" {
		req.Accommodation = request_models.AccommodationBudget
	}
	if req.Preferences == nil {
		req.Preferences = []string{}
	}
	return req
}
