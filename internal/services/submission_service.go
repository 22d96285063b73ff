package services

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripway/internal/infra"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/logger"
	"tripway/pkg/utils"
)

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlan, error)
	InFlight() bool
}

// SubmissionError carries a user-displayable message for a failed plan
// creation. It unwraps to the sentinel that classifies the failure.
type SubmissionError struct {
	cause   error
	Message string
}

func NewSubmissionError(cause error, message string) *SubmissionError {
	return &SubmissionError{cause: cause, Message: message}
}

func (e *SubmissionError) Error() string { return e.Message }
func (e *SubmissionError) Unwrap() error { return e.cause }

type SubmissionService struct {
	planner  infra.PlannerAPI
	inFlight atomic.Bool
}

func NewSubmissionService(planner infra.PlannerAPI) SubmissionServiceInterface {
	return &SubmissionService{planner: planner}
}

// Submit validates the request locally and issues exactly one plan-creation
// call. A second call while one is outstanding is rejected, not queued. A
// failed call leaves no state behind; the caller keeps its draft and may
// resubmit immediately.
func (s *SubmissionService) Submit(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlan, error) {
	if result := request_models.Validate(req); !result.Valid() {
		return nil, &request_models.ValidationError{Result: result}
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, utils.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	envelope, err := s.planner.CreatePlan(ctx, req)
	if err != nil {
		logger.Log.Warn("plan creation failed", zap.String("city", req.City), zap.Error(err))
		if errors.Is(err, utils.ErrPlannerTimeout) {
			return nil, NewSubmissionError(utils.ErrPlannerTimeout, "生成计划超时，请重试")
		}
		return nil, NewSubmissionError(utils.ErrPlannerUnavailable, "生成计划失败，请检查网络连接后重试")
	}

	if !envelope.Success || envelope.Data == nil {
		message := envelope.Message
		if message == "" {
			message = "生成计划失败，请重试"
		}
		logger.Log.Warn("planner rejected request", zap.String("city", req.City), zap.String("message", envelope.Message))
		return nil, NewSubmissionError(utils.ErrPlanNotCreated, message)
	}

	logger.Log.Info("trip plan created",
		zap.String("city", envelope.Data.City),
		zap.Int("days", len(envelope.Data.Days)))
	return envelope.Data, nil
}

// InFlight is the busy flag the presentation layer uses to block duplicate
// submissions.
func (s *SubmissionService) InFlight() bool {
	return s.inFlight.Load()
}
