package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/logger"
	"tripway/pkg/utils"
)

// PlannerAPI is the remote planning service: natural-language parsing and
// itinerary creation both live on the other side of it.
type PlannerAPI interface {
	ParseRequest(ctx context.Context, userInput string) (*response_models.ParseRequestResponse, error)
	CreatePlan(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlanResponse, error)
	Health(ctx context.Context) error
}

type PlannerClient struct {
	baseURL     string
	httpClient  *http.Client
	planTimeout time.Duration
}

func NewPlannerClient(baseURL string, planTimeout time.Duration) *PlannerClient {
	return &PlannerClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		planTimeout: planTimeout,
	}
}

// ParseRequest posts the user's free text to the parse endpoint. It rides
// the caller's context; the parse call carries no deadline of its own.
func (p *PlannerClient) ParseRequest(ctx context.Context, userInput string) (*response_models.ParseRequestResponse, error) {
	payload := request_models.ParseRequestInput{UserInput: userInput}

	var envelope response_models.ParseRequestResponse
	if err := p.postJSON(ctx, "/request/parse-request", payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// CreatePlan posts a complete TripRequest to the plan endpoint under a
// bounded deadline. Exceeding it is reported as a planner timeout.
func (p *PlannerClient) CreatePlan(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlanResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, p.planTimeout)
	defer cancel()

	var envelope response_models.TripPlanResponse
	if err := p.postJSON(ctx, "/trip/plan", req, &envelope); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(utils.ErrPlannerTimeout, err.Error())
		}
		return nil, err
	}
	return &envelope, nil
}

func (p *PlannerClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/trip/health", nil)
	if err != nil {
		return errors.Wrap(err, "build health request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(utils.ErrPlannerUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(utils.ErrPlannerUnavailable, "health check returned %d", resp.StatusCode)
	}
	return nil
}

func (p *PlannerClient) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(utils.ErrPlannerUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(utils.ErrPlannerUnavailable, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if logger.Log != nil {
			logger.Log.Warn("planner returned non-success status",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", truncate(raw, 512)))
		}
		return errors.Wrapf(utils.ErrPlannerUnavailable, "%s returned %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(utils.ErrPlannerUnavailable, fmt.Sprintf("malformed response from %s: %v", path, err))
	}
	return nil
}

func truncate(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	return b[:limit]
}
