package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tripway/internal/infra"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/internal/services"
	"tripway/pkg/utils"
)

// QuickPreferences are the canned preference tags offered by the form view.
var QuickPreferences = []string{"历史文化", "自然风光", "美食", "购物", "休闲", "冒险"}

type TripController struct {
	negotiation services.NegotiationServiceInterface
	submission  services.SubmissionServiceInterface
	aggregator  services.AggregatorServiceInterface
	planner     infra.PlannerAPI
}

func NewTripController(
	negotiation services.NegotiationServiceInterface,
	submission services.SubmissionServiceInterface,
	aggregator services.AggregatorServiceInterface,
	planner infra.PlannerAPI,
) *TripController {
	return &TripController{
		negotiation: negotiation,
		submission:  submission,
		aggregator:  aggregator,
		planner:     planner,
	}
}

// ParseRequestHandler runs one negotiation turn over the user's free text.
func (t *TripController) ParseRequestHandler(c *gin.Context) {
	var req request_models.ParseRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	turn, err := t.negotiation.SubmitText(c.Request.Context(), req.SessionID, req.UserInput)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, turn, parseTurnMessage(turn))
}

// ResubmitHandler retries plan creation from a completed session's draft.
func (t *TripController) ResubmitHandler(c *gin.Context) {
	turn, err := t.negotiation.Resubmit(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, turn, parseTurnMessage(turn))
}

// SessionHandler exposes the session snapshot: state, busy flags, draft and
// the previous turn's outcome.
func (t *TripController) SessionHandler(c *gin.Context) {
	view, err := t.negotiation.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Session state")
}

// CreatePlanHandler is the structured-form path: a complete TripRequest in,
// a TripPlan out.
func (t *TripController) CreatePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := t.submission.Submit(c.Request.Context(), req)
	if err != nil {
		t.respondSubmissionError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "旅行计划生成成功")
}

// ExportPlanHandler renders a plan as a downloadable document. The plan
// travels in the request body; format=pdf switches the renderer.
func (t *TripController) ExportPlanHandler(c *gin.Context) {
	var plan response_models.TripPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan format")
		return
	}

	format := c.DefaultQuery("format", "text")
	name := t.aggregator.ExportFileName(&plan, format)
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))

	if format == "pdf" {
		data, err := t.aggregator.ExportPDF(&plan)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(t.aggregator.ExportText(&plan)))
}

// QuickPreferencesHandler lists the canned preference tags.
func (t *TripController) QuickPreferencesHandler(c *gin.Context) {
	utils.RespondSuccess(c, QuickPreferences, "Quick preferences")
}

// HealthHandler reports this service and proxies the planner's health.
func (t *TripController) HealthHandler(c *gin.Context) {
	plannerStatus := "healthy"
	if err := t.planner.Health(c.Request.Context()); err != nil {
		plannerStatus = "unreachable"
	}
	utils.RespondSuccess(c, gin.H{
		"service": "trip-workflow",
		"status":  "healthy",
		"planner": plannerStatus,
	}, "Health")
}

func (t *TripController) respondSubmissionError(c *gin.Context, err error) {
	var validationErr *request_models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: validationErr.Error(),
			TraceID: c.GetString("trace_id"),
			Data:    validationErr.Result,
		})
		return
	}

	var submissionErr *services.SubmissionError
	if errors.As(err, &submissionErr) {
		code := http.StatusBadGateway
		if errors.Is(err, utils.ErrPlannerTimeout) {
			code = http.StatusGatewayTimeout
		}
		utils.RespondError(c, code, submissionErr.Message)
		return
	}

	utils.HandleServiceError(c, err)
}

func parseTurnMessage(turn *response_models.NegotiationTurn) string {
	if turn.Outcome == nil {
		return ""
	}
	switch turn.Outcome.Status {
	case response_models.ParseStatusComplete:
		if turn.Plan != nil {
			return "信息完整，旅行计划已生成"
		}
		return "信息完整，但生成计划失败"
	case response_models.ParseStatusIncomplete:
		return "请补充必要信息"
	default:
		return "解析失败"
	}
}
