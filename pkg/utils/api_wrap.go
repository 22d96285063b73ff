package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps workflow sentinel errors to HTTP responses. The
// user-facing message is a short retry prompt; the underlying fault stays in
// the log.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyInput):
		RespondError(c, http.StatusBadRequest, "请输入您的旅行需求")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "会话不存在或已过期")
	case errors.Is(err, ErrParseInFlight):
		RespondError(c, http.StatusConflict, "上一次解析尚未完成，请稍候")
	case errors.Is(err, ErrSubmissionInFlight):
		RespondError(c, http.StatusConflict, "计划正在生成中，请勿重复提交")
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusConflict, "当前状态不允许该操作")
	case errors.Is(err, ErrPlannerTimeout):
		RespondError(c, http.StatusGatewayTimeout, "生成计划超时，请重试")
	case errors.Is(err, ErrPlannerUnavailable):
		RespondError(c, http.StatusBadGateway, "规划服务暂不可用，请检查网络连接后重试")
	case errors.Is(err, ErrPlanNotCreated):
		RespondError(c, http.StatusBadGateway, "生成计划失败，请重试")
	default:
		if logger.Log != nil {
			logger.Log.Error("unhandled service error", zap.Error(err))
		}
		RespondError(c, http.StatusInternalServerError, "服务内部错误")
	}
}
