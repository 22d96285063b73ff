package planner_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/infra"
	"tripway/pkg/logger"
)

var Module = fx.Provide(ProvidePlannerClient)

// ProvidePlannerClient builds the remote planning-service client from
// environment variables. The plan call's bounded wait defaults to the 120s
// the legacy web client used.
func ProvidePlannerClient() infra.PlannerAPI {
	baseURL := getEnvWithDefault("PLANNER_BASE_URL", "http://localhost:8000/api")
	timeout := time.Duration(getEnvIntWithDefault("PLANNER_PLAN_TIMEOUT_SECONDS", 120)) * time.Second

	logger.Log.Info("planner client configured",
		zap.String("base_url", baseURL),
		zap.Duration("plan_timeout", timeout))

	return infra.NewPlannerClient(baseURL, timeout)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
