package session_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripway/internal/services"
)

var Module = fx.Provide(ProvideSessionStore)

// ProvideSessionStore builds the TTL-bound negotiation session store.
func ProvideSessionStore() services.SessionStore {
	ttl := 30 * time.Minute
	if value := os.Getenv("SESSION_TTL_MINUTES"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Minute
		}
	}
	return services.NewSessionStore(ttl)
}
