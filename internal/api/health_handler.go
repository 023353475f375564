package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/redact"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// HealthHandler returns a handler for GET /health. A nil db reports the
// database as "unknown".
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Database: "unknown"}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logger.FromContextOrDefault(r.Context(), slog.Default()).
					Warn("health check failed", slog.String("error", redact.Error(err)))
				resp.Status = "degraded"
				resp.Database = "unreachable"
				status = http.StatusServiceUnavailable
			} else {
				resp.Database = "ok"
			}
		}

		shared.RespondWithJSON(w, r, status, resp)
	}
}
