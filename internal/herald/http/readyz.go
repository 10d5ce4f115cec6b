package http

import (
	"net/http"
	"time"

	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
)

// ReadyzHandler is the readiness probe. It answers 503 while the
// database is unreachable.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &heraldsdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := heraldsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
