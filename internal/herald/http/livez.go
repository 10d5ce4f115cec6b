package http

import (
	"net/http"
	"time"

	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
)

// LivezHandler is the liveness probe. It answers 200 whenever the
// process is up.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := heraldsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
