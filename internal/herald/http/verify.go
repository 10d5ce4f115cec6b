package http

import (
	"net/http"

	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/slogx"
)

type VerifyHandler struct {
	UserService *service.UserService
}

// ServeHTTP confirms the presented token is valid and returns the user
// it belongs to. The middleware has already verified the token and
// resolved the subject by the time this runs.
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		heraldsdk.ErrAuthRequired.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		heraldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, heraldsdk.VerifyResponse{
		Valid: true,
		User:  toSDKUser(user),
	})
}
