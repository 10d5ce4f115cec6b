package http

import (
	"errors"
	"net/http"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP replaces the caller's display fields and returns the
// updated user. Email, password, and role are not part of the request
// shape and cannot change here.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		heraldsdk.ErrAuthRequired.WriteError(w)
		return
	}

	var req heraldsdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		heraldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, userID, domain.Profile{
		Name:          req.Name,
		Mobile:        req.Mobile,
		Bio:           req.Bio,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			heraldsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("profile update failed", "user_id", userID, "err", err)
		heraldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(user))
}
