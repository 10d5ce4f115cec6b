package http

import (
	"errors"
	"net/http"

	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/slogx"
)

type SignupHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP registers a new account and returns a bearer token for it.
// Every signup creates a regular user; the role field is not accepted
// from clients.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req heraldsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		heraldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Signup(ctx, service.SignupRequest{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		Mobile:        req.Mobile,
		Bio:           req.Bio,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUser):
			heraldsdk.ErrDuplicateUser.WriteError(w)
		case errors.Is(err, service.ErrInvalidSignup):
			heraldsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("signup failed", "err", err)
			heraldsdk.ErrServerError.WriteError(w)
		}
		return
	}

	token, expiresAt, err := h.TokenService.Issue(ctx, user)
	if err != nil {
		log.Error("failed to issue token after signup", "user_id", user.ID, "err", err)
		heraldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, heraldsdk.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      toSDKUser(user),
	})
}
