package http

import (
	"errors"
	"net/http"

	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP authenticates an email/password pair and returns a bearer
// token. Unknown emails and wrong passwords get the same response.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req heraldsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		heraldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			heraldsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		heraldsdk.ErrServerError.WriteError(w)
		return
	}

	token, expiresAt, err := h.TokenService.Issue(ctx, user)
	if err != nil {
		log.Error("failed to issue token", "user_id", user.ID, "err", err)
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
