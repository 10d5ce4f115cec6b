package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/heraldhq/herald/pkg/cryptox"
	"github.com/heraldhq/herald/pkg/jwtx"
	"github.com/heraldhq/herald/pkg/slogx"
)

// IdentityResolver turns a verified token subject into a caller identity.
// It returns ok=false when the subject no longer maps to a live user.
type IdentityResolver func(ctx context.Context, userID string) (Identity, bool)

// AuthnMiddleware authenticates bearer requests. Three outcomes:
//
//   - no/empty bearer token: 401 auth_required
//   - token fails verification (bad signature, malformed, expired): 400 invalid_token
//   - token verifies but the embedded user no longer resolves: 401, same as
//     having no token at all — a verified-but-unresolved caller is not an
//     identity we pass downstream
//
// On success the resolved Identity is attached to the request context.
func AuthnMiddleware(v jwtx.Verifier, resolve IdentityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, http.StatusUnauthorized, "auth_required", "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				writeBearerError(w, http.StatusUnauthorized, "auth_required", "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed",
					"err", err,
					"token_fp", cryptox.FingerprintToken(raw),
				)
				writeBearerError(w, http.StatusBadRequest, "invalid_token", "token verification failed")
				return
			}

			identity, ok := resolve(ctx, claims.Subject)
			if !ok {
				log.Warn("token subject did not resolve to a user", "user_id", claims.Subject)
				writeBearerError(w, http.StatusUnauthorized, "auth_required", "unknown identity")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, identity)))
		})
	}
}

func writeBearerError(w http.ResponseWriter, code int, errCode, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+errCode+`", error_description="`+desc+`"`)
	WriteJSON(w, code, map[string]string{
		"error":             errCode,
		"error_description": desc,
	})
}
