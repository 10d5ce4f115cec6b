package httpx

import "net/http"

// RequireAdmin rejects callers whose resolved role is not admin. It must run
// after AuthnMiddleware; an unauthenticated request never reaches the role
// check.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				// Mis-ordered chain; treat as unauthenticated rather than
				// letting an anonymous caller through a role gate.
				writeBearerError(w, http.StatusUnauthorized, "auth_required", "missing bearer token")
				return
			}

			if identity.Role != RoleAdmin {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "forbidden",
					"error_description": "admin access required",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
