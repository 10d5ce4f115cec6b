package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyIdentity ctxKey = "identity"
)

// RoleAdmin is the role value the admin gate checks for.
const RoleAdmin = "admin"

// Identity is the caller resolved from a verified token. It deliberately
// carries only what route gating needs; handlers load the full user record
// themselves.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(Identity)
	return id, ok
}

// UserIDFromContext returns the authenticated caller's user id, or "".
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

func contextWithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	return context.WithValue(ctx, CtxKeyIdentity, id)
}
