package service

import (
	"context"
	"testing"
	"time"

	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, st store.Store) *TokenService {
	t.Helper()

	key, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "herald-test")
	require.NoError(t, err)
	return NewTokenService(key, st, "herald-test", 0)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	tokens := newTestTokenService(t, st)

	user, err := users.Signup(ctx, SignupRequest{
		Email:    "dave@example.com",
		Password: "a long enough password",
	})
	require.NoError(t, err)

	raw, expiresAt, err := tokens.Issue(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultAccessTokenTTL), expiresAt, 5*time.Second)

	resolved, err := tokens.Verify(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, user.Email, resolved.Email)
}

func TestTokenServiceVerifyRejections(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	tokens := newTestTokenService(t, st)

	user, err := users.Signup(ctx, SignupRequest{
		Email:    "erin@example.com",
		Password: "a long enough password",
	})
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := tokens.Verify(ctx, "not.a.jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "herald-test")
		require.NoError(t, err)
		raw, err := other.Sign(jwtx.NewAccessClaims(user.ID, "herald-test", time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = tokens.Verify(ctx, raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		key := tokens.Signer.(*jwtx.HS256)
		raw, err := key.Sign(jwtx.NewAccessClaims(user.ID, "herald-test", time.Hour, time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		_, err = tokens.Verify(ctx, raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid token for deleted user", func(t *testing.T) {
		raw, _, err := tokens.Issue(ctx, user)
		require.NoError(t, err)

		// An id that never existed stands in for a deleted account.
		ghost := user
		ghost.ID = "01K00000000000000000GHOST0"
		rawGhost, _, err := tokens.Issue(ctx, ghost)
		require.NoError(t, err)

		_, err = tokens.Verify(ctx, rawGhost)
		require.ErrorIs(t, err, store.ErrNotFound)

		// The real user still verifies.
		_, err = tokens.Verify(ctx, raw)
		require.NoError(t, err)
	})
}
