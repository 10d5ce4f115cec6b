package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "herald-test"

func testSecret() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := NewHS256([]byte("too short"), testIssuer)
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	h, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)

	claims := NewAccessClaims("user-123", testIssuer, time.Hour, time.Now())
	raw, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(raw, ".")), "expected compact JWS")

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyRejectsMalformed(t *testing.T) {
	h, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := h.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(NewAccessClaims("user-123", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	h, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)

	// Issued two hours ago with a one hour TTL.
	claims := NewAccessClaims("user-123", testIssuer, time.Hour, time.Now().Add(-2*time.Hour))
	raw, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer, err := NewHS256(testSecret(), "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(NewAccessClaims("user-123", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsTampering(t *testing.T) {
	h, err := NewHS256(testSecret(), testIssuer)
	require.NoError(t, err)

	raw, err := h.Sign(NewAccessClaims("user-123", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	_, err = h.Verify(strings.Join(parts, "."))
	require.Error(t, err)
}
