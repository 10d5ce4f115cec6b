package service

import (
	"context"
	"errors"
	"time"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/jwtx"
	"github.com/heraldhq/herald/pkg/slogx"
)

var ErrInvalidToken = errors.New("invalid_token")

// TokenService issues and verifies access tokens. Tokens are signed
// HS256 with the subject set to the user id and expire after
// AccessTTL.
type TokenService struct {
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

// NewTokenService wires a TokenService around a single HS256 key. A
// zero ttl falls back to the default one-hour lifetime.
func NewTokenService(key *jwtx.HS256, st store.Store, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	return &TokenService{
		Signer:    key,
		Verifier:  key,
		Store:     st,
		Issuer:    issuer,
		AccessTTL: ttl,
	}
}

// Issue signs a fresh access token for the given user.
func (s *TokenService) Issue(ctx context.Context, user domain.User) (string, time.Time, error) {
	now := time.Now()
	claims := jwtx.NewAccessClaims(user.ID, s.Issuer, s.AccessTTL, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

// Verify parses and validates a raw token and resolves the subject to
// a stored user. A token whose signature checks out but whose subject
// no longer exists is rejected with store.ErrNotFound so the caller
// can treat it as unauthenticated rather than malformed.
func (s *TokenService) Verify(ctx context.Context, raw string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		log.Debug("token rejected", "error", err)
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("valid token for unknown user", "user_id", claims.Subject)
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
