package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/cryptox"
	"github.com/heraldhq/herald/pkg/idx"
)

var ErrBootstrapAlready = errors.New("system already bootstrapped")

// BootstrapService seeds the first admin account on an empty database
// so the admin broadcast route is reachable without manual inserts.
type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger
}

// EnsureAdmin creates the admin account when the user table is empty
// and credentials are configured. Returns ErrBootstrapAlready once any
// user exists; a blank email or password skips seeding without error.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		s.Logger.Debug("admin bootstrap skipped, no credentials configured")
		return nil
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return ErrBootstrapAlready
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}

	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrBootstrapAlready
		}
		return err
	}

	s.Logger.Info("admin account seeded", "user_id", admin.ID, "email", admin.Email)
	return nil
}
