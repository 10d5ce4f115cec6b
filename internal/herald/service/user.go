package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/cryptox"
	"github.com/heraldhq/herald/pkg/idx"
	"github.com/heraldhq/herald/pkg/slogx"
)

var (
	ErrDuplicateUser      = errors.New("duplicate_user")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSignup      = errors.New("invalid_signup")
)

// UserService handles account registration, credential checks, and
// profile edits. Email, password hash, and role never change after
// signup; UpdateProfile only touches the display fields.
type UserService struct {
	Store store.Store
}

// SignupRequest carries the fields accepted at registration. Role is
// always "user"; admin accounts are only seeded by the bootstrap
// service.
type SignupRequest struct {
	Email         string
	Password      string
	Name          string
	Mobile        string
	Bio           string
	AvailableFrom string
	AvailableTo   string
}

// Signup registers a new account. Returns ErrDuplicateUser when the
// email is already taken and ErrInvalidSignup when required fields are
// missing or malformed.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return domain.User{}, ErrInvalidSignup
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidSignup
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:            idx.New().String(),
		Email:         email,
		PasswordHash:  hash,
		Role:          domain.RoleUser,
		Name:          strings.TrimSpace(req.Name),
		Mobile:        strings.TrimSpace(req.Mobile),
		Bio:           req.Bio,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup with existing email", "email", email)
			return domain.User{}, ErrDuplicateUser
		}
		return domain.User{}, err
	}

	log.Info("user registered", "user_id", user.ID)

	// Re-read for the storage-assigned timestamps.
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Login checks an email/password pair against the stored hash.
// Returns ErrInvalidCredentials for both unknown emails and wrong
// passwords so callers cannot distinguish the two.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt", "user_id", user.ID)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile replaces the caller's display fields. Identity fields
// are ignored regardless of what the caller sends.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (domain.User, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Mobile = strings.TrimSpace(profile.Mobile)

	if err := s.Store.Users().UpdateProfile(ctx, userID, profile); err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}
