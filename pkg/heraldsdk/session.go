package heraldsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated handle on the API. It keeps the bearer
// token and the last known user together instead of leaving callers to
// track them separately. Tokens are not refreshed; when one expires
// the caller logs in again for a new session.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      User
}

func newSession(client *SDKClient, auth AuthResponse) *Session {
	return &Session{
		client:    client,
		token:     auth.Token,
		expiresAt: auth.ExpiresAt,
		user:      auth.User,
	}
}

// Token returns the session's bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt returns when the token stops being accepted.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User returns the cached user from the most recent server response.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Verify asks the server whether the token is still good and refreshes
// the cached user from the response.
func (s *Session) Verify(ctx context.Context) (User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/verify", nil, nil)
	if err != nil {
		return User{}, err
	}

	var verify VerifyResponse
	if err := decodeJSON(resp, &verify, http.StatusOK); err != nil {
		return User{}, err
	}

	s.setUser(verify.User)
	return verify.User, nil
}

// UpdateProfile replaces the user's display fields and updates the
// cached user.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (User, error) {
	resp, err := s.putJSON(ctx, "/profile", req)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return User{}, err
	}

	s.setUser(user)
	return user, nil
}

// SendNotification fans a message out to the users behind the given
// emails.
func (s *Session) SendNotification(ctx context.Context, req SendNotificationRequest) (*SendNotificationResponse, error) {
	return s.send(ctx, "/notifications", req)
}

// BroadcastNotification is the admin send path. The server rejects it
// with 403 forbidden unless the session user is an admin.
func (s *Session) BroadcastNotification(ctx context.Context, req SendNotificationRequest) (*SendNotificationResponse, error) {
	return s.send(ctx, "/admin/notifications", req)
}

// ListNotifications fetches the user's inbox. Critical notifications
// come first; everything returned is marked delivered server-side.
func (s *Session) ListNotifications(ctx context.Context) ([]Notification, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/notifications", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListNotificationsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Notifications, nil
}

func (s *Session) send(ctx context.Context, path string, req SendNotificationRequest) (*SendNotificationResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, bytes.NewReader(payload),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, err
	}

	var result SendNotificationResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Session) putJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return s.doAuthRequest(ctx, http.MethodPut, path, bytes.NewReader(payload),
		map[string]string{"Content-Type": "application/json"})
}

func (s *Session) setUser(user User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
