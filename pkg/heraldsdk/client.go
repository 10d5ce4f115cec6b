package heraldsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the herald notification service. It
// exposes the unauthenticated operations and mints authenticated
// Sessions via Signup and Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new account and returns an authenticated session
// for it.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	var auth AuthResponse
	if err := c.postJSON(ctx, "/signup", req, &auth); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// Login authenticates an existing account and returns a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var auth AuthResponse
	if err := c.postJSON(ctx, "/login", LoginRequest{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// NewSessionFromToken wraps an existing bearer token in a Session.
// The session's cached user is populated on the first Verify call.
func (c *SDKClient) NewSessionFromToken(token string, expiresAt time.Time) *Session {
	return &Session{
		client:    c,
		token:     token,
		expiresAt: expiresAt,
	}
}

// Livez checks the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks the readiness probe, which includes database
// connectivity.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *SDKClient) postJSON(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(payload),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}
