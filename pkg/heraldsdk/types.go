package heraldsdk

import "time"

// ErrorResponse is the wire shape of an API error. Used internally
// when parsing HTTP error responses; client code should work with
// APIError from errors.go instead.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// User is a registered account as the API returns it. The password
// hash never leaves the server.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Name          string    `json:"name,omitempty"`
	Mobile        string    `json:"mobile,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	AvailableFrom string    `json:"available_from,omitempty"`
	AvailableTo   string    `json:"available_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SignupRequest registers a new account. Role is not accepted; every
// signup creates a regular user.
type SignupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Name          string `json:"name,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Bio           string `json:"bio,omitempty"`
	AvailableFrom string `json:"available_from,omitempty"`
	AvailableTo   string `json:"available_to,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both /signup and /login.
type AuthResponse struct {
	// Token is the bearer token for subsequent requests
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresAt is when the token stops being accepted
	ExpiresAt time.Time `json:"expires_at"`

	User User `json:"user"`
}

// VerifyResponse is returned by GET /verify for a valid token.
type VerifyResponse struct {
	Valid bool `json:"valid"`
	User  User `json:"user"`
}

// ProfileUpdateRequest replaces the caller's display fields. Email,
// password, and role cannot be changed through this request.
type ProfileUpdateRequest struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Bio           string `json:"bio"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
}

// SendNotificationRequest asks the server to fan a message out to the
// users behind the given emails. Unregistered emails are skipped.
type SendNotificationRequest struct {
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
	IsCritical bool     `json:"is_critical,omitempty"`
}

// Notification is a stored notification with its sender resolved.
type Notification struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	SenderID    string     `json:"sender_id"`
	SenderEmail string     `json:"sender_email"`
	Recipients  []string   `json:"recipients,omitempty"`
	Status      string     `json:"status"`
	IsCritical  bool       `json:"is_critical"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// DeliveryReport summarises a fan-out: which recipient ids received an
// inbox entry and which appends failed.
type DeliveryReport struct {
	Delivered []string `json:"delivered"`
	Failed    []string `json:"failed"`
}

// SendNotificationResponse pairs the stored notification with its
// delivery report.
type SendNotificationResponse struct {
	Notification   Notification   `json:"notification"`
	DeliveryReport DeliveryReport `json:"delivery_report"`
}

// ListNotificationsResponse is the authenticated user's inbox, critical
// notifications first.
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
