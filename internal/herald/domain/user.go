package domain

import "time"

// Roles a user can hold. Signup always produces RoleUser; the admin account
// is created through bootstrap.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string
	Email        string // globally unique
	PasswordHash string // argon2 encoded
	Role         string // "user" or "admin"

	// Free-text display fields, mutable only through profile updates.
	Name          string
	Mobile        string
	Bio           string
	AvailableFrom string
	AvailableTo   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Profile is the set of display fields a user may update. Email, password
// and role are immutable through the profile path.
type Profile struct {
	Name          string
	Mobile        string
	Bio           string
	AvailableFrom string
	AvailableTo   string
}
