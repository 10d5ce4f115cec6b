package store

import (
	"context"
	"errors"
	"time"

	"github.com/heraldhq/herald/internal/herald/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Notifications() Notifications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise committed. This is
	// the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and recipient resolution.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken; uniqueness is
	// enforced at the storage boundary.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates the display fields only and bumps updated_at.
	// Email, password hash and role are untouchable through this path.
	UpdateProfile(ctx context.Context, userID string, p domain.Profile) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Notifications interface {
	// CreateNotification inserts the notification row and its recipient
	// set in one statement batch. Callers wanting atomicity run it inside
	// WithTx.
	CreateNotification(ctx context.Context, n domain.Notification) error

	// GetNotificationByID returns a single notification with its
	// recipient set and resolved sender email.
	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// AppendInbox adds a notification reference to one user's inbox.
	// Each call is an independent write; fan-out failure isolation
	// depends on that.
	AppendInbox(ctx context.Context, userID, notificationID string) error

	// ListByRecipient returns every notification addressed to the user,
	// critical ones first, insertion order within each class. Sender is
	// resolved to its email.
	ListByRecipient(ctx context.Context, userID string) ([]domain.Notification, error)

	// MarkDelivered flips the listed notifications to delivered and
	// stamps delivered_at. Already-delivered rows are left alone.
	MarkDelivered(ctx context.Context, notificationIDs []string, deliveredAt time.Time) error

	// DeleteDeliveredBefore removes delivered notifications whose
	// delivered_at is older than the cutoff. Housekeeping only.
	DeleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
