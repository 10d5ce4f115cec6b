package domain

import "time"

// Notification statuses. A notification is "sent" the moment it is
// persisted and flips to "delivered" the first time a recipient lists it.
// "queued" exists in the schema for deferred delivery but nothing produces
// it today.
const (
	StatusSent      = "sent"
	StatusQueued    = "queued"
	StatusDelivered = "delivered"
)

type Notification struct {
	ID          string
	Message     string
	SenderID    string
	SenderEmail string // resolved on read, not stored on the notification row
	Recipients  []string
	Status      string
	IsCritical  bool
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// DeliveryReport is the explicit outcome of a send fan-out. Recipients whose
// inbox append succeeded land in Delivered; recipients whose append failed
// after the notification was persisted land in Failed. Unresolved emails
// never appear in either list — they are dropped during resolution.
type DeliveryReport struct {
	Delivered []string `json:"delivered"`
	Failed    []string `json:"failed"`
}
