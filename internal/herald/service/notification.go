package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/idx"
	"github.com/heraldhq/herald/pkg/slogx"
)

var ErrEmptyMessage = errors.New("empty_message")

// NotificationService persists notifications and fans them out to
// recipient inboxes. The notification row and its recipient set are
// written in one transaction; each inbox append is an independent
// write, so a partial fan-out leaves the notification intact and is
// surfaced through the delivery report instead of an error.
type NotificationService struct {
	Store store.Store
}

// Send resolves recipientEmails against registered users, persists the
// notification, and appends an inbox entry per resolved recipient.
// Emails that do not resolve are dropped without error. The returned
// report lists which recipient ids were delivered and which inbox
// writes failed.
func (s *NotificationService) Send(
	ctx context.Context,
	senderID, message string,
	recipientEmails []string,
	isCritical bool,
) (domain.Notification, domain.DeliveryReport, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(message) == "" {
		return domain.Notification{}, domain.DeliveryReport{}, ErrEmptyMessage
	}

	sender, err := s.Store.Users().GetUserByID(ctx, senderID)
	if err != nil {
		return domain.Notification{}, domain.DeliveryReport{}, err
	}

	// Best-effort membership: unknown emails are skipped, duplicates
	// collapse to one recipient.
	seen := make(map[string]struct{}, len(recipientEmails))
	var recipients []string
	for _, email := range recipientEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		user, err := s.Store.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Debug("recipient email not registered", "email", email)
				continue
			}
			return domain.Notification{}, domain.DeliveryReport{}, err
		}
		if _, ok := seen[user.ID]; ok {
			continue
		}
		seen[user.ID] = struct{}{}
		recipients = append(recipients, user.ID)
	}

	notification := domain.Notification{
		ID:          idx.New().String(),
		Message:     message,
		SenderID:    sender.ID,
		SenderEmail: sender.Email,
		Recipients:  recipients,
		Status:      domain.StatusSent,
		IsCritical:  isCritical,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Notifications().CreateNotification(ctx, notification)
	})
	if err != nil {
		return domain.Notification{}, domain.DeliveryReport{}, err
	}

	report := domain.DeliveryReport{
		Delivered: []string{},
		Failed:    []string{},
	}
	for _, userID := range recipients {
		if err := s.Store.Notifications().AppendInbox(ctx, userID, notification.ID); err != nil {
			log.Error("inbox append failed",
				"notification_id", notification.ID,
				"user_id", userID,
				"error", err)
			report.Failed = append(report.Failed, userID)
			continue
		}
		report.Delivered = append(report.Delivered, userID)
	}

	log.Info("notification sent",
		"notification_id", notification.ID,
		"sender_id", sender.ID,
		"delivered", len(report.Delivered),
		"failed", len(report.Failed))

	return notification, report, nil
}

// ListForUser returns the user's inbox with critical notifications
// first, then marks everything returned as delivered. The delivered
// status stamp is best-effort; a failed update still returns the list.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	log := slogx.FromContext(ctx)

	notifications, err := s.Store.Notifications().ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	var undelivered []string
	for _, n := range notifications {
		if n.Status != domain.StatusDelivered {
			undelivered = append(undelivered, n.ID)
		}
	}
	if len(undelivered) > 0 {
		now := time.Now().UTC()
		if err := s.Store.Notifications().MarkDelivered(ctx, undelivered, now); err != nil {
			log.Error("failed to mark notifications delivered", "error", err)
		} else {
			for i := range notifications {
				if notifications[i].Status != domain.StatusDelivered {
					notifications[i].Status = domain.StatusDelivered
					t := now
					notifications[i].DeliveredAt = &t
				}
			}
		}
	}

	return notifications, nil
}
