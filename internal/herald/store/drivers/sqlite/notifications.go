package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/heraldhq/herald/internal/herald/domain"
)

type notificationsRepo struct {
	q queryer
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO notifications (id, message, sender_id, status, is_critical, created_at, delivered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Message, n.SenderID, n.Status, n.IsCritical,
		n.CreatedAt.UTC(), mapOptionalTime(n.DeliveredAt),
	)
	if err != nil {
		return mapConflict(err)
	}

	for _, userID := range n.Recipients {
		if _, err := r.q.ExecContext(ctx,
			`INSERT INTO notification_recipients (notification_id, user_id) VALUES (?, ?)`,
			n.ID, userID,
		); err != nil {
			return mapConflict(err)
		}
	}

	return nil
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT n.id, n.message, n.sender_id, u.email, n.status, n.is_critical, n.created_at, n.delivered_at
		 FROM notifications n
		 JOIN users u ON u.id = n.sender_id
		 WHERE n.id = ?`, id)

	n, err := scanNotification(row)
	if err != nil {
		return domain.Notification{}, err
	}

	recipients, err := r.recipientsOf(ctx, n.ID)
	if err != nil {
		return domain.Notification{}, err
	}
	n.Recipients = recipients

	return n, nil
}

func (r *notificationsRepo) AppendInbox(ctx context.Context, userID, notificationID string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO inbox_entries (user_id, notification_id, created_at) VALUES (?, ?, ?)`,
		userID, notificationID, time.Now().UTC(),
	)
	return mapConflict(err)
}

func (r *notificationsRepo) ListByRecipient(ctx context.Context, userID string) ([]domain.Notification, error) {
	// Critical notifications surface first; ULID ids keep insertion order
	// within each class.
	rows, err := r.q.QueryContext(ctx,
		`SELECT n.id, n.message, n.sender_id, u.email, n.status, n.is_critical, n.created_at, n.delivered_at
		 FROM notifications n
		 JOIN notification_recipients nr ON nr.notification_id = n.id
		 JOIN users u ON u.id = n.sender_id
		 WHERE nr.user_id = ?
		 ORDER BY n.is_critical DESC, n.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		recipients, err := r.recipientsOf(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Recipients = recipients
	}

	return out, nil
}

func (r *notificationsRepo) MarkDelivered(ctx context.Context, notificationIDs []string, deliveredAt time.Time) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(notificationIDs)), ", ")
	args := make([]any, 0, len(notificationIDs)+2)
	args = append(args, domain.StatusDelivered, deliveredAt.UTC())
	for _, id := range notificationIDs {
		args = append(args, id)
	}

	_, err := r.q.ExecContext(ctx,
		`UPDATE notifications SET status = ?, delivered_at = ?
		 WHERE id IN (`+placeholders+`) AND status != 'delivered'`, args...)
	return err
}

func (r *notificationsRepo) DeleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM notifications WHERE status = 'delivered' AND delivered_at < ?`,
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationsRepo) recipientsOf(ctx context.Context, notificationID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT user_id FROM notification_recipients WHERE notification_id = ? ORDER BY user_id`,
		notificationID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanNotification(row rowScanner) (domain.Notification, error) {
	var (
		n           domain.Notification
		deliveredAt sql.NullTime
	)
	err := row.Scan(
		&n.ID, &n.Message, &n.SenderID, &n.SenderEmail,
		&n.Status, &n.IsCritical, &n.CreatedAt, &deliveredAt,
	)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	n.DeliveredAt = mapNullTimePtr(deliveredAt)
	return n, nil
}
