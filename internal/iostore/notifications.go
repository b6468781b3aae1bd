package iostore

import (
	"context"
	"fmt"
	"strings"

	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/schema"
)

var notificationCols = schema.Columns(schema.Notification{})

// SaveNotification stores a notification. Saving the same id twice keeps
// the first copy, so redelivery is harmless.
func (s *Store) SaveNotification(
	ctx context.Context,
	n lifecycle.Notification,
) error {
	q := fmt.Sprintf(
		"INSERT INTO notifications (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING",
		strings.Join(notificationCols, ", "),
		placeholders(len(notificationCols)),
	)
	_, err := s.db.ExecContext(ctx, s.rebind(q),
		n.ID,
		n.UserID,
		n.PuskesmasID,
		n.ReportID,
		n.Title,
		n.Message,
		string(n.Type),
		n.IsRead,
		n.CreatedAt.UTC(),
	)
	if err != nil {
		return NotificationError(n.ID, err)
	}
	return nil
}

// NotificationsForUser returns notifications of a user, newest first.
func (s *Store) NotificationsForUser(
	ctx context.Context,
	userID string,
) ([]lifecycle.Notification, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id",
		strings.Join(notificationCols, ", "),
	)
	rows, err := s.db.QueryContext(ctx, s.rebind(q), userID)
	if err != nil {
		return nil, QueryError("notifications", err)
	}
	defer rows.Close()

	var res []lifecycle.Notification
	for rows.Next() {
		var (
			n       lifecycle.Notification
			typ     string
			created sqlTime
		)
		err = rows.Scan(
			&n.ID,
			&n.UserID,
			&n.PuskesmasID,
			&n.ReportID,
			&n.Title,
			&n.Message,
			&typ,
			&n.IsRead,
			&created,
		)
		if err != nil {
			return nil, QueryError("notifications", err)
		}
		n.Type = lifecycle.NotificationType(typ)
		n.CreatedAt = created.Time
		res = append(res, n)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("notifications", err)
	}
	return res, nil
}
