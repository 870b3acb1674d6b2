package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/notification"
)

var _ notification.Repository = (*NotificationRepository)(nil)

const notificationColumns = `id, message, type, is_read, is_pinned, created_at`

// NotificationRepository implements notification.Repository backed by PostgreSQL.
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository returns a NotificationRepository that uses the given pool.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

// Create appends a notification.
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, message, type, is_read, is_pinned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Message, string(n.Type), n.Read, n.Pinned, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// List returns pinned entries first, then newest first.
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		ORDER BY is_pinned DESC, created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (notification.Notification, error) {
		n, err := scanNotification(row)
		if err != nil {
			return notification.Notification{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning notifications: %w", err)
	}
	return out, nil
}

// SetFlags updates the flags that are set in f.
func (r *NotificationRepository) SetFlags(ctx context.Context, id string, f notification.Flags) (*notification.Notification, error) {
	n, err := scanNotification(r.db.QueryRow(ctx, `
		UPDATE notifications
		SET is_read = COALESCE($2, is_read), is_pinned = COALESCE($3, is_pinned)
		WHERE id = $1
		RETURNING `+notificationColumns,
		id, f.Read, f.Pinned,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotFound
		}
		return nil, fmt.Errorf("updating notification %q: %w", id, err)
	}
	return n, nil
}

// Delete removes a notification.
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting notification %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var (
		n   notification.Notification
		typ string
	)
	if err := row.Scan(&n.ID, &n.Message, &typ, &n.Read, &n.Pinned, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = notification.Type(typ)
	return &n, nil
}
