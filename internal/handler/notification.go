package handler

import (
	"context"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/notification"
)

// ListNotifications returns the feed, pinned first. A zero limit returns
// everything.
func (h *Handler) ListNotifications(ctx context.Context, params oas.ListNotificationsParams) ([]oas.Notification, error) {
	list, err := h.Notifications.List(ctx, params.Limit.Or(0))
	if err != nil {
		return nil, err
	}
	out := make([]oas.Notification, 0, len(list))
	for i := range list {
		out = append(out, toOASNotification(&list[i]))
	}
	return out, nil
}

// ApplyNotification marks a notification read or unread, or pins it.
func (h *Handler) ApplyNotification(ctx context.Context, req *oas.NotificationAction, params oas.ApplyNotificationParams) (*oas.Notification, error) {
	n, err := h.Notifications.Apply(ctx, params.ID, notification.Action(req.Action))
	if err != nil {
		return nil, err
	}
	out := toOASNotification(n)
	return &out, nil
}

// DeleteNotification removes a feed entry.
func (h *Handler) DeleteNotification(ctx context.Context, params oas.DeleteNotificationParams) error {
	return h.Notifications.Delete(ctx, params.ID)
}
