package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a notification does not exist.
	ErrNotFound = errors.New("notification not found")
	// ErrUnknownAction is returned for an unsupported feed action.
	ErrUnknownAction = errors.New("unknown notification action")
)

// Type tags the origin of a notification.
type Type string

const (
	TypeOrder   Type = "ORDER"
	TypeCoupon  Type = "COUPON"
	TypeStock   Type = "STOCK_UPDATE"
	TypeProduct Type = "PRODUCT"
)

// Action is an admin operation on a single feed entry.
type Action string

const (
	ActionMarkRead   Action = "mark_read"
	ActionMarkUnread Action = "mark_unread"
	ActionPin        Action = "pin"
	ActionUnpin      Action = "unpin"
)

// Notification is an entry of the admin activity feed.
type Notification struct {
	ID        string
	Message   string
	Type      Type
	Read      bool
	Pinned    bool
	CreatedAt time.Time
}

// Flags is a partial update of the read and pinned flags. Nil fields are
// left untouched.
type Flags struct {
	Read   *bool
	Pinned *bool
}

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// List returns pinned entries first, then newest first.
	List(ctx context.Context, limit int) ([]Notification, error)
	SetFlags(ctx context.Context, id string, f Flags) (*Notification, error)
	Delete(ctx context.Context, id string) error
}

// Sink receives every notification after it is stored.
type Sink interface {
	Broadcast(n Notification)
}

// Emitter appends entries to the feed.
type Emitter interface {
	Emit(ctx context.Context, typ Type, message string) error
}

// OrderCreatedMessage describes a newly placed order.
func OrderCreatedMessage(orderID string, total decimal.Decimal) string {
	return fmt.Sprintf("New order received: %s for ₹%s", orderID, total.String())
}

// OrderStatusMessage describes an order status transition.
func OrderStatusMessage(orderID string, from, to string) string {
	return fmt.Sprintf("Order %s status updated: %s → %s", orderID, from, to)
}

// StockMessage describes a stock quantity change.
func StockMessage(product string, from, to int) string {
	return fmt.Sprintf("Stock updated for %s: %d → %d", product, from, to)
}

// LiveMessage describes a product being published or unpublished.
func LiveMessage(product string, live bool) string {
	if live {
		return fmt.Sprintf("Product %s is now live", product)
	}
	return fmt.Sprintf("Product %s was taken offline", product)
}

// CouponUpdatedMessage describes a coupon update. The activation state is
// appended only when it changed.
func CouponUpdatedMessage(code string, wasActive, active bool) string {
	msg := fmt.Sprintf("Coupon %s updated", code)
	if wasActive != active {
		if active {
			msg += ": Activated"
		} else {
			msg += ": Deactivated"
		}
	}
	return msg
}

// CouponCreatedMessage describes a newly created coupon.
func CouponCreatedMessage(code, discountType string, value decimal.Decimal) string {
	unit := "₹"
	if discountType == "PERCENT" {
		unit = "%"
	}
	return fmt.Sprintf("New coupon created: %s (%s - %s%s)", code, discountType, value.String(), unit)
}
