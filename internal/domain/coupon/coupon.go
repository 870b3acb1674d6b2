package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/pricing"
)

var (
	// ErrNotFound is returned when no coupon has the requested code.
	ErrNotFound = errors.New("coupon not found")
	// ErrInactive is returned for a coupon that has been switched off.
	ErrInactive = errors.New("coupon is not active")
	// ErrExpired is returned once a coupon's expiry date has passed.
	ErrExpired = errors.New("coupon has expired")
	// ErrExhausted is returned when a coupon has reached its usage limit.
	ErrExhausted = errors.New("coupon usage limit reached")
	// ErrDuplicateCode is returned when creating a coupon whose code exists.
	ErrDuplicateCode = errors.New("coupon code already exists")
	// ErrInvalid is returned for a malformed coupon definition.
	ErrInvalid = errors.New("invalid coupon")
)

// Coupon is a named discount rule.
type Coupon struct {
	ID        string
	Code      string
	Type      pricing.DiscountType
	Value     decimal.Decimal
	ExpiresAt time.Time
	Active    bool
	// UsageLimit is nil for unlimited coupons.
	UsageLimit *int
	UsedCount  int
	CreatedAt  time.Time
}

// Discount returns the pricing view of the coupon.
func (c *Coupon) Discount() *pricing.Discount {
	return &pricing.Discount{Type: c.Type, Value: c.Value}
}

// Check reports why the coupon cannot be applied at now, or nil when it
// can. A coupon is expired from its expiry instant on. Expiry is checked
// before the active flag, so an expired coupon is always reported as
// expired.
func (c *Coupon) Check(now time.Time) error {
	if !now.Before(c.ExpiresAt) {
		return ErrExpired
	}
	if !c.Active {
		return ErrInactive
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrExhausted
	}
	return nil
}

// NormalizeCode returns the canonical upper-case form of a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Repository provides lookup and mutation of coupons.
type Repository interface {
	// FindByCode looks up a coupon by its normalized code. Returns
	// ErrNotFound when it does not exist.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	SetActive(ctx context.Context, code string, active bool) (*Coupon, error)
}
