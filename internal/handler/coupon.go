package handler

import (
	"context"
	"strings"
	"time"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
)

// ValidateCoupon checks a coupon code without claiming a use.
func (h *Handler) ValidateCoupon(ctx context.Context, req *oas.CouponCodeInput) (*oas.Coupon, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, &fieldError{Field: "code"}
	}
	c, err := h.CouponCheck.Validate(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	return toOASCoupon(c), nil
}

// CreateCoupon creates a coupon. New coupons are active unless isActive is
// false.
func (h *Handler) CreateCoupon(ctx context.Context, req *oas.CouponInput) (*oas.Coupon, error) {
	value, err := amount(req.Value, "value")
	if err != nil {
		return nil, err
	}
	expires, err := parseTime(req.ExpiryDate, "expiryDate")
	if err != nil {
		return nil, err
	}

	cr := coupon.CreateRequest{
		Code:      req.Code,
		Type:      pricing.DiscountType(strings.ToUpper(strings.TrimSpace(req.DiscountType))),
		Value:     value,
		ExpiresAt: expires,
		Active:    req.IsActive.Or(true),
	}
	if limit, ok := req.UsageLimit.Get(); ok {
		cr.UsageLimit = &limit
	}

	c, err := h.Coupons.Create(ctx, cr)
	if err != nil {
		return nil, err
	}
	return toOASCoupon(c), nil
}

// SetCouponActive enables or disables a coupon.
func (h *Handler) SetCouponActive(ctx context.Context, req *oas.CouponActiveChange, params oas.SetCouponActiveParams) (*oas.Coupon, error) {
	c, err := h.Coupons.SetActive(ctx, params.Code, req.IsActive)
	if err != nil {
		return nil, err
	}
	return toOASCoupon(c), nil
}

// parseTime accepts RFC 3339 timestamps and plain dates. A plain date
// expires at the end of that day, UTC.
func parseTime(s, field string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, &fieldError{Field: field}
}
