package handler

import (
	"context"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/settings"
)

// GetCart returns the caller's cart, creating it on first access.
func (h *Handler) GetCart(ctx context.Context) (*oas.Cart, error) {
	c, err := h.Carts.Get(ctx, identity(ctx).CustomerID)
	if err != nil {
		return nil, err
	}
	out := toOASCart(c)
	return &out, nil
}

// AddCartItem adds a product to the caller's cart. Quantity defaults to 1.
func (h *Handler) AddCartItem(ctx context.Context, req *oas.CartItemInput) (*oas.Cart, error) {
	c, err := h.Carts.Add(ctx, identity(ctx).CustomerID, cart.AddRequest{
		ProductID: req.ProductId,
		VariantID: req.VariantId.Or(""),
		Quantity:  req.Quantity.Or(0),
	})
	if err != nil {
		return nil, err
	}
	out := toOASCart(c)
	return &out, nil
}

// UpdateCartItem sets the quantity of a cart item.
func (h *Handler) UpdateCartItem(ctx context.Context, req *oas.CartItemQuantity, params oas.UpdateCartItemParams) (*oas.Cart, error) {
	c, err := h.Carts.Update(ctx, identity(ctx).CustomerID, params.ItemId, req.Quantity)
	if err != nil {
		return nil, err
	}
	out := toOASCart(c)
	return &out, nil
}

// RemoveCartItem deletes an item of the caller's cart.
func (h *Handler) RemoveCartItem(ctx context.Context, params oas.RemoveCartItemParams) error {
	return h.Carts.Remove(ctx, identity(ctx).CustomerID, params.ItemId)
}

// QuoteCart prices the caller's cart with an optional coupon.
func (h *Handler) QuoteCart(ctx context.Context, req *oas.QuoteRequest) (*oas.CartQuote, error) {
	p, err := h.Carts.Quote(ctx, identity(ctx).CustomerID, req.CouponCode.Or(""))
	if err != nil {
		return nil, err
	}
	return &oas.CartQuote{
		Cart:  toOASCart(p.Cart),
		Quote: toOASQuote(p.Quote, p.Coupon),
	}, nil
}

// GetFees returns the delivery fees in effect.
func (h *Handler) GetFees(ctx context.Context) (*oas.FeeSettings, error) {
	fs, err := h.Settings.Fees(ctx)
	if err != nil {
		return nil, err
	}
	return toOASFees(fs), nil
}

// UpdateFees replaces the delivery fees. Quotes and new orders use them
// immediately.
func (h *Handler) UpdateFees(ctx context.Context, req *oas.FeeSettingsInput) (*oas.FeeSettings, error) {
	var (
		fs  settings.FeeSettings
		err error
	)
	if fs.Fees.StandardDeliveryFee, err = amount(req.StandardDeliveryFee, "standardDeliveryFee"); err != nil {
		return nil, err
	}
	if fs.Fees.FreeDeliveryThreshold, err = amount(req.FreeDeliveryThreshold, "freeDeliveryThreshold"); err != nil {
		return nil, err
	}
	current, err := h.Settings.Fees(ctx)
	if err != nil {
		return nil, err
	}
	fs.FreeDeliveryCoupon = req.FreeDeliveryCoupon.Or(current.FreeDeliveryCoupon)

	saved, err := h.Settings.UpdateFees(ctx, identity(ctx).Admin, fs)
	if err != nil {
		return nil, err
	}
	return toOASFees(saved), nil
}

func toOASFees(fs *settings.FeeSettings) *oas.FeeSettings {
	return &oas.FeeSettings{
		StandardDeliveryFee:   money(fs.Fees.StandardDeliveryFee),
		FreeDeliveryThreshold: money(fs.Fees.FreeDeliveryThreshold),
		FreeDeliveryCoupon:    fs.FreeDeliveryCoupon,
	}
}
