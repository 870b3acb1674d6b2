package handler

import (
	"context"
	"strings"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/order"
)

// FinalizeOrder converts the caller's paid cart into an order. A new order
// is answered with 201, a replayed payment with 200 and the existing order.
func (h *Handler) FinalizeOrder(ctx context.Context, req *oas.FinalizeOrderRequest) (oas.FinalizeOrderRes, error) {
	declared, err := amount(req.TotalAmount, "totalAmount")
	if err != nil {
		return nil, err
	}

	// Checkout clients send customerDetails; shipping is accepted as well.
	details, ok := req.CustomerDetails.Get()
	if !ok {
		details = req.Shipping.Value
	}
	code := req.CouponCode.Or("")
	if applied, ok := req.AppliedCoupon.Get(); ok && code == "" {
		code = applied.Code
	}

	res, err := h.Orders.Finalize(ctx, order.FinalizeRequest{
		CustomerID:       identity(ctx).CustomerID,
		GatewayOrderID:   req.RazorpayOrderId,
		GatewayPaymentID: req.RazorpayPaymentId,
		Signature:        req.RazorpaySignature.Or(""),
		DeclaredTotal:    declared,
		Shipping:         fromOASShipping(details),
		CouponCode:       code,
	})
	if err != nil {
		return nil, err
	}

	out := oas.FinalizeResult{
		ID:       res.Order.OrderID,
		Order:    toOASOrder(res.Order),
		Replayed: res.Replayed,
		Warnings: append([]string{}, res.Warnings...),
	}
	if res.Replayed {
		r := oas.FinalizeOrderOK(out)
		return &r, nil
	}
	r := oas.FinalizeOrderCreated(out)
	return &r, nil
}

// ListOrders returns the caller's orders, newest first.
func (h *Handler) ListOrders(ctx context.Context) ([]oas.Order, error) {
	orders, err := h.Orders.ListForCustomer(ctx, identity(ctx).CustomerID)
	if err != nil {
		return nil, err
	}
	return toOASOrders(orders), nil
}

// ListAllOrders returns every order.
func (h *Handler) ListAllOrders(ctx context.Context) ([]oas.Order, error) {
	orders, err := h.Orders.ListAll(ctx, identity(ctx).Admin)
	if err != nil {
		return nil, err
	}
	return toOASOrders(orders), nil
}

// GetOrder returns an order to its owner or an admin.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	id := identity(ctx)
	o, err := h.Orders.Get(ctx, id.CustomerID, id.Admin, params.ID)
	if err != nil {
		return nil, err
	}
	out := toOASOrder(o)
	return &out, nil
}

// CancelOrder cancels one of the caller's pending orders.
func (h *Handler) CancelOrder(ctx context.Context, req *oas.CancelOrderRequest, params oas.CancelOrderParams) (*oas.Order, error) {
	o, err := h.Orders.Cancel(ctx, order.CancelRequest{
		CustomerID:  identity(ctx).CustomerID,
		OrderID:     params.ID,
		Reason:      req.CancelReason,
		Description: req.CancelDescription.Or(""),
	})
	if err != nil {
		return nil, err
	}
	out := toOASOrder(o)
	return &out, nil
}

// TransitionOrder moves an order one step along its lifecycle.
func (h *Handler) TransitionOrder(ctx context.Context, req *oas.StatusChange, params oas.TransitionOrderParams) (*oas.Order, error) {
	status := order.Status(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, &fieldError{Field: "status"}
	}

	o, err := h.Orders.TransitionStatus(ctx, identity(ctx).Admin, params.ID, status)
	if err != nil {
		return nil, err
	}
	out := toOASOrder(o)
	return &out, nil
}
