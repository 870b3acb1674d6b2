package handler

import (
	"context"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/payment"
)

// CreatePaymentOrder opens a gateway order the client pays against. The
// gateway order id is returned as orderId.
func (h *Handler) CreatePaymentOrder(ctx context.Context, req *oas.PaymentOrderRequest) (*oas.PaymentOrder, error) {
	total, err := amount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	intent, err := h.Payments.CreateIntent(ctx, payment.IntentRequest{
		CustomerID: identity(ctx).CustomerID,
		Amount:     total,
		Currency:   req.Currency.Or(""),
	})
	if err != nil {
		return nil, err
	}

	return &oas.PaymentOrder{
		OrderId:  intent.GatewayOrderID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Receipt:  intent.Receipt,
	}, nil
}
