// Package payment opens remote gateway orders before checkout.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/pricing"
)

// DefaultCurrency is used when an intent names no currency.
const DefaultCurrency = "INR"

var (
	// ErrInvalidAmount is returned for a non-positive intent amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrGateway marks failures reported by, or reaching, the payment gateway.
	ErrGateway = errors.New("payment gateway error")
	// ErrSignatureMismatch is returned when a payment signature does not verify.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)

// GatewayError wraps a gateway failure. It matches ErrGateway.
type GatewayError struct {
	// StatusCode is the HTTP status returned by the gateway, zero when the
	// request never got a response.
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Description != "":
		return fmt.Sprintf("gateway: %s (%s)", e.Description, e.Code)
	case e.Err != nil:
		return "gateway: " + e.Err.Error()
	default:
		return fmt.Sprintf("gateway: unexpected status %d", e.StatusCode)
	}
}

func (e *GatewayError) Is(target error) bool { return target == ErrGateway }

func (e *GatewayError) Unwrap() error { return e.Err }

// GatewayOrderRequest is sent to the gateway to open a remote order.
type GatewayOrderRequest struct {
	// Amount in minor units.
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// GatewayOrder is a remote order as reported by the gateway.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// Gateway opens remote payment orders.
type Gateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
}

// IntentRequest asks for a payment intent for a quoted total.
type IntentRequest struct {
	CustomerID string
	Amount     decimal.Decimal
	Currency   string
}

// Intent is an opened gateway order the client pays against.
type Intent struct {
	GatewayOrderID string
	// Amount in minor units.
	Amount   int64
	Currency string
	Receipt  string
}

// Service coordinates with the payment gateway.
type Service struct {
	gateway  Gateway
	currency string
	now      func() time.Time
}

// NewService creates a payment Service. An empty currency means
// DefaultCurrency.
func NewService(gateway Gateway, currency string) *Service {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Service{
		gateway:  gateway,
		currency: strings.ToUpper(currency),
		now:      time.Now,
	}
}

// CreateIntent opens a gateway order for the amount. Nothing order-side is
// written here.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency := s.currency
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}

	gr := GatewayOrderRequest{
		Amount:   pricing.ToMinorUnits(req.Amount),
		Currency: currency,
		Receipt:  fmt.Sprintf("receipt_%d", s.now().UnixNano()),
	}
	if req.CustomerID != "" {
		gr.Notes = map[string]string{"customer_id": req.CustomerID}
	}

	remote, err := s.gateway.CreateOrder(ctx, gr)
	if err != nil {
		zctx.From(ctx).Error("Failed to create gateway order",
			zap.String("receipt", gr.Receipt),
			zap.Int64("amount", gr.Amount),
			zap.Error(err),
		)
		if errors.Is(err, ErrGateway) {
			return nil, err
		}
		return nil, &GatewayError{Err: err}
	}

	return &Intent{
		GatewayOrderID: remote.ID,
		Amount:         remote.Amount,
		Currency:       remote.Currency,
		Receipt:        remote.Receipt,
	}, nil
}
