package order

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/pricing"
)

// WarningEmailFailed is attached to a finalization whose confirmation email
// could not be sent.
const WarningEmailFailed = "confirmation email could not be sent"

// FinalizeRequest carries a paid checkout into order creation.
type FinalizeRequest struct {
	CustomerID       string `validate:"required"`
	GatewayOrderID   string `validate:"required,max=64"`
	GatewayPaymentID string `validate:"required,max=64"`
	// Signature is checked only when signature verification is enabled.
	Signature     string
	DeclaredTotal decimal.Decimal
	Shipping      Shipping
	CouponCode    string `validate:"max=64"`
}

// FinalizeResult is the outcome of a finalization.
type FinalizeResult struct {
	Order *Order
	// Replayed is set when the payment had already been finalized and the
	// existing order is returned unchanged.
	Replayed bool
	Warnings []string
}

// CancelRequest asks to cancel a customer's order.
type CancelRequest struct {
	CustomerID  string `validate:"required"`
	OrderID     string `validate:"required"`
	Reason      string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

// Invoice is an uploaded invoice file.
type Invoice struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Option configures a Service.
type Option func(*Service)

// WithMailer sets the confirmation mailer.
func WithMailer(m Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

// WithPublisher sets the order event publisher.
func WithPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithSignatureVerifier enables payment signature verification.
func WithSignatureVerifier(v SignatureVerifier) Option {
	return func(s *Service) { s.signer = v }
}

// WithInvoiceStore sets where invoice files are kept.
func WithInvoiceStore(st InvoiceStore) Option {
	return func(s *Service) { s.invoices = st }
}

// WithMeterProvider sets the meter provider for order metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meterProvider = mp }
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer("storefront/order") }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service converts paid carts into orders and manages them afterwards.
type Service struct {
	orders    Repository
	coupons   coupon.Validator
	events    notification.Emitter
	alloc     *Allocator
	fees      pricing.FeeSource
	validate  *validator.Validate
	mailer    Mailer
	publisher EventPublisher
	signer    SignatureVerifier
	invoices  InvoiceStore
	now       func() time.Time

	meterProvider metric.MeterProvider
	tracer        trace.Tracer
	metrics       metrics
}

type metrics struct {
	finalized     metric.Int64Counter
	replays       metric.Int64Counter
	collisions    metric.Int64Counter
	totalMismatch metric.Int64Counter
	emailFailures metric.Int64Counter
}

// NewService creates an order Service.
func NewService(
	orders Repository,
	coupons coupon.Validator,
	events notification.Emitter,
	fees pricing.FeeSource,
	opts ...Option,
) *Service {
	s := &Service{
		orders:        orders,
		coupons:       coupons,
		events:        events,
		alloc:         NewAllocator(orders),
		fees:          fees,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		now:           time.Now,
		meterProvider: otel.GetMeterProvider(),
		tracer:        otel.GetTracerProvider().Tracer("storefront/order"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.meterProvider.Meter("storefront/order"))
	return s
}

func newMetrics(m metric.Meter) metrics {
	fallback := noop.Meter{}
	counter := func(name, desc string) metric.Int64Counter {
		c, err := m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}
	return metrics{
		finalized:     counter("orders.finalized", "Orders created from paid carts"),
		replays:       counter("orders.replayed", "Finalize calls answered with an existing order"),
		collisions:    counter("orders.id_collisions", "Public order id collisions on insert"),
		totalMismatch: counter("orders.total_mismatch", "Paid totals differing from the server quote"),
		emailFailures: counter("orders.email_failures", "Confirmation emails that failed to send"),
	}
}

// Finalize turns the customer's cart into an order once payment succeeded.
//
// Calling it again with the same gateway payment id returns the existing
// order. The cart snapshot, coupon claim, order insert and cart clear happen
// in one transaction; notification, event and email follow the commit and
// never fail the call.
func (s *Service) Finalize(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error) {
	ctx, span := s.tracer.Start(ctx, "order.Finalize",
		trace.WithAttributes(attribute.String("payment.id", req.GatewayPaymentID)),
	)
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}
	if !req.DeclaredTotal.IsPositive() {
		return nil, &ValidationError{Fields: []string{"totalAmount"}}
	}

	if res, err := s.replay(ctx, req); err != nil || res != nil {
		return res, err
	}

	if s.signer != nil {
		if err := s.signer.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.Signature); err != nil {
			return nil, errors.Wrap(ErrInvalidSignature, err.Error())
		}
	}

	var cp *coupon.Coupon
	if code := coupon.NormalizeCode(req.CouponCode); code != "" {
		var err error
		if cp, err = s.coupons.Validate(ctx, code); err != nil {
			return nil, err
		}
	}

	lg := zctx.From(ctx).With(
		zap.String("customer_id", req.CustomerID),
		zap.String("payment_id", req.GatewayPaymentID),
	)

	for attempt := 1; attempt <= MaxIDAttempts; attempt++ {
		orderID, err := s.alloc.Allocate(ctx)
		if err != nil {
			return nil, err
		}

		o, err := s.convert(ctx, req, orderID, cp)
		switch {
		case err == nil:
			s.metrics.finalized.Add(ctx, 1)
			if !o.TotalAmount.Equal(o.QuotedTotal) {
				s.metrics.totalMismatch.Add(ctx, 1)
				lg.Warn("Paid total differs from quote",
					zap.String("order_id", o.OrderID),
					zap.Stringer("paid", o.TotalAmount),
					zap.Stringer("quoted", o.QuotedTotal),
				)
			}
			lg.Info("Order finalized", zap.String("order_id", o.OrderID), zap.Int("attempt", attempt))
			return &FinalizeResult{
				Order:    o,
				Warnings: s.afterCommit(context.WithoutCancel(ctx), o),
			}, nil
		case errors.Is(err, ErrDuplicateOrderID):
			s.metrics.collisions.Add(ctx, 1)
			lg.Debug("Order id collision", zap.String("order_id", orderID), zap.Int("attempt", attempt))
			continue
		case errors.Is(err, ErrDuplicatePayment):
			res, rerr := s.replay(ctx, req)
			if rerr != nil {
				return nil, rerr
			}
			if res == nil {
				return nil, errors.Wrap(err, "payment recorded but order missing")
			}
			return res, nil
		case errors.Is(err, ErrEmptyCart):
			// A concurrent finalize of the same payment may have emptied the
			// cart while this one waited for the lock.
			if res, rerr := s.replay(ctx, req); rerr == nil && res != nil {
				return res, nil
			}
			return nil, err
		default:
			return nil, err
		}
	}
	return nil, ErrIDAllocationExhausted
}

// replay returns the order already created for the payment, or nil.
func (s *Service) replay(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error) {
	existing, err := s.orders.FindByPaymentID(ctx, req.GatewayPaymentID)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "find order by payment")
	case existing.CustomerID != req.CustomerID:
		return nil, ErrForbidden
	}
	s.metrics.replays.Add(ctx, 1)
	return &FinalizeResult{Order: existing, Replayed: true}, nil
}

func (s *Service) convert(ctx context.Context, req FinalizeRequest, orderID string, cp *coupon.Coupon) (*Order, error) {
	var o *Order
	err := s.orders.InTx(ctx, func(ctx context.Context, tx Tx) error {
		c, err := tx.LockCart(ctx, req.CustomerID)
		if err != nil {
			return errors.Wrap(err, "lock cart")
		}
		if c.Empty() {
			return ErrEmptyCart
		}

		lines, err := c.PricingLines()
		if err != nil {
			return err
		}

		var discount *pricing.Discount
		if cp != nil {
			if err := tx.ClaimCoupon(ctx, cp.Code); err != nil {
				return err
			}
			discount = cp.Discount()
		}

		fees, err := s.fees.CurrentFees(ctx)
		if err != nil {
			return errors.Wrap(err, "load fees")
		}
		o = s.newOrder(req, orderID, c, lines, pricing.Compute(lines, discount, fees))
		if cp != nil {
			o.CouponCode = cp.Code
		}
		if err := tx.Insert(ctx, o); err != nil {
			return err
		}
		if err := tx.ClearCart(ctx, c.ID); err != nil {
			return errors.Wrap(err, "clear cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) newOrder(req FinalizeRequest, orderID string, c *cart.Cart, lines []pricing.Line, q pricing.Quote) *Order {
	now := s.now().UTC()
	o := &Order{
		ID:               uuid.NewString(),
		OrderID:          orderID,
		CustomerID:       req.CustomerID,
		Status:           StatusPending,
		TotalAmount:      req.DeclaredTotal,
		Subtotal:         q.Subtotal,
		Tax:              q.Tax,
		DeliveryFee:      q.DeliveryFee,
		Discount:         q.Discount,
		QuotedTotal:      q.Total,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Shipping:         req.Shipping,
		Items:            make([]Item, 0, len(c.Lines)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for i, l := range c.Lines {
		name := l.ProductName
		if l.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", l.ProductName, l.VariantName)
		}
		o.Items = append(o.Items, Item{
			ID:          uuid.NewString(),
			ProductID:   l.ProductID,
			VariantID:   l.VariantID,
			ProductName: name,
			Quantity:    l.Quantity,
			UnitPrice:   lines[i].UnitPrice,
			TaxRate:     lines[i].TaxRate,
		})
	}
	return o
}

// afterCommit runs the best-effort side effects of a new order and returns
// the warnings to report to the customer.
func (s *Service) afterCommit(ctx context.Context, o *Order) []string {
	lg := zctx.From(ctx).With(zap.String("order_id", o.OrderID))

	if s.events != nil {
		msg := notification.OrderCreatedMessage(o.OrderID, o.TotalAmount)
		if err := s.events.Emit(ctx, notification.TypeOrder, msg); err != nil {
			lg.Warn("Failed to record order notification", zap.Error(err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, o); err != nil {
			lg.Warn("Failed to publish order event", zap.Error(err))
		}
	}

	var warnings []string
	if s.mailer != nil && o.Shipping.Email != "" {
		if err := s.mailer.SendConfirmation(ctx, o); err != nil {
			s.metrics.emailFailures.Add(ctx, 1)
			lg.Warn("Failed to send confirmation email", zap.Error(err))
			warnings = append(warnings, WarningEmailFailed)
		}
	}
	return warnings
}

// Get returns an order visible to the caller.
func (s *Service) Get(ctx context.Context, customerID string, admin bool, orderID string) (*Order, error) {
	o, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !admin && o.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return o, nil
}

// ListForCustomer returns the customer's orders, newest first.
func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]Order, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "list customer orders")
	}
	return orders, nil
}

// ListAll returns every order, newest first.
func (s *Service) ListAll(ctx context.Context, admin bool) ([]Order, error) {
	if !admin {
		return nil, ErrForbidden
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// Cancel cancels a customer's own order before it ships.
func (s *Service) Cancel(ctx context.Context, req CancelRequest) (*Order, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	o, err := s.orders.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != req.CustomerID {
		return nil, ErrForbidden
	}
	if !CanTransition(o.Status, StatusCancelled) {
		return nil, &StateError{OrderID: o.OrderID, From: o.Status, To: StatusCancelled}
	}

	err = s.orders.Cancel(ctx, o.OrderID, o.Status, req.Reason, req.Description)
	if errors.Is(err, ErrStatusConflict) {
		return nil, s.conflict(ctx, o.OrderID, StatusCancelled)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}

	s.statusChanged(ctx, o.OrderID, o.Status, StatusCancelled)
	return s.orders.GetByOrderID(ctx, o.OrderID)
}

// TransitionStatus moves an order along its lifecycle on behalf of the store.
func (s *Service) TransitionStatus(ctx context.Context, admin bool, orderID string, to Status) (*Order, error) {
	if !admin {
		return nil, ErrForbidden
	}
	if !to.Valid() {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	o, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, to) {
		return nil, &StateError{OrderID: o.OrderID, From: o.Status, To: to}
	}

	err = s.orders.UpdateStatus(ctx, o.OrderID, o.Status, to)
	if errors.Is(err, ErrStatusConflict) {
		return nil, s.conflict(ctx, o.OrderID, to)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}

	s.statusChanged(ctx, o.OrderID, o.Status, to)
	return s.orders.GetByOrderID(ctx, o.OrderID)
}

// conflict re-reads an order whose status moved underneath a conditional
// update and reports the transition against the new status.
func (s *Service) conflict(ctx context.Context, orderID string, to Status) error {
	o, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "reload order")
	}
	return &StateError{OrderID: orderID, From: o.Status, To: to}
}

func (s *Service) statusChanged(ctx context.Context, orderID string, from, to Status) {
	if s.events == nil {
		return
	}
	msg := notification.OrderStatusMessage(orderID, string(from), string(to))
	if err := s.events.Emit(ctx, notification.TypeOrder, msg); err != nil {
		zctx.From(ctx).Warn("Failed to record status notification",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

// AttachInvoice stores an invoice file for the order, replacing any
// previous one.
func (s *Service) AttachInvoice(ctx context.Context, admin bool, orderID string, inv Invoice) (*Order, error) {
	if !admin {
		return nil, ErrForbidden
	}
	if s.invoices == nil {
		return nil, errors.New("invoice storage is not configured")
	}
	if !allowedInvoiceType(inv.ContentType) {
		return nil, &ValidationError{Fields: []string{"file"}}
	}

	o, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("invoices/%s/%d%s", o.OrderID, s.now().UnixNano(), path.Ext(inv.Filename))
	url, err := s.invoices.Put(ctx, key, inv.ContentType, inv.Body)
	if err != nil {
		return nil, errors.Wrap(err, "store invoice")
	}
	if err := s.orders.SetInvoice(ctx, o.OrderID, url); err != nil {
		return nil, errors.Wrap(err, "set invoice")
	}

	if o.InvoiceURL != "" {
		if err := s.invoices.Delete(ctx, o.InvoiceURL); err != nil {
			zctx.From(ctx).Warn("Failed to delete previous invoice",
				zap.String("order_id", o.OrderID),
				zap.String("url", o.InvoiceURL),
				zap.Error(err),
			)
		}
	}

	o.InvoiceURL = url
	return o, nil
}

func allowedInvoiceType(contentType string) bool {
	return contentType == "application/pdf" || strings.HasPrefix(contentType, "image/")
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		// Drop the top-level struct name: "FinalizeRequest.Shipping.City" -> "Shipping.City".
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		verr.Fields = append(verr.Fields, ns)
	}
	return verr
}
