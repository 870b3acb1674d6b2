package order

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
)

// Sentinel errors returned by the order service.
var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrIDAllocationExhausted = errors.New("could not allocate a unique order id")
	ErrNotFound              = errors.New("order not found")
	ErrForbidden             = errors.New("order belongs to another customer")
	ErrInvalidState          = errors.New("invalid order state transition")
	ErrInvalidSignature      = errors.New("payment signature mismatch")

	// ErrDuplicateOrderID is returned by Tx.Insert when the public order id
	// is already taken.
	ErrDuplicateOrderID = errors.New("duplicate order id")
	// ErrDuplicatePayment is returned by Tx.Insert when an order for the
	// gateway payment id already exists.
	ErrDuplicatePayment = errors.New("duplicate gateway payment id")
	// ErrStatusConflict is returned by conditional status updates when the
	// stored status no longer matches the expected one.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// StateError is returned when a status transition is not allowed.
type StateError struct {
	OrderID string
	From    Status
	To      Status
}

func (e *StateError) Error() string {
	switch {
	case e.To == StatusCancelled && e.From == StatusCancelled:
		return fmt.Sprintf("order %s is already cancelled", e.OrderID)
	case e.To == StatusCancelled:
		return "cannot cancel shipped or delivered orders"
	default:
		return fmt.Sprintf("order %s cannot move from %s to %s", e.OrderID, e.From, e.To)
	}
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// Shipping is the contact and delivery snapshot captured at purchase time.
type Shipping struct {
	FullName  string `validate:"required,max=200"`
	ContactNo string `validate:"required,min=6,max=20"`
	Email     string `validate:"omitempty,email,max=254"`
	Address   string `validate:"required,max=500"`
	City      string `validate:"required,max=100"`
	State     string `validate:"max=100"`
	Pincode   string `validate:"required,max=12"`
	Country   string `validate:"required,max=100"`
}

// Order is the durable record of a completed purchase. Only the status,
// cancellation fields and invoice reference change after creation.
type Order struct {
	ID         string
	OrderID    string
	CustomerID string
	Status     Status
	// TotalAmount is the amount the customer paid through the gateway.
	TotalAmount decimal.Decimal

	// Server-side quote at the time of purchase.
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	QuotedTotal decimal.Decimal
	CouponCode  string

	GatewayOrderID   string
	GatewayPaymentID string
	Shipping         Shipping

	InvoiceURL        string
	CancelReason      string
	CancelDescription string

	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is an immutable snapshot of a purchased line.
type Item struct {
	ID          string
	ProductID   string
	VariantID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Tx is the set of writes that make up one finalization. All of them
// commit or none do.
type Tx interface {
	// LockCart loads the customer's cart with current product prices and
	// locks its items until the transaction ends. A customer without a
	// cart gets an empty one.
	LockCart(ctx context.Context, customerID string) (*cart.Cart, error)
	// ClaimCoupon takes one use of the coupon, failing with
	// coupon.ErrExhausted when no use is left.
	ClaimCoupon(ctx context.Context, code string) error
	Insert(ctx context.Context, o *Order) error
	ClearCart(ctx context.Context, cartID string) error
}

// Repository persists orders.
type Repository interface {
	// InTx runs fn in a single database transaction, committing when fn
	// returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)

	// UpdateStatus moves the order from one status to another, failing with
	// ErrStatusConflict when the stored status is not from.
	UpdateStatus(ctx context.Context, orderID string, from, to Status) error
	// Cancel works like UpdateStatus and records the reason.
	Cancel(ctx context.Context, orderID string, from Status, reason, description string) error
	SetInvoice(ctx context.Context, orderID, url string) error
}

// Mailer sends the order confirmation email.
type Mailer interface {
	SendConfirmation(ctx context.Context, o *Order) error
}

// EventPublisher announces committed orders to other systems.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *Order) error
}

// SignatureVerifier checks a gateway payment signature.
type SignatureVerifier interface {
	Verify(gatewayOrderID, gatewayPaymentID, signature string) error
}

// InvoiceStore keeps invoice files.
type InvoiceStore interface {
	// Put stores the file under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Delete removes a file previously returned by Put.
	Delete(ctx context.Context, url string) error
}
