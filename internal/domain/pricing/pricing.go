// Package pricing computes cart totals: subtotal, per-line tax, delivery fee
// tiering, coupon discount and the rounded grand total.
//
// All arithmetic is done on exact decimals. Only the grand total is rounded,
// half-up to the nearest currency unit.
package pricing

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when a display price carries no numeric value.
var ErrInvalidPrice = errors.New("invalid price")

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercent takes a percentage of the subtotal.
	DiscountPercent DiscountType = "PERCENT"
	// DiscountFixed takes a fixed amount, capped at the subtotal.
	DiscountFixed DiscountType = "FIXED"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercent || t == DiscountFixed
}

// Discount is the pricing view of an already validated coupon.
type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

// Line is a single priced cart line.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
	// TaxRate is a percentage in the range 0-100.
	TaxRate decimal.Decimal
}

// Amount returns unit price times quantity.
func (l Line) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Tax returns the tax owed on the line.
func (l Line) Tax() decimal.Decimal {
	return l.Amount().Mul(l.TaxRate).Div(hundred)
}

// Fees is the store-wide delivery fee configuration.
type Fees struct {
	StandardDeliveryFee decimal.Decimal
	// FreeDeliveryThreshold waives the delivery fee once the subtotal reaches
	// it. Zero disables free delivery.
	FreeDeliveryThreshold decimal.Decimal
}

// CurrentFees returns f itself, so a fixed configuration serves as a
// FeeSource.
func (f Fees) CurrentFees(context.Context) (Fees, error) {
	return f, nil
}

// FeeSource supplies the fees in effect for a quote.
type FeeSource interface {
	CurrentFees(ctx context.Context) (Fees, error)
}

// DefaultFees returns the fee configuration used when none is provided.
func DefaultFees() Fees {
	return Fees{
		StandardDeliveryFee:   decimal.NewFromInt(50),
		FreeDeliveryThreshold: decimal.NewFromInt(500),
	}
}

// DeliveryFee returns the fee charged for the given subtotal.
func (f Fees) DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if f.FreeDeliveryThreshold.IsPositive() && subtotal.GreaterThanOrEqual(f.FreeDeliveryThreshold) {
		return zero
	}
	return f.StandardDeliveryFee
}

// Quote is the result of pricing a cart. Every component except Total is
// kept at full precision.
type Quote struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Items       int
}

// Payable reports whether the quote describes a cart that may be checked out.
func (q Quote) Payable() bool {
	return q.Items > 0
}

// Compute prices lines under the given fees and optional discount.
// An empty cart yields an all-zero quote with no delivery fee.
func Compute(lines []Line, discount *Discount, fees Fees) Quote {
	if len(lines) == 0 {
		return Quote{
			Subtotal:    zero,
			Tax:         zero,
			DeliveryFee: zero,
			Discount:    zero,
			Total:       zero,
		}
	}

	subtotal, tax := zero, zero
	items := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.Amount())
		tax = tax.Add(l.Tax())
		items += l.Quantity
	}

	delivery := fees.DeliveryFee(subtotal)
	off := DiscountAmount(discount, subtotal)

	total := Round(subtotal.Add(tax).Add(delivery).Sub(off))
	if total.IsNegative() {
		total = zero
	}

	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: delivery,
		Discount:    off,
		Total:       total,
		Items:       items,
	}
}

// DiscountAmount returns the amount a discount takes off the subtotal,
// clamped to [0, subtotal].
func DiscountAmount(d *Discount, subtotal decimal.Decimal) decimal.Decimal {
	if d == nil {
		return zero
	}

	var amount decimal.Decimal
	switch d.Type {
	case DiscountPercent:
		amount = subtotal.Mul(d.Value).Div(hundred)
	case DiscountFixed:
		amount = decimal.Min(d.Value, subtotal)
	default:
		return zero
	}

	if amount.IsNegative() {
		return zero
	}
	return decimal.Min(amount, subtotal)
}

// Round rounds half-up to the nearest whole currency unit.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// ToMinorUnits converts an amount to the smallest currency unit (paisa,
// cents). It is only used when talking to the payment gateway.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// ParsePrice extracts the numeric value of a display price such as
// "₹1,299.00". Everything except digits and the decimal point is dropped;
// a second decimal point ends the number.
func ParsePrice(display string) (decimal.Decimal, error) {
	var b strings.Builder
	dot := false
scan:
	for _, r := range display {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if dot {
				break scan
			}
			dot = true
			b.WriteRune(r)
		}
	}

	s := strings.TrimSuffix(b.String(), ".")
	if s == "" {
		return zero, errors.Wrapf(ErrInvalidPrice, "parse %q", display)
	}
	if s[0] == '.' {
		s = "0" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return zero, errors.Wrapf(ErrInvalidPrice, "parse %q", display)
	}
	return d, nil
}
