package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fees(standard, threshold string) Fees {
	return Fees{StandardDeliveryFee: d(standard), FreeDeliveryThreshold: d(threshold)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: expected %s, got %s", field, want, got)
}

func TestCompute_Scenarios(t *testing.T) {
	cart := []Line{{UnitPrice: d("1000"), Quantity: 2, TaxRate: d("5")}}

	tests := []struct {
		name     string
		discount *Discount
		fees     Fees
		subtotal string
		tax      string
		delivery string
		off      string
		total    string
	}{
		{
			name:     "below free delivery threshold",
			fees:     fees("50", "2500"),
			subtotal: "2000",
			tax:      "100",
			delivery: "50",
			off:      "0",
			total:    "2150",
		},
		{
			name:     "percent coupon",
			discount: &Discount{Type: DiscountPercent, Value: d("10")},
			fees:     fees("50", "2500"),
			subtotal: "2000",
			tax:      "100",
			delivery: "50",
			off:      "200",
			total:    "1950",
		},
		{
			name:     "subtotal reaches threshold",
			fees:     fees("50", "1500"),
			subtotal: "2000",
			tax:      "100",
			delivery: "0",
			off:      "0",
			total:    "2100",
		},
		{
			name:     "zero threshold disables free delivery",
			fees:     fees("50", "0"),
			subtotal: "2000",
			tax:      "100",
			delivery: "50",
			off:      "0",
			total:    "2150",
		},
		{
			name:     "fixed coupon capped at subtotal",
			discount: &Discount{Type: DiscountFixed, Value: d("5000")},
			fees:     fees("50", "2500"),
			subtotal: "2000",
			tax:      "100",
			delivery: "50",
			off:      "2000",
			total:    "150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Compute(cart, tt.discount, tt.fees)

			assertDecimal(t, tt.subtotal, q.Subtotal, "subtotal")
			assertDecimal(t, tt.tax, q.Tax, "tax")
			assertDecimal(t, tt.delivery, q.DeliveryFee, "delivery")
			assertDecimal(t, tt.off, q.Discount, "discount")
			assertDecimal(t, tt.total, q.Total, "total")
			assert.True(t, q.Payable())
		})
	}
}

func TestCompute_EmptyCart(t *testing.T) {
	q := Compute(nil, &Discount{Type: DiscountFixed, Value: d("100")}, fees("50", "500"))

	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.DeliveryFee.IsZero())
	assert.True(t, q.Discount.IsZero())
	assert.True(t, q.Total.IsZero())
	assert.False(t, q.Payable())
}

func TestCompute_NoIntermediateRounding(t *testing.T) {
	// 3 x 33.33 at 18% tax: 99.99 + 17.9982 + 40 = 157.9882 -> 158.
	lines := []Line{{UnitPrice: d("33.33"), Quantity: 3, TaxRate: d("18")}}

	q := Compute(lines, nil, fees("40", "500"))

	assertDecimal(t, "99.99", q.Subtotal, "subtotal")
	assertDecimal(t, "17.9982", q.Tax, "tax")
	assertDecimal(t, "158", q.Total, "total")
}

func TestCompute_RoundsHalfUp(t *testing.T) {
	lines := []Line{{UnitPrice: d("100.5"), Quantity: 1, TaxRate: d("0")}}

	q := Compute(lines, nil, fees("0", "0"))

	assertDecimal(t, "101", q.Total, "total")
}

func TestCompute_GrandTotalProperty(t *testing.T) {
	f := fees("50", "700")
	carts := [][]Line{
		{{UnitPrice: d("10"), Quantity: 1, TaxRate: d("0")}},
		{{UnitPrice: d("199.99"), Quantity: 3, TaxRate: d("12")}, {UnitPrice: d("5.25"), Quantity: 7, TaxRate: d("5")}},
		{{UnitPrice: d("0.49"), Quantity: 1, TaxRate: d("28")}},
		{{UnitPrice: d("750"), Quantity: 1, TaxRate: d("18")}},
	}
	discounts := []*Discount{
		nil,
		{Type: DiscountPercent, Value: d("100")},
		{Type: DiscountPercent, Value: d("12.5")},
		{Type: DiscountFixed, Value: d("25")},
		{Type: DiscountFixed, Value: d("100000")},
	}

	for _, lines := range carts {
		for _, disc := range discounts {
			q := Compute(lines, disc, f)

			require.True(t, q.Discount.LessThanOrEqual(q.Subtotal))
			want := q.Subtotal.Add(q.Tax).Add(q.DeliveryFee).Sub(q.Discount).Round(0)
			assert.True(t, want.Equal(q.Total), "expected %s, got %s", want, q.Total)
			assert.False(t, q.Total.IsNegative())
		}
	}
}

func TestDiscountAmount(t *testing.T) {
	subtotal := d("840")

	tests := []struct {
		name     string
		discount *Discount
		want     string
	}{
		{name: "nil discount", want: "0"},
		{name: "percent is exact", discount: &Discount{Type: DiscountPercent, Value: d("15")}, want: "126"},
		{name: "fractional percent", discount: &Discount{Type: DiscountPercent, Value: d("7.5")}, want: "63"},
		{name: "percent over 100 is capped", discount: &Discount{Type: DiscountPercent, Value: d("120")}, want: "840"},
		{name: "fixed below subtotal", discount: &Discount{Type: DiscountFixed, Value: d("99.5")}, want: "99.5"},
		{name: "fixed above subtotal", discount: &Discount{Type: DiscountFixed, Value: d("900")}, want: "840"},
		{name: "negative value", discount: &Discount{Type: DiscountFixed, Value: d("-10")}, want: "0"},
		{name: "unknown type", discount: &Discount{Type: "BOGO", Value: d("10")}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, DiscountAmount(tt.discount, subtotal), "discount")
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1299", want: "1299"},
		{in: "₹1,299.00", want: "1299"},
		{in: "INR 49.50", want: "49.5"},
		{in: "Rs. 49.50", want: "0.49"},
		{in: " 12.5.7", want: "12.5"},
		{in: ".75", want: "0.75"},
		{in: "100.", want: "100"},
		{in: "free", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.want, got, "price")
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(215000), ToMinorUnits(d("2150")))
	assert.Equal(t, int64(1999), ToMinorUnits(d("19.99")))
	assert.Equal(t, int64(1), ToMinorUnits(d("0.005")))
	assertDecimal(t, "19.99", FromMinorUnits(1999), "amount")
}
