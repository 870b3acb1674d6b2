package events

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/order"
)

func TestEncodeOrder(t *testing.T) {
	o := &order.Order{
		ID:               "3f2c",
		OrderID:          "48213377",
		CustomerID:       "cust-1",
		Status:           order.StatusPending,
		TotalAmount:      decimal.RequireFromString("1950.50"),
		GatewayOrderID:   "order_1",
		GatewayPaymentID: "pay_1",
		CreatedAt:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Items: []order.Item{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
			{ProductID: "p2", VariantID: "v9", Quantity: 1, UnitPrice: decimal.RequireFromString("49.5")},
		},
	}

	data := EncodeOrder(o)
	require.True(t, jx.Valid(data), string(data))

	fields := map[string]string{}
	var items int
	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		if key == "items" {
			return d.Arr(func(d *jx.Decoder) error {
				items++
				return d.Skip()
			})
		}
		s, err := d.Str()
		fields[key] = s
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "48213377", fields["orderId"])
	assert.Equal(t, "1950.5", fields["totalAmount"])
	assert.Equal(t, "PENDING", fields["status"])
	assert.Equal(t, "pay_1", fields["gatewayPaymentId"])
	assert.Equal(t, "2026-03-14T10:00:00Z", fields["createdAt"])
	assert.Equal(t, 2, items)
}

func TestNop(t *testing.T) {
	require.NoError(t, Nop{}.PublishOrderCreated(context.Background(), &order.Order{}))
}
