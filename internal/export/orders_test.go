package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/xenking/storefront/internal/domain/order"
)

func TestOrders(t *testing.T) {
	orders := []order.Order{
		{
			OrderID:     "48213377",
			Status:      order.StatusShipped,
			CustomerID:  "cust-1",
			TotalAmount: decimal.NewFromInt(2150),
			Subtotal:    decimal.NewFromInt(2000),
			Shipping:    order.Shipping{FullName: "Asha Rao", City: "Bengaluru"},
			CreatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			Items: []order.Item{
				{ProductID: "p1", ProductName: "Kurta", Quantity: 2, UnitPrice: decimal.NewFromInt(1000), TaxRate: decimal.NewFromInt(5)},
			},
		},
		{
			OrderID:      "51000002",
			Status:       order.StatusCancelled,
			CancelReason: "Changed my mind",
			CreatedAt:    time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			Items: []order.Item{
				{ProductID: "p2", ProductName: "Saree", Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
				{ProductID: "p3", ProductName: "Dupatta", Quantity: 3, UnitPrice: decimal.NewFromInt(150)},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Orders(&buf, orders))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	sheet := file.Sheet["Orders"]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Order ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "48213377", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "SHIPPED", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "Bengaluru", sheet.Rows[1].Cells[7].String())
	assert.Equal(t, "2026-03-14 10:00:00", sheet.Rows[1].Cells[len(orderHeaders)-1].String())
	assert.Equal(t, "Changed my mind", sheet.Rows[2].Cells[len(orderHeaders)-2].String())

	items := file.Sheet["Items"]
	require.NotNil(t, items)
	require.Len(t, items.Rows, 4)
	assert.Equal(t, "51000002", items.Rows[3].Cells[0].String())
	assert.Equal(t, "Dupatta", items.Rows[3].Cells[3].String())
}

func TestOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Orders(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheet["Orders"].Rows, 1)
}
