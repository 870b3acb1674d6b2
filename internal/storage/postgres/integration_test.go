//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/settings"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:14-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "store",
				"POSTGRES_PASSWORD": "store",
				"POSTGRES_DB":       "store",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := NewPool(ctx, fmt.Sprintf("postgres://store:store@%s:%s/store?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	return pool
}

func seedKurta(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	products := NewProductRepository(pool)
	require.NoError(t, products.UpsertCategory(context.Background(), Category{ID: "c1", Name: "Ethnic", Slug: "ethnic"}))
	require.NoError(t, products.Upsert(context.Background(), &product.Product{
		ID:           "p1",
		Name:         "Kurta",
		CategoryID:   "c1",
		DisplayPrice: "₹1,000.00",
		TaxRate:      decimal.NewFromInt(5),
		Stock:        10,
		Live:         true,
		Variants:     []product.Variant{{ID: "v1", Name: "Blue"}},
	}))
}

func fillCart(t *testing.T, pool *pgxpool.Pool, customerID string, qty int) {
	t.Helper()
	carts := NewCartRepository(pool)
	c, err := carts.GetOrCreate(context.Background(), customerID)
	require.NoError(t, err)
	require.NoError(t, carts.AddItem(context.Background(), c.ID, "p1", "v1", qty))
}

func newOrderService(pool *pgxpool.Pool) *order.Service {
	fees := pricing.Fees{StandardDeliveryFee: decimal.NewFromInt(50), FreeDeliveryThreshold: decimal.NewFromInt(2500)}
	return order.NewService(
		NewOrderRepository(pool),
		coupon.NewRepoValidator(NewCouponRepository(pool)),
		notification.NewService(NewNotificationRepository(pool)),
		fees,
	)
}

func finalizeRequest(customerID, paymentID string, total int64, code string) order.FinalizeRequest {
	return order.FinalizeRequest{
		CustomerID:       customerID,
		GatewayOrderID:   "order_" + paymentID,
		GatewayPaymentID: paymentID,
		DeclaredTotal:    decimal.NewFromInt(total),
		CouponCode:       code,
		Shipping: order.Shipping{
			FullName:  "Asha Rao",
			ContactNo: "9876543210",
			Address:   "12 MG Road",
			City:      "Bengaluru",
			Pincode:   "560001",
			Country:   "India",
		},
	}
}

func TestIntegration_Finalize(t *testing.T) {
	pool := setupPool(t)
	seedKurta(t, pool)
	ctx := context.Background()
	svc := newOrderService(pool)

	limit := 1
	require.NoError(t, NewCouponRepository(pool).Create(ctx, &coupon.Coupon{
		ID:         "k1",
		Code:       "FESTIVE10",
		Type:       pricing.DiscountPercent,
		Value:      decimal.NewFromInt(10),
		ExpiresAt:  time.Now().Add(24 * time.Hour),
		Active:     true,
		UsageLimit: &limit,
	}))

	t.Run("creates order and clears cart", func(t *testing.T) {
		fillCart(t, pool, "cust-1", 2)

		res, err := svc.Finalize(ctx, finalizeRequest("cust-1", "pay_1", 1950, "festive10"))
		require.NoError(t, err)
		assert.False(t, res.Replayed)

		got, err := NewOrderRepository(pool).GetByOrderID(ctx, res.Order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "cust-1", got.CustomerID)
		assert.Equal(t, order.StatusPending, got.Status)
		assert.Equal(t, "FESTIVE10", got.CouponCode)
		assert.True(t, decimal.NewFromInt(1950).Equal(got.TotalAmount), got.TotalAmount.String())
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Kurta (Blue)", got.Items[0].ProductName)
		assert.Equal(t, "v1", got.Items[0].VariantID)

		c, err := NewCartRepository(pool).GetOrCreate(ctx, "cust-1")
		require.NoError(t, err)
		assert.True(t, c.Empty())

		k, err := NewCouponRepository(pool).FindByCode(ctx, "FESTIVE10")
		require.NoError(t, err)
		assert.Equal(t, 1, k.UsedCount)
	})

	t.Run("replays same payment", func(t *testing.T) {
		first, err := NewOrderRepository(pool).FindByPaymentID(ctx, "pay_1")
		require.NoError(t, err)

		res, err := svc.Finalize(ctx, finalizeRequest("cust-1", "pay_1", 1950, ""))
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, first.OrderID, res.Order.OrderID)
	})

	t.Run("exhausted coupon rolls back", func(t *testing.T) {
		fillCart(t, pool, "cust-2", 1)

		_, err := svc.Finalize(ctx, finalizeRequest("cust-2", "pay_2", 1000, "FESTIVE10"))
		require.ErrorIs(t, err, coupon.ErrExhausted)

		_, err = NewOrderRepository(pool).FindByPaymentID(ctx, "pay_2")
		require.ErrorIs(t, err, order.ErrNotFound)

		c, err := NewCartRepository(pool).GetOrCreate(ctx, "cust-2")
		require.NoError(t, err)
		assert.False(t, c.Empty())
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := svc.Finalize(ctx, finalizeRequest("cust-3", "pay_3", 1000, ""))
		require.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("concurrent finalize of one payment creates one order", func(t *testing.T) {
		fillCart(t, pool, "cust-4", 1)

		var wg sync.WaitGroup
		results := make([]*order.FinalizeResult, 5)
		errs := make([]error, 5)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.Finalize(ctx, finalizeRequest("cust-4", "pay_4", 1100, ""))
			}(i)
		}
		wg.Wait()

		var created int
		ids := make(map[string]struct{})
		for i := range results {
			require.NoError(t, errs[i])
			if !results[i].Replayed {
				created++
			}
			ids[results[i].Order.OrderID] = struct{}{}
		}
		assert.Equal(t, 1, created)
		assert.Len(t, ids, 1)
	})
}

func TestIntegration_OrderStatus(t *testing.T) {
	pool := setupPool(t)
	seedKurta(t, pool)
	ctx := context.Background()
	svc := newOrderService(pool)
	repo := NewOrderRepository(pool)

	fillCart(t, pool, "cust-1", 1)
	res, err := svc.Finalize(ctx, finalizeRequest("cust-1", "pay_1", 1100, ""))
	require.NoError(t, err)
	id := res.Order.OrderID

	require.NoError(t, repo.UpdateStatus(ctx, id, order.StatusPending, order.StatusConfirmed))
	require.ErrorIs(t, repo.UpdateStatus(ctx, id, order.StatusPending, order.StatusShipped), order.ErrStatusConflict)
	require.ErrorIs(t, repo.UpdateStatus(ctx, "00000000", order.StatusPending, order.StatusShipped), order.ErrNotFound)

	require.NoError(t, repo.Cancel(ctx, id, order.StatusConfirmed, "Changed my mind", ""))
	got, err := repo.GetByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, got.Status)
	assert.Equal(t, "Changed my mind", got.CancelReason)

	require.NoError(t, repo.SetInvoice(ctx, id, "https://files.example.com/invoices/1.pdf"))
	list, err := repo.ListByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "https://files.example.com/invoices/1.pdf", list[0].InvoiceURL)
	require.Len(t, list[0].Items, 1)
}

func TestIntegration_Notifications(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	svc := notification.NewService(NewNotificationRepository(pool))

	require.NoError(t, svc.Emit(ctx, notification.TypeOrder, "first"))
	require.NoError(t, svc.Emit(ctx, notification.TypeStock, "second"))

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Message)

	pinned, err := svc.Apply(ctx, list[1].ID, notification.ActionPin)
	require.NoError(t, err)
	assert.True(t, pinned.Pinned)
	assert.True(t, pinned.Read)

	list, err = svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "first", list[0].Message)

	require.NoError(t, svc.Delete(ctx, list[0].ID))
	require.ErrorIs(t, svc.Delete(ctx, list[0].ID), notification.ErrNotFound)
}

func TestIntegration_Addresses(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	svc := address.NewService(NewAddressRepository(pool))

	home := address.Address{
		Name: "Home", FullName: "Asha Rao", ContactNo: "9000000000", Email: "asha@example.com",
		Address: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001", Country: "India",
		Default: true,
	}
	first, err := svc.Create(ctx, "cust-1", home)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "cust-1", home)
	require.ErrorIs(t, err, address.ErrDuplicateName)

	office := home
	office.Name = "Office"
	second, err := svc.Create(ctx, "cust-1", office)
	require.NoError(t, err)

	list, err := svc.List(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.True(t, list[0].Default)
	assert.False(t, list[1].Default)

	_, err = svc.Update(ctx, "cust-2", first.ID, home)
	require.ErrorIs(t, err, address.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "cust-1", first.ID))
	require.ErrorIs(t, svc.Delete(ctx, "cust-1", first.ID), address.ErrNotFound)
}

func TestIntegration_FeeSettings(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	svc := settings.NewService(NewSettingsRepository(pool), pricing.DefaultFees())

	fs, err := svc.Fees(ctx)
	require.NoError(t, err)
	assert.True(t, fs.Fees.StandardDeliveryFee.Equal(decimal.NewFromInt(50)))

	_, err = svc.UpdateFees(ctx, true, settings.FeeSettings{
		Fees: pricing.Fees{
			StandardDeliveryFee:   decimal.RequireFromString("75.50"),
			FreeDeliveryThreshold: decimal.NewFromInt(1500),
		},
	})
	require.NoError(t, err)

	fees, err := svc.CurrentFees(ctx)
	require.NoError(t, err)
	assert.True(t, fees.StandardDeliveryFee.Equal(decimal.RequireFromString("75.50")))
	assert.True(t, fees.FreeDeliveryThreshold.Equal(decimal.NewFromInt(1500)))

	fs, err = svc.Fees(ctx)
	require.NoError(t, err)
	assert.False(t, fs.FreeDeliveryCoupon)
}
