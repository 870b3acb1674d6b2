package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
)

// memCarts is an in-memory Repository keyed by customer.
type memCarts struct {
	products map[string]*product.Product
	carts    map[string]*Cart
	items    map[string]*Item
	order    []string
	seq      int
}

func newMemCarts(products ...*product.Product) *memCarts {
	m := &memCarts{
		products: make(map[string]*product.Product),
		carts:    make(map[string]*Cart),
		items:    make(map[string]*Item),
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memCarts) next(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memCarts) GetOrCreate(_ context.Context, customerID string) (*Cart, error) {
	c, ok := m.carts[customerID]
	if !ok {
		c = &Cart{ID: m.next("cart"), CustomerID: customerID}
		m.carts[customerID] = c
	}

	out := &Cart{ID: c.ID, CustomerID: customerID}
	for _, id := range m.order {
		it, ok := m.items[id]
		if !ok || it.CartID != c.ID {
			continue
		}
		p := m.products[it.ProductID]
		out.Lines = append(out.Lines, Line{
			ItemID:       it.ID,
			ProductID:    it.ProductID,
			VariantID:    it.VariantID,
			ProductName:  p.Name,
			DisplayPrice: p.DisplayPrice,
			TaxRate:      p.TaxRate,
			Quantity:     it.Quantity,
		})
	}
	return out, nil
}

func (m *memCarts) AddItem(_ context.Context, cartID, productID, variantID string, quantity int) error {
	for _, it := range m.items {
		if it.CartID == cartID && it.ProductID == productID && it.VariantID == variantID {
			it.Quantity += quantity
			return nil
		}
	}
	var customerID string
	for cid, c := range m.carts {
		if c.ID == cartID {
			customerID = cid
		}
	}
	id := m.next("item")
	m.items[id] = &Item{
		ID:         id,
		CartID:     cartID,
		CustomerID: customerID,
		ProductID:  productID,
		VariantID:  variantID,
		Quantity:   quantity,
	}
	m.order = append(m.order, id)
	return nil
}

func (m *memCarts) FindItem(_ context.Context, itemID string) (*Item, error) {
	it, ok := m.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memCarts) SetQuantity(_ context.Context, itemID string, quantity int) error {
	m.items[itemID].Quantity = quantity
	return nil
}

func (m *memCarts) RemoveItem(_ context.Context, itemID string) error {
	delete(m.items, itemID)
	return nil
}

type mockProducts struct {
	byID map[string]*product.Product
}

func (m *mockProducts) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (m *mockProducts) SetStock(context.Context, string, int) error { return nil }
func (m *mockProducts) SetLive(context.Context, string, bool) error { return nil }

type mockValidator struct {
	coupon *coupon.Coupon
	err    error
}

func (m *mockValidator) Validate(context.Context, string) (*coupon.Coupon, error) {
	return m.coupon, m.err
}

func newTestProduct(id, name, price string, tax int64) *product.Product {
	return &product.Product{
		ID:           id,
		Name:         name,
		DisplayPrice: price,
		TaxRate:      decimal.NewFromInt(tax),
		Live:         true,
		Variants:     []product.Variant{{ID: id + "-v1", Name: "Default"}},
	}
}

func newService(v coupon.Validator, products ...*product.Product) (*Service, *memCarts) {
	carts := newMemCarts(products...)
	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	if v == nil {
		v = &mockValidator{}
	}
	fees := pricing.Fees{StandardDeliveryFee: decimal.NewFromInt(50), FreeDeliveryThreshold: decimal.NewFromInt(2500)}
	return NewService(carts, &mockProducts{byID: byID}, v, fees), carts
}

func TestService_GetCreatesLazily(t *testing.T) {
	svc, carts := newService(nil)

	c, err := svc.Get(context.Background(), "cust-1")

	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Len(t, carts.carts, 1)

	again, err := svc.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
}

func TestService_AddMergesSamePair(t *testing.T) {
	p := newTestProduct("p1", "Kurta", "₹1,000", 5)
	svc, _ := newService(nil, p)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust-1", AddRequest{ProductID: "p1"})
	require.NoError(t, err)
	c, err := svc.Add(ctx, "cust-1", AddRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)

	c, err = svc.Add(ctx, "cust-1", AddRequest{ProductID: "p1", VariantID: "p1-v1"})
	require.NoError(t, err)
	assert.Len(t, c.Lines, 2, "a variant is a separate line")
}

func TestService_AddRejects(t *testing.T) {
	offline := newTestProduct("p2", "Saree", "500", 5)
	offline.Live = false
	svc, _ := newService(nil, newTestProduct("p1", "Kurta", "100", 5), offline)
	ctx := context.Background()

	_, err := svc.Add(ctx, "c", AddRequest{ProductID: "p1", Quantity: -1})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Add(ctx, "c", AddRequest{ProductID: "missing"})
	require.ErrorIs(t, err, product.ErrNotFound)

	_, err = svc.Add(ctx, "c", AddRequest{ProductID: "p2"})
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = svc.Add(ctx, "c", AddRequest{ProductID: "p1", VariantID: "p2-v1"})
	require.ErrorIs(t, err, product.ErrVariantNotFound)
}

func TestService_UpdateAndRemoveOwnership(t *testing.T) {
	svc, _ := newService(nil, newTestProduct("p1", "Kurta", "100", 5))
	ctx := context.Background()

	c, err := svc.Add(ctx, "owner", AddRequest{ProductID: "p1"})
	require.NoError(t, err)
	itemID := c.Lines[0].ItemID

	_, err = svc.Update(ctx, "intruder", itemID, 4)
	require.ErrorIs(t, err, ErrForbidden)
	require.ErrorIs(t, svc.Remove(ctx, "intruder", itemID), ErrForbidden)

	_, err = svc.Update(ctx, "owner", itemID, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	c, err = svc.Update(ctx, "owner", itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Lines[0].Quantity)

	require.NoError(t, svc.Remove(ctx, "owner", itemID))
	c, err = svc.Get(ctx, "owner")
	require.NoError(t, err)
	assert.True(t, c.Empty())

	require.ErrorIs(t, svc.Remove(ctx, "owner", itemID), ErrItemNotFound)
}

func TestService_Quote(t *testing.T) {
	p := newTestProduct("p1", "Kurta", "₹1,000.00", 5)
	v := &mockValidator{coupon: &coupon.Coupon{
		Code:      "TEN",
		Type:      pricing.DiscountPercent,
		Value:     decimal.NewFromInt(10),
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	svc, _ := newService(v, p)
	ctx := context.Background()

	_, err := svc.Add(ctx, "c", AddRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	priced, err := svc.Quote(ctx, "c", "")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2150).Equal(priced.Quote.Total))
	assert.Nil(t, priced.Coupon)

	priced, err = svc.Quote(ctx, "c", "ten")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(priced.Quote.Discount))
	assert.True(t, decimal.NewFromInt(1950).Equal(priced.Quote.Total))
	assert.Equal(t, "TEN", priced.Coupon.Code)
}

func TestService_QuoteCouponRejected(t *testing.T) {
	svc, _ := newService(&mockValidator{err: coupon.ErrExpired}, newTestProduct("p1", "Kurta", "100", 5))

	_, err := svc.Quote(context.Background(), "c", "OLD")
	require.ErrorIs(t, err, coupon.ErrExpired)
}

func TestService_QuoteEmptyCart(t *testing.T) {
	svc, _ := newService(nil)

	priced, err := svc.Quote(context.Background(), "c", "")

	require.NoError(t, err)
	assert.False(t, priced.Quote.Payable())
	assert.True(t, priced.Quote.Total.IsZero())
}

func TestLine_PricedInvalidPrice(t *testing.T) {
	_, err := Line{ProductID: "p1", DisplayPrice: "call us", Quantity: 1}.Priced()
	require.ErrorIs(t, err, pricing.ErrInvalidPrice)
}
