package product

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/notification"
)

type mockProductRepo struct {
	byID     map[string]*Product
	setErr   error
	setCalls int
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) SetStock(_ context.Context, id string, stock int) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.byID[id].Stock = stock
	return nil
}

func (m *mockProductRepo) SetLive(_ context.Context, id string, live bool) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.byID[id].Live = live
	return nil
}

type emitted struct {
	typ notification.Type
	msg string
}

type mockEmitter struct {
	got []emitted
}

func (m *mockEmitter) Emit(_ context.Context, typ notification.Type, msg string) error {
	m.got = append(m.got, emitted{typ: typ, msg: msg})
	return nil
}

func newTestProduct(id, name, price string) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		DisplayPrice: price,
		TaxRate:      decimal.NewFromInt(5),
		Stock:        4,
		Live:         true,
		Variants:     []Variant{{ID: id + "-red", Name: "Red"}},
	}
}

func newRepo(products ...*Product) *mockProductRepo {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &mockProductRepo{byID: byID}
}

func TestProduct_UnitPrice(t *testing.T) {
	p := newTestProduct("p1", "Kurta", "₹1,299.50")

	price, err := p.UnitPrice()

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1299.5").Equal(price))
}

func TestProduct_Variant(t *testing.T) {
	p := newTestProduct("p1", "Kurta", "100")

	v, err := p.Variant("p1-red")
	require.NoError(t, err)
	assert.Equal(t, "Red", v.Name)

	_, err = p.Variant("p1-blue")
	require.ErrorIs(t, err, ErrVariantNotFound)
}

func TestService_SetStock(t *testing.T) {
	repo := newRepo(newTestProduct("p1", "Kurta", "100"))
	events := &mockEmitter{}
	svc := NewService(repo, events)

	p, err := svc.SetStock(context.Background(), "p1", 9)

	require.NoError(t, err)
	assert.Equal(t, 9, p.Stock)
	assert.Equal(t, 9, repo.byID["p1"].Stock)
	require.Len(t, events.got, 1)
	assert.Equal(t, notification.TypeStock, events.got[0].typ)
	assert.Equal(t, "Stock updated for Kurta: 4 → 9", events.got[0].msg)
}

func TestService_SetStockUnchanged(t *testing.T) {
	repo := newRepo(newTestProduct("p1", "Kurta", "100"))
	events := &mockEmitter{}
	svc := NewService(repo, events)

	_, err := svc.SetStock(context.Background(), "p1", 4)

	require.NoError(t, err)
	assert.Zero(t, repo.setCalls)
	assert.Empty(t, events.got)
}

func TestService_SetStockErrors(t *testing.T) {
	svc := NewService(newRepo(newTestProduct("p1", "Kurta", "100")), &mockEmitter{})

	_, err := svc.SetStock(context.Background(), "p1", -1)
	require.ErrorIs(t, err, ErrInvalidStock)

	_, err = svc.SetStock(context.Background(), "missing", 1)
	require.ErrorIs(t, err, ErrNotFound)

	repo := newRepo(newTestProduct("p1", "Kurta", "100"))
	repo.setErr = errors.New("db down")
	events := &mockEmitter{}
	_, err = NewService(repo, events).SetStock(context.Background(), "p1", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set stock")
	assert.Empty(t, events.got)
}

func TestService_SetLive(t *testing.T) {
	repo := newRepo(newTestProduct("p1", "Kurta", "100"))
	events := &mockEmitter{}
	svc := NewService(repo, events)

	p, err := svc.SetLive(context.Background(), "p1", false)

	require.NoError(t, err)
	assert.False(t, p.Live)
	require.Len(t, events.got, 1)
	assert.Equal(t, notification.TypeProduct, events.got[0].typ)
	assert.Equal(t, "Product Kurta was taken offline", events.got[0].msg)

	_, err = svc.SetLive(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.Len(t, events.got, 1, "no notification without a flip")
}
