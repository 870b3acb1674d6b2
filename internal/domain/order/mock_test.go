package order

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
)

// memStore is an in-memory Repository. Transactions hold the store lock and
// stage their writes until fn returns nil.
type memStore struct {
	mu        sync.Mutex
	orders    map[string]*Order
	byPayment map[string]string
	// reserved ids look free to ExistsByOrderID but collide on Insert.
	reserved map[string]bool
	carts    map[string]*cart.Cart
	// uses left per coupon code; missing means unlimited.
	couponUses map[string]int
	claimed    map[string]int
	inserts    int
}

func newMemStore() *memStore {
	return &memStore{
		orders:     make(map[string]*Order),
		byPayment:  make(map[string]string),
		reserved:   make(map[string]bool),
		carts:      make(map[string]*cart.Cart),
		couponUses: make(map[string]int),
		claimed:    make(map[string]int),
	}
}

func (m *memStore) putCart(customerID string, lines ...cart.Line) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[customerID] = &cart.Cart{ID: "cart-" + customerID, CustomerID: customerID, Lines: lines}
}

func (m *memStore) cartLen(customerID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[customerID]
	if !ok {
		return 0
	}
	return len(c.Lines)
}

func (m *memStore) seed(o *Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.orders[o.OrderID] = &cp
	if o.GatewayPaymentID != "" {
		m.byPayment[o.GatewayPaymentID] = o.OrderID
	}
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memTx struct {
	m       *memStore
	order   *Order
	cleared string
	claimed string
}

func (t *memTx) LockCart(_ context.Context, customerID string) (*cart.Cart, error) {
	c, ok := t.m.carts[customerID]
	if !ok {
		return &cart.Cart{ID: "cart-" + customerID, CustomerID: customerID}, nil
	}
	return &cart.Cart{ID: c.ID, CustomerID: c.CustomerID, Lines: slices.Clone(c.Lines)}, nil
}

func (t *memTx) ClaimCoupon(_ context.Context, code string) error {
	if left, ok := t.m.couponUses[code]; ok && left-t.m.claimed[code] <= 0 {
		return coupon.ErrExhausted
	}
	t.claimed = code
	return nil
}

func (t *memTx) Insert(_ context.Context, o *Order) error {
	if _, ok := t.m.orders[o.OrderID]; ok || t.m.reserved[o.OrderID] {
		return ErrDuplicateOrderID
	}
	if _, ok := t.m.byPayment[o.GatewayPaymentID]; ok {
		return ErrDuplicatePayment
	}
	cp := *o
	t.order = &cp
	return nil
}

func (t *memTx) ClearCart(_ context.Context, cartID string) error {
	t.cleared = cartID
	return nil
}

func (m *memStore) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if tx.order != nil {
		m.orders[tx.order.OrderID] = tx.order
		m.byPayment[tx.order.GatewayPaymentID] = tx.order.OrderID
		m.inserts++
	}
	if tx.claimed != "" {
		m.claimed[tx.claimed]++
	}
	if tx.cleared != "" {
		for _, c := range m.carts {
			if c.ID == tx.cleared {
				c.Lines = nil
			}
		}
	}
	return nil
}

func (m *memStore) ExistsByOrderID(_ context.Context, orderID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.orders[orderID]
	return ok, nil
}

func (m *memStore) FindByPaymentID(_ context.Context, paymentID string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byPayment[paymentID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m.orders[id]
	return &cp, nil
}

func (m *memStore) GetByOrderID(_ context.Context, orderID string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memStore) ListByCustomer(_ context.Context, customerID string) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memStore) UpdateStatus(_ context.Context, orderID string, from, to Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	if o.Status != from {
		return ErrStatusConflict
	}
	o.Status = to
	return nil
}

func (m *memStore) Cancel(ctx context.Context, orderID string, from Status, reason, description string) error {
	if err := m.UpdateStatus(ctx, orderID, from, StatusCancelled); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[orderID].CancelReason = reason
	m.orders[orderID].CancelDescription = description
	return nil
}

func (m *memStore) SetInvoice(_ context.Context, orderID, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	o.InvoiceURL = url
	return nil
}

type mockValidator struct {
	coupon *coupon.Coupon
	err    error
}

func (m *mockValidator) Validate(context.Context, string) (*coupon.Coupon, error) {
	return m.coupon, m.err
}

type recordingEmitter struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recordingEmitter) Emit(_ context.Context, _ notification.Type, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return r.err
}

type mockMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockMailer) SendConfirmation(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, o.OrderID)
	return m.err
}

type mockPublisher struct {
	mu        sync.Mutex
	published []string
}

func (m *mockPublisher) PublishOrderCreated(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, o.OrderID)
	return nil
}

type mockVerifier struct {
	err error
}

func (m *mockVerifier) Verify(string, string, string) error { return m.err }

type mockInvoices struct {
	stored  map[string]string
	deleted []string
}

func (m *mockInvoices) Put(_ context.Context, key, _ string, r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if m.stored == nil {
		m.stored = make(map[string]string)
	}
	url := "https://files.example/" + key
	m.stored[url] = string(body)
	return url, nil
}

func (m *mockInvoices) Delete(_ context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

func kurtaLine(quantity int) cart.Line {
	return cart.Line{
		ItemID:       "item-1",
		ProductID:    "p1",
		ProductName:  "Kurta",
		DisplayPrice: "₹1,000.00",
		TaxRate:      decimal.NewFromInt(5),
		Quantity:     quantity,
	}
}

func sequence(ids ...int64) func() int64 {
	var mu sync.Mutex
	i := 0
	return func() int64 {
		mu.Lock()
		defer mu.Unlock()
		id := ids[i%len(ids)]
		i++
		return id
	}
}
