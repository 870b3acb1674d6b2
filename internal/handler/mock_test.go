package handler

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/settings"
)

// memDB backs the cart, product and order repositories with maps guarded
// by one lock. Order transactions hold the lock for their whole duration.
type memDB struct {
	mu       sync.Mutex
	seq      int
	products map[string]*product.Product
	carts    map[string]string // customer id to cart id
	items    []cart.Item
	coupons  map[string]*coupon.Coupon
	orders   []*order.Order
}

func newMemDB() *memDB {
	return &memDB{
		products: make(map[string]*product.Product),
		carts:    make(map[string]string),
		coupons:  make(map[string]*coupon.Coupon),
	}
}

func (m *memDB) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memDB) putProduct(p product.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = &p
}

func (m *memDB) putCoupon(c coupon.Coupon) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coupons[c.Code] = &c
}

func (m *memDB) cartLocked(customerID string) *cart.Cart {
	id, ok := m.carts[customerID]
	if !ok {
		id = m.nextID("cart")
		m.carts[customerID] = id
	}
	c := &cart.Cart{ID: id, CustomerID: customerID}
	for _, it := range m.items {
		if it.CartID != id {
			continue
		}
		p := m.products[it.ProductID]
		l := cart.Line{
			ItemID:       it.ID,
			ProductID:    p.ID,
			VariantID:    it.VariantID,
			ProductName:  p.Name,
			DisplayPrice: p.DisplayPrice,
			TaxRate:      p.TaxRate,
			Quantity:     it.Quantity,
		}
		if v, err := p.Variant(it.VariantID); err == nil {
			l.VariantName = v.Name
		}
		c.Lines = append(c.Lines, l)
	}
	return c
}

func (m *memDB) GetOrCreate(_ context.Context, customerID string) (*cart.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cartLocked(customerID), nil
}

func (m *memDB) AddItem(_ context.Context, cartID, productID, variantID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		it := &m.items[i]
		if it.CartID == cartID && it.ProductID == productID && it.VariantID == variantID {
			it.Quantity += quantity
			return nil
		}
	}
	var customerID string
	for cust, id := range m.carts {
		if id == cartID {
			customerID = cust
		}
	}
	m.items = append(m.items, cart.Item{
		ID:         m.nextID("item"),
		CartID:     cartID,
		CustomerID: customerID,
		ProductID:  productID,
		VariantID:  variantID,
		Quantity:   quantity,
	})
	return nil
}

func (m *memDB) FindItem(_ context.Context, itemID string) (*cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == itemID {
			return &it, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (m *memDB) SetQuantity(_ context.Context, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == itemID {
			m.items[i].Quantity = quantity
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (m *memDB) RemoveItem(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = slices.DeleteFunc(m.items, func(it cart.Item) bool { return it.ID == itemID })
	return nil
}

func (m *memDB) GetByID(_ context.Context, id string) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memDB) SetStock(_ context.Context, id string, stock int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[id].Stock = stock
	return nil
}

func (m *memDB) SetLive(_ context.Context, id string, live bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return product.ErrNotFound
	}
	p.Live = live
	return nil
}

// memTx stages an order and applies it when the transaction commits.
type memTx struct {
	m       *memDB
	order   *order.Order
	claimed string
	cleared string
}

func (t *memTx) LockCart(_ context.Context, customerID string) (*cart.Cart, error) {
	return t.m.cartLocked(customerID), nil
}

func (t *memTx) ClaimCoupon(_ context.Context, code string) error {
	c, ok := t.m.coupons[code]
	if !ok || (c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit) {
		return coupon.ErrExhausted
	}
	t.claimed = code
	return nil
}

func (t *memTx) Insert(_ context.Context, o *order.Order) error {
	for _, existing := range t.m.orders {
		switch {
		case existing.OrderID == o.OrderID:
			return order.ErrDuplicateOrderID
		case existing.GatewayPaymentID == o.GatewayPaymentID:
			return order.ErrDuplicatePayment
		}
	}
	cp := *o
	t.order = &cp
	return nil
}

func (t *memTx) ClearCart(_ context.Context, cartID string) error {
	t.cleared = cartID
	return nil
}

func (m *memDB) InTx(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if tx.order != nil {
		m.orders = append(m.orders, tx.order)
	}
	if tx.claimed != "" {
		m.coupons[tx.claimed].UsedCount++
	}
	if tx.cleared != "" {
		m.items = slices.DeleteFunc(m.items, func(it cart.Item) bool { return it.CartID == tx.cleared })
	}
	return nil
}

func (m *memDB) findLocked(orderID string) *order.Order {
	for _, o := range m.orders {
		if o.OrderID == orderID {
			return o
		}
	}
	return nil
}

func (m *memDB) ExistsByOrderID(_ context.Context, orderID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findLocked(orderID) != nil, nil
}

func (m *memDB) FindByPaymentID(_ context.Context, paymentID string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.GatewayPaymentID == paymentID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, order.ErrNotFound
}

func (m *memDB) GetByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.findLocked(orderID)
	if o == nil {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memDB) list(keep func(*order.Order) bool) []order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []order.Order
	for _, o := range m.orders {
		if keep(o) {
			out = append(out, *o)
		}
	}
	slices.SortFunc(out, func(a, b order.Order) int { return cmp.Compare(b.OrderID, a.OrderID) })
	return out
}

func (m *memDB) ListByCustomer(_ context.Context, customerID string) ([]order.Order, error) {
	return m.list(func(o *order.Order) bool { return o.CustomerID == customerID }), nil
}

func (m *memDB) ListAll(context.Context) ([]order.Order, error) {
	return m.list(func(*order.Order) bool { return true }), nil
}

func (m *memDB) UpdateStatus(_ context.Context, orderID string, from, to order.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.findLocked(orderID)
	switch {
	case o == nil:
		return order.ErrNotFound
	case o.Status != from:
		return order.ErrStatusConflict
	}
	o.Status = to
	return nil
}

func (m *memDB) Cancel(ctx context.Context, orderID string, from order.Status, reason, description string) error {
	if err := m.UpdateStatus(ctx, orderID, from, order.StatusCancelled); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.findLocked(orderID)
	o.CancelReason, o.CancelDescription = reason, description
	return nil
}

func (m *memDB) SetInvoice(_ context.Context, orderID, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.findLocked(orderID)
	if o == nil {
		return order.ErrNotFound
	}
	o.InvoiceURL = url
	return nil
}

// memCoupons is the coupon repository view of memDB.
type memCoupons struct{ *memDB }

func (c memCoupons) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp, ok := c.coupons[code]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	out := *cp
	return &out, nil
}

func (c memCoupons) Create(_ context.Context, cp *coupon.Coupon) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.coupons[cp.Code]; ok {
		return coupon.ErrDuplicateCode
	}
	stored := *cp
	c.coupons[cp.Code] = &stored
	return nil
}

func (c memCoupons) SetActive(_ context.Context, code string, active bool) (*coupon.Coupon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp, ok := c.coupons[code]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	cp.Active = active
	out := *cp
	return &out, nil
}

// memNotes is an in-memory notification repository.
type memNotes struct {
	mu    sync.Mutex
	seq   int
	notes []notification.Notification
}

func (m *memNotes) Create(_ context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	n.ID = fmt.Sprintf("n-%d", m.seq)
	n.CreatedAt = time.Unix(int64(m.seq), 0)
	m.notes = append(m.notes, *n)
	return nil
}

func (m *memNotes) List(_ context.Context, limit int) ([]notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.notes)
	slices.SortStableFunc(out, func(a, b notification.Notification) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memNotes) SetFlags(_ context.Context, id string, f notification.Flags) (*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		n := &m.notes[i]
		if n.ID != id {
			continue
		}
		if f.Read != nil {
			n.Read = *f.Read
		}
		if f.Pinned != nil {
			n.Pinned = *f.Pinned
		}
		out := *n
		return &out, nil
	}
	return nil, notification.ErrNotFound
}

func (m *memNotes) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.notes)
	m.notes = slices.DeleteFunc(m.notes, func(x notification.Notification) bool { return x.ID == id })
	if len(m.notes) == n {
		return notification.ErrNotFound
	}
	return nil
}

func (m *memNotes) messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, n.Message)
	}
	return out
}

// mockGateway answers gateway order requests.
type mockGateway struct {
	last payment.GatewayOrderRequest
	err  error
}

func (g *mockGateway) CreateOrder(_ context.Context, req payment.GatewayOrderRequest) (*payment.GatewayOrder, error) {
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &payment.GatewayOrder{
		ID:       "order_gw1",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}, nil
}

// memAddresses is an in-memory address repository.
type memAddresses struct {
	mu   sync.Mutex
	list []address.Address
}

func (m *memAddresses) List(_ context.Context, customerID string) ([]address.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []address.Address
	for _, a := range m.list {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b address.Address) int {
		if a.Default != b.Default {
			if a.Default {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (m *memAddresses) Get(_ context.Context, customerID, id string) (*address.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.list {
		if a.ID == id && a.CustomerID == customerID {
			return &a, nil
		}
	}
	return nil, address.ErrNotFound
}

func (m *memAddresses) saveLocked(a *address.Address) error {
	for i := range m.list {
		other := &m.list[i]
		if other.CustomerID != a.CustomerID || other.ID == a.ID {
			continue
		}
		if other.Name == a.Name {
			return address.ErrDuplicateName
		}
	}
	if a.Default {
		for i := range m.list {
			if m.list[i].CustomerID == a.CustomerID {
				m.list[i].Default = false
			}
		}
	}
	return nil
}

func (m *memAddresses) Create(_ context.Context, a *address.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveLocked(a); err != nil {
		return err
	}
	m.list = append(m.list, *a)
	return nil
}

func (m *memAddresses) Update(_ context.Context, a *address.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveLocked(a); err != nil {
		return err
	}
	for i := range m.list {
		if m.list[i].ID == a.ID {
			m.list[i] = *a
			return nil
		}
	}
	return address.ErrNotFound
}

func (m *memAddresses) Delete(_ context.Context, customerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.list)
	m.list = slices.DeleteFunc(m.list, func(a address.Address) bool {
		return a.ID == id && a.CustomerID == customerID
	})
	if len(m.list) == n {
		return address.ErrNotFound
	}
	return nil
}

// memSettings holds the saved fee settings, if any.
type memSettings struct {
	mu    sync.Mutex
	saved *settings.FeeSettings
}

func (m *memSettings) GetFees(context.Context) (*settings.FeeSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil, settings.ErrNotFound
	}
	out := *m.saved
	return &out, nil
}

func (m *memSettings) SaveFees(_ context.Context, fs *settings.FeeSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *fs
	m.saved = &cp
	return nil
}
