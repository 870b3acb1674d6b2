package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
)

var (
	_ order.Repository = (*OrderRepository)(nil)
	_ order.Tx         = (*orderTx)(nil)
)

const orderColumns = `
	id, order_id, customer_id, status, total_amount,
	subtotal, tax, delivery_fee, discount, quoted_total, COALESCE(coupon_code, ''),
	gateway_order_id, gateway_payment_id,
	full_name, contact_no, COALESCE(email, ''), address, city, COALESCE(state, ''), pincode, country,
	COALESCE(invoice_url, ''), COALESCE(cancel_reason, ''), COALESCE(cancel_description, ''),
	created_at, updated_at`

var orderItemColumns = []string{
	"id", "order_id", "position", "product_id", "variant_id", "product_name", "quantity", "unit_price", "tax_rate",
}

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// InTx runs fn in a transaction, committing when it returns nil.
func (r *OrderRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &orderTx{tx: tx})
	})
}

// ExistsByOrderID reports whether the public order id is taken.
func (r *OrderRepository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking order id %q: %w", orderID, err)
	}
	return exists, nil
}

// FindByPaymentID returns the order created for a gateway payment.
func (r *OrderRepository) FindByPaymentID(ctx context.Context, paymentID string) (*order.Order, error) {
	return r.getOne(ctx, `WHERE gateway_payment_id = $1`, paymentID)
}

// GetByOrderID returns an order by its public id.
func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	return r.getOne(ctx, `WHERE order_id = $1`, orderID)
}

// ListByCustomer returns the customer's orders, newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]order.Order, error) {
	return r.list(ctx, `WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll(ctx context.Context) ([]order.Order, error) {
	return r.list(ctx, `ORDER BY created_at DESC`)
}

// UpdateStatus moves an order from one status to another.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, from, to order.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $3, updated_at = now()
		WHERE order_id = $1 AND status = $2`,
		orderID, string(from), string(to),
	)
	if err != nil {
		return fmt.Errorf("updating order %q status: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missOrConflict(ctx, orderID)
	}
	return nil
}

// Cancel moves an order to CANCELLED and records the reason.
func (r *OrderRepository) Cancel(ctx context.Context, orderID string, from order.Status, reason, description string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET status = 'CANCELLED', cancel_reason = $3, cancel_description = $4, updated_at = now()
		WHERE order_id = $1 AND status = $2`,
		orderID, string(from), reason, nullable(description),
	)
	if err != nil {
		return fmt.Errorf("cancelling order %q: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missOrConflict(ctx, orderID)
	}
	return nil
}

// SetInvoice records the invoice URL.
func (r *OrderRepository) SetInvoice(ctx context.Context, orderID, url string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET invoice_url = $2, updated_at = now() WHERE order_id = $1`,
		orderID, url,
	)
	if err != nil {
		return fmt.Errorf("setting invoice of order %q: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) missOrConflict(ctx context.Context, orderID string) error {
	exists, err := r.ExistsByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if !exists {
		return order.ErrNotFound
	}
	return order.ErrStatusConflict
}

func (r *OrderRepository) getOne(ctx context.Context, where string, arg any) (*order.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order: %w", err)
	}

	items, err := r.items(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *OrderRepository) list(ctx context.Context, tail string, args ...any) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (order.Order, error) {
		o, err := scanOrder(row)
		if err != nil {
			return order.Order{}, err
		}
		return *o, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// items loads the items of the given orders keyed by internal order id.
func (r *OrderRepository) items(ctx context.Context, orderIDs []string) (map[string][]order.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, id, product_id, COALESCE(variant_id, ''), product_name, quantity, unit_price, tax_rate
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]order.Item, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			it      order.Item
		)
		if err := rows.Scan(&orderID, &it.ID, &it.ProductID, &it.VariantID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.TaxRate); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading order items: %w", err)
	}
	return out, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		o      order.Order
		status string
	)
	err := row.Scan(
		&o.ID, &o.OrderID, &o.CustomerID, &status, &o.TotalAmount,
		&o.Subtotal, &o.Tax, &o.DeliveryFee, &o.Discount, &o.QuotedTotal, &o.CouponCode,
		&o.GatewayOrderID, &o.GatewayPaymentID,
		&o.Shipping.FullName, &o.Shipping.ContactNo, &o.Shipping.Email, &o.Shipping.Address,
		&o.Shipping.City, &o.Shipping.State, &o.Shipping.Pincode, &o.Shipping.Country,
		&o.InvoiceURL, &o.CancelReason, &o.CancelDescription,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = order.Status(status)
	return &o, nil
}

// orderTx is the finalization unit of work.
type orderTx struct {
	tx pgx.Tx
}

// LockCart loads the customer's cart and locks it with its items.
func (t *orderTx) LockCart(ctx context.Context, customerID string) (*cart.Cart, error) {
	c := &cart.Cart{CustomerID: customerID}
	err := t.tx.QueryRow(ctx, `SELECT id FROM carts WHERE customer_id = $1 FOR UPDATE`, customerID).Scan(&c.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("locking cart of %q: %w", customerID, err)
	}

	c.Lines, err = cartLines(ctx, t.tx, c.ID, " FOR UPDATE OF ci")
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ClaimCoupon takes one use of a coupon that is still applicable.
func (t *orderTx) ClaimCoupon(ctx context.Context, code string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE coupons SET used_count = used_count + 1
		WHERE code = $1
		  AND is_active
		  AND expires_at > now()
		  AND (usage_limit IS NULL OR used_count < usage_limit)`,
		code,
	)
	if err != nil {
		return fmt.Errorf("claiming coupon %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return coupon.ErrExhausted
	}
	return nil
}

// Insert writes the order and its items.
func (t *orderTx) Insert(ctx context.Context, o *order.Order) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO orders (
			id, order_id, customer_id, status, total_amount,
			subtotal, tax, delivery_fee, discount, quoted_total, coupon_code,
			gateway_order_id, gateway_payment_id,
			full_name, contact_no, email, address, city, state, pincode, country,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		o.ID, o.OrderID, o.CustomerID, string(o.Status), o.TotalAmount,
		o.Subtotal, o.Tax, o.DeliveryFee, o.Discount, o.QuotedTotal, nullable(o.CouponCode),
		o.GatewayOrderID, o.GatewayPaymentID,
		o.Shipping.FullName, o.Shipping.ContactNo, nullable(o.Shipping.Email), o.Shipping.Address,
		o.Shipping.City, nullable(o.Shipping.State), o.Shipping.Pincode, o.Shipping.Country,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		switch uniqueConstraint(err) {
		case "orders_order_id_key":
			return order.ErrDuplicateOrderID
		case "orders_gateway_payment_id_key":
			return order.ErrDuplicatePayment
		}
		return fmt.Errorf("inserting order %q: %w", o.OrderID, err)
	}

	rows := make([][]any, len(o.Items))
	for i, it := range o.Items {
		rows[i] = []any{
			it.ID, o.ID, i, it.ProductID, nullable(it.VariantID), it.ProductName, it.Quantity, it.UnitPrice, it.TaxRate,
		}
	}
	if _, err := t.tx.CopyFrom(ctx, pgx.Identifier{"order_items"}, orderItemColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("inserting items of order %q: %w", o.OrderID, err)
	}
	return nil
}

// ClearCart deletes every item of the cart.
func (t *orderTx) ClearCart(ctx context.Context, cartID string) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("clearing cart %q: %w", cartID, err)
	}
	return nil
}
