package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/cart"
)

var _ cart.Repository = (*CartRepository)(nil)

const cartLinesQuery = `
SELECT ci.id, ci.product_id, COALESCE(ci.variant_id, ''), p.name, COALESCE(v.name, ''),
       p.display_price, p.tax_rate, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
LEFT JOIN variants v ON v.id = ci.variant_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at, ci.id`

// CartRepository implements cart.Repository backed by PostgreSQL.
type CartRepository struct {
	db DBTX
}

// NewCartRepository returns a CartRepository that uses the given pool.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: pool}
}

// GetOrCreate returns the customer's cart with its lines, creating the cart
// row on first access.
func (r *CartRepository) GetOrCreate(ctx context.Context, customerID string) (*cart.Cart, error) {
	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO carts (id, customer_id) VALUES ($1, $2)
		ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id`,
		uuid.NewString(), customerID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upserting cart for %q: %w", customerID, err)
	}

	lines, err := cartLines(ctx, r.db, id, "")
	if err != nil {
		return nil, err
	}
	return &cart.Cart{ID: id, CustomerID: customerID, Lines: lines}, nil
}

// AddItem inserts a line or adds quantity to the existing line for the same
// product and variant.
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID, variantID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, variant_id, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id, (COALESCE(variant_id, '')))
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		uuid.NewString(), cartID, productID, nullable(variantID), quantity,
	)
	if err != nil {
		return fmt.Errorf("adding item to cart %q: %w", cartID, err)
	}
	return nil
}

// FindItem returns a cart item with the customer owning its cart.
func (r *CartRepository) FindItem(ctx context.Context, itemID string) (*cart.Item, error) {
	var it cart.Item
	err := r.db.QueryRow(ctx, `
		SELECT ci.id, ci.cart_id, c.customer_id, ci.product_id, COALESCE(ci.variant_id, ''), ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE ci.id = $1`,
		itemID,
	).Scan(&it.ID, &it.CartID, &it.CustomerID, &it.ProductID, &it.VariantID, &it.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("getting cart item %q: %w", itemID, err)
	}
	return &it, nil
}

// SetQuantity overwrites the quantity of an item.
func (r *CartRepository) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	tag, err := r.db.Exec(ctx, `UPDATE cart_items SET quantity = $2 WHERE id = $1`, itemID, quantity)
	if err != nil {
		return fmt.Errorf("updating cart item %q: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// RemoveItem deletes an item.
func (r *CartRepository) RemoveItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("deleting cart item %q: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// cartLines loads the lines of a cart joined with current catalog data.
// suffix is appended to the query, e.g. a locking clause.
func cartLines(ctx context.Context, db DBTX, cartID, suffix string) ([]cart.Line, error) {
	rows, err := db.Query(ctx, cartLinesQuery+suffix, cartID)
	if err != nil {
		return nil, fmt.Errorf("listing cart %q lines: %w", cartID, err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (cart.Line, error) {
		var l cart.Line
		err := row.Scan(&l.ItemID, &l.ProductID, &l.VariantID, &l.ProductName, &l.VariantName,
			&l.DisplayPrice, &l.TaxRate, &l.Quantity)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning cart %q lines: %w", cartID, err)
	}
	return lines, nil
}
