package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/product"
)

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository implements product.Repository backed by PostgreSQL.
type ProductRepository struct {
	db DBTX
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: pool}
}

// GetByID returns a product with its variants.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(category_id, ''), display_price, COALESCE(mrp, ''),
		       tax_rate, stock, is_live, images
		FROM products
		WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.CategoryID, &p.DisplayPrice, &p.MRP, &p.TaxRate, &p.Stock, &p.Live, &p.Images)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, images FROM variants WHERE product_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("listing variants of %q: %w", id, err)
	}
	p.Variants, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (product.Variant, error) {
		var v product.Variant
		err := row.Scan(&v.ID, &v.Name, &v.Images)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning variants of %q: %w", id, err)
	}
	return &p, nil
}

// SetStock overwrites the stock quantity.
func (r *ProductRepository) SetStock(ctx context.Context, id string, stock int) error {
	return r.update(ctx, id, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, stock)
}

// SetLive publishes or unpublishes the product.
func (r *ProductRepository) SetLive(ctx context.Context, id string, live bool) error {
	return r.update(ctx, id, `UPDATE products SET is_live = $2, updated_at = now() WHERE id = $1`, live)
}

func (r *ProductRepository) update(ctx context.Context, id, query string, value any) error {
	tag, err := r.db.Exec(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("updating product %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Category is a catalog grouping.
type Category struct {
	ID   string
	Name string
	Slug string
}

// UpsertCategory inserts or renames a category.
func (r *ProductRepository) UpsertCategory(ctx context.Context, c Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug`,
		c.ID, c.Name, c.Slug,
	)
	if err != nil {
		return fmt.Errorf("upserting category %q: %w", c.ID, err)
	}
	return nil
}

// Upsert inserts or replaces a product and its variants.
func (r *ProductRepository) Upsert(ctx context.Context, p *product.Product) error {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, category_id, display_price, mrp, tax_rate, stock, is_live, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category_id = EXCLUDED.category_id,
			display_price = EXCLUDED.display_price,
			mrp = EXCLUDED.mrp,
			tax_rate = EXCLUDED.tax_rate,
			stock = EXCLUDED.stock,
			is_live = EXCLUDED.is_live,
			images = EXCLUDED.images,
			updated_at = now()`,
		p.ID, p.Name, nullable(p.CategoryID), p.DisplayPrice, nullable(p.MRP), p.TaxRate, p.Stock, p.Live, images,
	)
	if err != nil {
		return fmt.Errorf("upserting product %q: %w", p.ID, err)
	}

	for _, v := range p.Variants {
		vImages := v.Images
		if vImages == nil {
			vImages = []string{}
		}
		_, err := r.db.Exec(ctx, `
			INSERT INTO variants (id, product_id, name, images) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, images = EXCLUDED.images`,
			v.ID, p.ID, v.Name, vImages,
		)
		if err != nil {
			return fmt.Errorf("upserting variant %q: %w", v.ID, err)
		}
	}
	return nil
}
