package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
)

var _ coupon.Repository = (*CouponRepository)(nil)

const couponColumns = `id, code, type, value, expires_at, is_active, usage_limit, used_count, created_at`

// CouponRepository implements coupon.Repository backed by PostgreSQL.
type CouponRepository struct {
	db DBTX
}

// NewCouponRepository returns a CouponRepository that uses the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: pool}
}

// FindByCode looks up a coupon by its normalized code.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrNotFound
		}
		return nil, fmt.Errorf("finding coupon by code %q: %w", code, err)
	}
	return c, nil
}

// Create inserts a new coupon.
func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (id, code, type, value, expires_at, is_active, usage_limit, used_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Code, string(c.Type), c.Value, c.ExpiresAt, c.Active, c.UsageLimit, c.UsedCount, c.CreatedAt,
	)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return coupon.ErrDuplicateCode
		}
		return fmt.Errorf("creating coupon %q: %w", c.Code, err)
	}
	return nil
}

// SetActive switches a coupon on or off and returns the updated coupon.
func (r *CouponRepository) SetActive(ctx context.Context, code string, active bool) (*coupon.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx,
		`UPDATE coupons SET is_active = $2 WHERE code = $1 RETURNING `+couponColumns,
		code, active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrNotFound
		}
		return nil, fmt.Errorf("updating coupon %q: %w", code, err)
	}
	return c, nil
}

// Upsert inserts coupons in one batch, refreshing the rule of existing codes
// while keeping their usage counts. It returns the number of rows written.
func (r *CouponRepository) Upsert(ctx context.Context, coupons []coupon.Coupon) (int64, error) {
	batch := &pgx.Batch{}
	for i := range coupons {
		c := &coupons[i]
		batch.Queue(`
			INSERT INTO coupons (id, code, type, value, expires_at, is_active, usage_limit)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (code) DO UPDATE SET
				type = EXCLUDED.type,
				value = EXCLUDED.value,
				expires_at = EXCLUDED.expires_at,
				is_active = EXCLUDED.is_active,
				usage_limit = EXCLUDED.usage_limit`,
			c.ID, c.Code, string(c.Type), c.Value, c.ExpiresAt, c.Active, c.UsageLimit,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	var written int64
	for range coupons {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("upserting coupons: %w", err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		c     coupon.Coupon
		typ   string
		limit *int32
	)
	if err := row.Scan(&c.ID, &c.Code, &typ, &c.Value, &c.ExpiresAt, &c.Active, &limit, &c.UsedCount, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Type = pricing.DiscountType(typ)
	if limit != nil {
		n := int(*limit)
		c.UsageLimit = &n
	}
	return &c, nil
}
