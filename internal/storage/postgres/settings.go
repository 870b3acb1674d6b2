package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/settings"
)

var _ settings.Repository = (*SettingsRepository)(nil)

// SettingsRepository implements settings.Repository backed by the single
// fee_settings row.
type SettingsRepository struct {
	db DBTX
}

// NewSettingsRepository returns a SettingsRepository that uses the given pool.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: pool}
}

// GetFees returns the saved fee settings.
func (r *SettingsRepository) GetFees(ctx context.Context) (*settings.FeeSettings, error) {
	var fs settings.FeeSettings
	err := r.db.QueryRow(ctx, `
		SELECT standard_delivery_fee, free_delivery_threshold, free_delivery_coupon, updated_at
		FROM fee_settings`,
	).Scan(&fs.Fees.StandardDeliveryFee, &fs.Fees.FreeDeliveryThreshold, &fs.FreeDeliveryCoupon, &fs.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrNotFound
		}
		return nil, fmt.Errorf("getting fee settings: %w", err)
	}
	return &fs, nil
}

// SaveFees replaces the fee settings.
func (r *SettingsRepository) SaveFees(ctx context.Context, fs *settings.FeeSettings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO fee_settings (id, standard_delivery_fee, free_delivery_threshold, free_delivery_coupon, updated_at)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			standard_delivery_fee = EXCLUDED.standard_delivery_fee,
			free_delivery_threshold = EXCLUDED.free_delivery_threshold,
			free_delivery_coupon = EXCLUDED.free_delivery_coupon,
			updated_at = EXCLUDED.updated_at`,
		fs.Fees.StandardDeliveryFee, fs.Fees.FreeDeliveryThreshold, fs.FreeDeliveryCoupon, fs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving fee settings: %w", err)
	}
	return nil
}
