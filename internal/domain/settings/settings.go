// Package settings keeps the store-wide settings an admin can edit at
// runtime.
package settings

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/pricing"
)

var (
	// ErrNotFound is returned by a Repository that holds no fee settings yet.
	ErrNotFound = errors.New("settings not found")
	// ErrForbidden is returned when a non-admin edits settings.
	ErrForbidden = errors.New("admin access required")
	// ErrInvalidFees is returned for negative fee amounts.
	ErrInvalidFees = errors.New("fees must not be negative")
)

// FeeSettings is the editable delivery fee configuration.
type FeeSettings struct {
	Fees pricing.Fees
	// FreeDeliveryCoupon lets the storefront advertise free delivery. It
	// does not change how quotes are computed.
	FreeDeliveryCoupon bool
	UpdatedAt          time.Time
}

// Repository persists the fee settings.
type Repository interface {
	GetFees(ctx context.Context) (*FeeSettings, error)
	SaveFees(ctx context.Context, s *FeeSettings) error
}

var _ pricing.FeeSource = (*Service)(nil)

// Service reads and updates fee settings. Until an admin saves settings the
// configured defaults apply.
type Service struct {
	repo     Repository
	defaults FeeSettings
	now      func() time.Time
}

// NewService creates a settings Service falling back to defaults.
func NewService(repo Repository, defaults pricing.Fees) *Service {
	return &Service{
		repo:     repo,
		defaults: FeeSettings{Fees: defaults, FreeDeliveryCoupon: true},
		now:      time.Now,
	}
}

// Fees returns the current fee settings.
func (s *Service) Fees(ctx context.Context) (*FeeSettings, error) {
	fs, err := s.repo.GetFees(ctx)
	if errors.Is(err, ErrNotFound) {
		d := s.defaults
		return &d, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get fee settings")
	}
	return fs, nil
}

// CurrentFees returns the fees quotes are computed with.
func (s *Service) CurrentFees(ctx context.Context) (pricing.Fees, error) {
	fs, err := s.Fees(ctx)
	if err != nil {
		return pricing.Fees{}, err
	}
	return fs.Fees, nil
}

// UpdateFees replaces the fee settings.
func (s *Service) UpdateFees(ctx context.Context, admin bool, fs FeeSettings) (*FeeSettings, error) {
	if !admin {
		return nil, ErrForbidden
	}
	if fs.Fees.StandardDeliveryFee.IsNegative() || fs.Fees.FreeDeliveryThreshold.IsNegative() {
		return nil, ErrInvalidFees
	}
	fs.UpdatedAt = s.now()
	if err := s.repo.SaveFees(ctx, &fs); err != nil {
		return nil, errors.Wrap(err, "save fee settings")
	}

	zctx.From(ctx).Info("Delivery fees updated",
		zap.Stringer("standard_delivery_fee", fs.Fees.StandardDeliveryFee),
		zap.Stringer("free_delivery_threshold", fs.Fees.FreeDeliveryThreshold),
		zap.Bool("free_delivery_coupon", fs.FreeDeliveryCoupon),
	)
	return &fs, nil
}
