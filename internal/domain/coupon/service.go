package coupon

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/pricing"
)

// CreateRequest holds the fields of a new coupon.
type CreateRequest struct {
	Code       string
	Type       pricing.DiscountType
	Value      decimal.Decimal
	ExpiresAt  time.Time
	Active     bool
	UsageLimit *int
}

// Service implements the administrative coupon operations.
type Service struct {
	repo   Repository
	events notification.Emitter
	now    func() time.Time
}

// NewService creates a coupon Service.
func NewService(repo Repository, events notification.Emitter) *Service {
	return &Service{repo: repo, events: events, now: time.Now}
}

// Create validates and stores a new coupon.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Coupon, error) {
	code := NormalizeCode(req.Code)
	switch {
	case code == "":
		return nil, errors.Wrap(ErrInvalid, "code is required")
	case !req.Type.Valid():
		return nil, errors.Wrapf(ErrInvalid, "unknown discount type %q", req.Type)
	case !req.Value.IsPositive():
		return nil, errors.Wrap(ErrInvalid, "value must be positive")
	case req.Type == pricing.DiscountPercent && req.Value.GreaterThan(decimal.NewFromInt(100)):
		return nil, errors.Wrap(ErrInvalid, "percent value must not exceed 100")
	case req.UsageLimit != nil && *req.UsageLimit <= 0:
		return nil, errors.Wrap(ErrInvalid, "usage limit must be positive")
	}

	c := &Coupon{
		ID:         uuid.New().String(),
		Code:       code,
		Type:       req.Type,
		Value:      req.Value,
		ExpiresAt:  req.ExpiresAt.UTC(),
		Active:     req.Active,
		UsageLimit: req.UsageLimit,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, errors.Wrap(err, "create coupon")
	}

	s.emit(ctx, notification.CouponCreatedMessage(c.Code, string(c.Type), c.Value))
	return c, nil
}

// SetActive switches a coupon on or off.
func (s *Service) SetActive(ctx context.Context, code string, active bool) (*Coupon, error) {
	code = NormalizeCode(code)

	old, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.SetActive(ctx, code, active)
	if err != nil {
		return nil, errors.Wrap(err, "set coupon active")
	}

	s.emit(ctx, notification.CouponUpdatedMessage(c.Code, old.Active, c.Active))
	return c, nil
}

func (s *Service) emit(ctx context.Context, msg string) {
	if err := s.events.Emit(ctx, notification.TypeCoupon, msg); err != nil {
		zctx.From(ctx).Warn("Coupon notification failed", zap.Error(err))
	}
}
