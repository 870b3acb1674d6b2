package settings

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/pricing"
)

type memRepo struct {
	stored *FeeSettings
	err    error
}

func (m *memRepo) GetFees(context.Context) (*FeeSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.stored == nil {
		return nil, ErrNotFound
	}
	cp := *m.stored
	return &cp, nil
}

func (m *memRepo) SaveFees(_ context.Context, s *FeeSettings) error {
	if m.err != nil {
		return m.err
	}
	cp := *s
	m.stored = &cp
	return nil
}

func fees(fee, threshold int64) pricing.Fees {
	return pricing.Fees{
		StandardDeliveryFee:   decimal.NewFromInt(fee),
		FreeDeliveryThreshold: decimal.NewFromInt(threshold),
	}
}

func TestService_Defaults(t *testing.T) {
	svc := NewService(&memRepo{}, fees(50, 500))

	fs, err := svc.Fees(context.Background())
	require.NoError(t, err)
	assert.True(t, fs.Fees.StandardDeliveryFee.Equal(decimal.NewFromInt(50)))
	assert.True(t, fs.FreeDeliveryCoupon)

	got, err := svc.CurrentFees(context.Background())
	require.NoError(t, err)
	assert.True(t, got.FreeDeliveryThreshold.Equal(decimal.NewFromInt(500)))
}

func TestService_UpdateFees(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, fees(50, 500))
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := svc.UpdateFees(ctx, false, FeeSettings{Fees: fees(80, 1000)})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateFees(ctx, true, FeeSettings{Fees: fees(-1, 1000)})
	require.ErrorIs(t, err, ErrInvalidFees)
	assert.Nil(t, repo.stored)

	fs, err := svc.UpdateFees(ctx, true, FeeSettings{Fees: fees(80, 1000)})
	require.NoError(t, err)
	assert.Equal(t, now, fs.UpdatedAt)
	assert.False(t, fs.FreeDeliveryCoupon)

	got, err := svc.CurrentFees(ctx)
	require.NoError(t, err)
	assert.True(t, got.StandardDeliveryFee.Equal(decimal.NewFromInt(80)))
	assert.True(t, got.FreeDeliveryThreshold.Equal(decimal.NewFromInt(1000)))
}

func TestService_RepositoryError(t *testing.T) {
	svc := NewService(&memRepo{err: errors.New("connection refused")}, fees(50, 500))

	_, err := svc.CurrentFees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
