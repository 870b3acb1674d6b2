package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/pricing"
)

type mockCouponRepo struct {
	byCode    map[string]*Coupon
	err       error
	lookedUp  string
	created   *Coupon
	createErr error
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*Coupon, error) {
	m.lookedUp = code
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCouponRepo) Create(_ context.Context, c *Coupon) error {
	m.created = c
	return m.createErr
}

func (m *mockCouponRepo) SetActive(_ context.Context, code string, active bool) (*Coupon, error) {
	c, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	c.Active = active
	cp := *c
	return &cp, nil
}

type mockEmitter struct {
	messages []string
	err      error
}

func (m *mockEmitter) Emit(_ context.Context, _ notification.Type, msg string) error {
	m.messages = append(m.messages, msg)
	return m.err
}

func limit(n int) *int { return &n }

func newRepo(coupons ...*Coupon) *mockCouponRepo {
	byCode := make(map[string]*Coupon, len(coupons))
	for _, c := range coupons {
		byCode[c.Code] = c
	}
	return &mockCouponRepo{byCode: byCode}
}

func TestRepoValidator_Validate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name    string
		coupon  *Coupon
		code    string
		wantErr error
	}{
		{
			name:   "valid coupon",
			coupon: &Coupon{Code: "SAVE10", Type: pricing.DiscountPercent, Value: decimal.NewFromInt(10), ExpiresAt: future, Active: true},
			code:   "SAVE10",
		},
		{
			name:   "code is upper-cased before lookup",
			coupon: &Coupon{Code: "SAVE10", Type: pricing.DiscountPercent, Value: decimal.NewFromInt(10), ExpiresAt: future, Active: true},
			code:   "  save10 ",
		},
		{
			name:    "unknown code",
			code:    "BOGUS",
			wantErr: ErrNotFound,
		},
		{
			name:    "blank code",
			code:    "   ",
			wantErr: ErrNotFound,
		},
		{
			name:    "inactive coupon",
			coupon:  &Coupon{Code: "OFF", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(50), ExpiresAt: future, Active: false},
			code:    "OFF",
			wantErr: ErrInactive,
		},
		{
			name:    "expired active coupon",
			coupon:  &Coupon{Code: "OLD", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(50), ExpiresAt: past, Active: true},
			code:    "OLD",
			wantErr: ErrExpired,
		},
		{
			name:    "coupon expiring exactly now",
			coupon:  &Coupon{Code: "EDGE", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(50), ExpiresAt: fixedNow, Active: true},
			code:    "EDGE",
			wantErr: ErrExpired,
		},
		{
			name:   "coupon expiring a nanosecond from now",
			coupon: &Coupon{Code: "LAST", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(50), ExpiresAt: fixedNow.Add(time.Nanosecond), Active: true},
			code:   "LAST",
		},
		{
			name:    "expired inactive coupon is reported expired",
			coupon:  &Coupon{Code: "OLDOFF", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(50), ExpiresAt: past, Active: false},
			code:    "OLDOFF",
			wantErr: ErrExpired,
		},
		{
			name:    "usage limit reached",
			coupon:  &Coupon{Code: "LIMITED", Type: pricing.DiscountPercent, Value: decimal.NewFromInt(5), ExpiresAt: future, Active: true, UsageLimit: limit(3), UsedCount: 3},
			code:    "LIMITED",
			wantErr: ErrExhausted,
		},
		{
			name:   "usage under limit",
			coupon: &Coupon{Code: "ROOM", Type: pricing.DiscountPercent, Value: decimal.NewFromInt(5), ExpiresAt: future, Active: true, UsageLimit: limit(3), UsedCount: 2},
			code:   "ROOM",
		},
		{
			name:   "no usage limit",
			coupon: &Coupon{Code: "FOREVER", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(5), ExpiresAt: future, Active: true, UsedCount: 9999},
			code:   "FOREVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			if tt.coupon != nil {
				repo = newRepo(tt.coupon)
			}
			v := NewRepoValidator(repo)
			v.now = func() time.Time { return fixedNow }

			got, err := v.Validate(context.Background(), tt.code)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.coupon.Code, got.Code)
			assert.Equal(t, tt.coupon.Code, repo.lookedUp)
		})
	}
}

func TestRepoValidator_RepositoryError(t *testing.T) {
	v := NewRepoValidator(&mockCouponRepo{err: errors.New("db error")})

	_, err := v.Validate(context.Background(), "ANY")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup coupon")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCoupon_Discount(t *testing.T) {
	c := &Coupon{Type: pricing.DiscountFixed, Value: decimal.NewFromInt(75)}

	d := c.Discount()

	assert.Equal(t, pricing.DiscountFixed, d.Type)
	assert.True(t, decimal.NewFromInt(75).Equal(d.Value))
}

func TestService_Create(t *testing.T) {
	repo := newRepo()
	events := &mockEmitter{}
	svc := NewService(repo, events)

	c, err := svc.Create(context.Background(), CreateRequest{
		Code:      "welcome",
		Type:      pricing.DiscountPercent,
		Value:     decimal.NewFromInt(15),
		ExpiresAt: time.Now().Add(time.Hour),
		Active:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME", c.Code)
	assert.Same(t, c, repo.created)
	assert.Equal(t, []string{"New coupon created: WELCOME (PERCENT - 15%)"}, events.messages)
}

func TestService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRequest
	}{
		{name: "blank code", req: CreateRequest{Type: pricing.DiscountFixed, Value: decimal.NewFromInt(1)}},
		{name: "unknown type", req: CreateRequest{Code: "X", Type: "BOGO", Value: decimal.NewFromInt(1)}},
		{name: "zero value", req: CreateRequest{Code: "X", Type: pricing.DiscountFixed}},
		{name: "percent above 100", req: CreateRequest{Code: "X", Type: pricing.DiscountPercent, Value: decimal.NewFromInt(101)}},
		{name: "zero usage limit", req: CreateRequest{Code: "X", Type: pricing.DiscountFixed, Value: decimal.NewFromInt(1), UsageLimit: limit(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			events := &mockEmitter{}
			svc := NewService(repo, events)

			_, err := svc.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalid)
			assert.Nil(t, repo.created)
			assert.Empty(t, events.messages)
		})
	}
}

func TestService_SetActive(t *testing.T) {
	repo := newRepo(&Coupon{Code: "SAVE10", Active: true})
	events := &mockEmitter{err: errors.New("feed down")}
	svc := NewService(repo, events)

	c, err := svc.SetActive(context.Background(), "save10", false)

	require.NoError(t, err, "notification failures are not surfaced")
	assert.False(t, c.Active)
	assert.Equal(t, []string{"Coupon SAVE10 updated: Deactivated"}, events.messages)
}

func TestService_SetActiveNotFound(t *testing.T) {
	svc := NewService(newRepo(), &mockEmitter{})

	_, err := svc.SetActive(context.Background(), "NOPE", true)
	require.ErrorIs(t, err, ErrNotFound)
}
