package notification

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	created   []*Notification
	createErr error
	flags     map[string]Flags
}

func (m *mockRepo) Create(_ context.Context, n *Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit int) ([]Notification, error) {
	out := make([]Notification, 0, limit)
	for _, n := range m.created {
		if len(out) == limit {
			break
		}
		out = append(out, *n)
	}
	return out, nil
}

func (m *mockRepo) SetFlags(_ context.Context, id string, f Flags) (*Notification, error) {
	for _, n := range m.created {
		if n.ID != id {
			continue
		}
		if m.flags == nil {
			m.flags = make(map[string]Flags)
		}
		m.flags[id] = f
		if f.Read != nil {
			n.Read = *f.Read
		}
		if f.Pinned != nil {
			n.Pinned = *f.Pinned
		}
		return n, nil
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	for i, n := range m.created {
		if n.ID == id {
			m.created = append(m.created[:i], m.created[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type recordingSink struct {
	got []Notification
}

func (s *recordingSink) Broadcast(n Notification) {
	s.got = append(s.got, n)
}

func TestService_Emit(t *testing.T) {
	repo := &mockRepo{}
	sink := &recordingSink{}
	svc := NewService(repo, sink)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	require.NoError(t, svc.Emit(context.Background(), TypeOrder, "hello"))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, TypeOrder, n.Type)
	assert.Equal(t, "hello", n.Message)
	assert.False(t, n.Read)
	assert.False(t, n.Pinned)

	require.Len(t, sink.got, 1)
	assert.Equal(t, n.ID, sink.got[0].ID)
}

func TestService_EmitStoreFailureSkipsSinks(t *testing.T) {
	repo := &mockRepo{createErr: errors.New("db down")}
	sink := &recordingSink{}
	svc := NewService(repo, sink)

	err := svc.Emit(context.Background(), TypeStock, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create notification")
	assert.Empty(t, sink.got)
}

func TestService_Apply(t *testing.T) {
	tests := []struct {
		action     Action
		wantRead   bool
		wantPinned bool
	}{
		{action: ActionMarkRead, wantRead: true},
		{action: ActionMarkUnread, wantRead: false},
		{action: ActionPin, wantRead: true, wantPinned: true},
		{action: ActionUnpin, wantRead: false, wantPinned: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo)
			require.NoError(t, svc.Emit(context.Background(), TypeCoupon, "c"))
			id := repo.created[0].ID

			n, err := svc.Apply(context.Background(), id, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRead, n.Read)
			assert.Equal(t, tt.wantPinned, n.Pinned)
		})
	}
}

func TestService_ApplyUnknownAction(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Apply(context.Background(), "id", "archive")
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestService_ApplyMissing(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Apply(context.Background(), "missing", ActionPin)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListDefaultLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	for range 3 {
		require.NoError(t, svc.Emit(context.Background(), TypeOrder, "o"))
	}

	got, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "New order received: 12345678 for ₹2150",
		OrderCreatedMessage("12345678", decimal.NewFromInt(2150)))
	assert.Equal(t, "Order 12345678 status updated: PENDING → SHIPPED",
		OrderStatusMessage("12345678", "PENDING", "SHIPPED"))
	assert.Equal(t, "Stock updated for Kurta: 4 → 9", StockMessage("Kurta", 4, 9))
	assert.Equal(t, "Product Kurta is now live", LiveMessage("Kurta", true))
	assert.Equal(t, "Product Kurta was taken offline", LiveMessage("Kurta", false))
	assert.Equal(t, "Coupon SAVE10 updated", CouponUpdatedMessage("SAVE10", true, true))
	assert.Equal(t, "Coupon SAVE10 updated: Deactivated", CouponUpdatedMessage("SAVE10", true, false))
	assert.Equal(t, "Coupon SAVE10 updated: Activated", CouponUpdatedMessage("SAVE10", false, true))
	assert.Equal(t, "New coupon created: SAVE10 (PERCENT - 10%)",
		CouponCreatedMessage("SAVE10", "PERCENT", decimal.NewFromInt(10)))
	assert.Equal(t, "New coupon created: FLAT (FIXED - 100₹)",
		CouponCreatedMessage("FLAT", "FIXED", decimal.NewFromInt(100)))
}
