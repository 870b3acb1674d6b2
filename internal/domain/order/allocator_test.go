package order

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setChecker struct {
	mu    sync.Mutex
	taken map[string]bool
	calls int
	err   error
}

func (c *setChecker) ExistsByOrderID(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.taken[id], c.err
}

func TestAllocator_Range(t *testing.T) {
	a := NewAllocator(&setChecker{})

	for range 1000 {
		id, err := a.Allocate(context.Background())
		require.NoError(t, err)
		require.True(t, ValidOrderID(id), "id %q", id)

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 10_000_000)
		require.LessOrEqual(t, n, 99_999_999)
	}
}

func TestAllocator_SkipsTaken(t *testing.T) {
	c := &setChecker{taken: map[string]bool{"11111111": true, "22222222": true}}
	a := NewAllocator(c)
	a.next = sequence(11111111, 22222222, 33333333)

	id, err := a.Allocate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "33333333", id)
	assert.Equal(t, 3, c.calls)
}

func TestAllocator_Exhausted(t *testing.T) {
	c := &setChecker{taken: map[string]bool{"11111111": true}}
	a := NewAllocator(c)
	a.next = sequence(11111111)

	_, err := a.Allocate(context.Background())

	require.ErrorIs(t, err, ErrIDAllocationExhausted)
	assert.Equal(t, MaxIDAttempts, c.calls)
}

func TestAllocator_CheckerError(t *testing.T) {
	a := NewAllocator(&setChecker{err: errors.New("connection reset")})

	_, err := a.Allocate(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIDAllocationExhausted)
}

func TestValidOrderID(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"10000000", true},
		{"99999999", true},
		{"09999999", false},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	} {
		assert.Equal(t, tt.want, ValidOrderID(tt.in), tt.in)
	}
}
