package order

import (
	"context"
	"math/rand/v2"
	"strconv"

	"github.com/go-faster/errors"
)

const (
	// MaxIDAttempts bounds both the existence checks of a single allocation
	// and the number of insert retries after a unique violation.
	MaxIDAttempts = 10

	minOrderID  = 10_000_000
	orderIDSpan = 90_000_000
)

// IDChecker reports whether a public order id is taken.
type IDChecker interface {
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
}

// Allocator mints 8-digit public order ids. The existence check is only an
// optimistic pre-check; the unique constraint on insert is authoritative.
type Allocator struct {
	checker IDChecker
	next    func() int64
}

// NewAllocator creates an Allocator checking ids against checker.
func NewAllocator(checker IDChecker) *Allocator {
	return &Allocator{
		checker: checker,
		next: func() int64 {
			return minOrderID + rand.Int64N(orderIDSpan)
		},
	}
}

// Allocate returns an id that was free when checked. It gives up with
// ErrIDAllocationExhausted after MaxIDAttempts taken ids.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for range MaxIDAttempts {
		id := strconv.FormatInt(a.next(), 10)

		taken, err := a.checker.ExistsByOrderID(ctx, id)
		if err != nil {
			return "", errors.Wrap(err, "check order id")
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrIDAllocationExhausted
}

// ValidOrderID reports whether s has the shape of a public order id.
func ValidOrderID(s string) bool {
	if len(s) != 8 || s[0] == '0' {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
