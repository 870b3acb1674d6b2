package coupon

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// Validator resolves a coupon code to a coupon that may be applied now.
type Validator interface {
	Validate(ctx context.Context, code string) (*Coupon, error)
}

var _ Validator = (*RepoValidator)(nil)

// RepoValidator implements Validator on top of a Repository.
type RepoValidator struct {
	repo Repository
	now  func() time.Time
}

// NewRepoValidator creates a RepoValidator backed by the given Repository.
func NewRepoValidator(repo Repository) *RepoValidator {
	return &RepoValidator{repo: repo, now: time.Now}
}

// Validate looks up the upper-cased code and checks expiry, the active flag
// and the usage limit. It never changes the usage counter; a use is claimed
// only when an order is persisted.
func (v *RepoValidator) Validate(ctx context.Context, code string) (*Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrNotFound
	}

	c, err := v.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup coupon")
	}

	if err := c.Check(v.now()); err != nil {
		return nil, err
	}
	return c, nil
}
