package address

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the saved address operations. Every call is scoped to
// one customer.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates an address Service.
func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// List returns the customer's addresses.
func (s *Service) List(ctx context.Context, customerID string) ([]Address, error) {
	list, err := s.repo.List(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "list addresses")
	}
	return list, nil
}

// Get returns one of the customer's addresses.
func (s *Service) Get(ctx context.Context, customerID, id string) (*Address, error) {
	return s.repo.Get(ctx, customerID, id)
}

// Create saves a new address for the customer.
func (s *Service) Create(ctx context.Context, customerID string, a Address) (*Address, error) {
	normalize(&a)
	if err := s.check(&a); err != nil {
		return nil, err
	}

	now := s.now()
	a.ID = uuid.NewString()
	a.CustomerID = customerID
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, err
	}

	zctx.From(ctx).Info("Address created",
		zap.String("address_id", a.ID),
		zap.Bool("default", a.Default),
	)
	return &a, nil
}

// Update replaces the fields of one of the customer's addresses.
func (s *Service) Update(ctx context.Context, customerID, id string, a Address) (*Address, error) {
	existing, err := s.repo.Get(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	normalize(&a)
	if err := s.check(&a); err != nil {
		return nil, err
	}

	a.ID = existing.ID
	a.CustomerID = existing.CustomerID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes one of the customer's addresses.
func (s *Service) Delete(ctx context.Context, customerID, id string) error {
	return s.repo.Delete(ctx, customerID, id)
}

func normalize(a *Address) {
	for _, f := range []*string{
		&a.Name, &a.FullName, &a.ContactNo, &a.Email,
		&a.Address, &a.City, &a.State, &a.Pincode, &a.Country,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (s *Service) check(a *Address) error {
	err := s.validate.Struct(a)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}
