package cart

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
)

// AddRequest describes an item to put in the cart.
type AddRequest struct {
	ProductID string
	VariantID string
	// Quantity defaults to 1 when zero.
	Quantity int
}

// Priced is a cart together with its quote.
type Priced struct {
	Cart   *Cart
	Quote  pricing.Quote
	Coupon *coupon.Coupon
}

// Service implements the customer cart operations.
type Service struct {
	carts    Repository
	products product.Repository
	coupons  coupon.Validator
	fees     pricing.FeeSource
}

// NewService creates a cart Service.
func NewService(carts Repository, products product.Repository, coupons coupon.Validator, fees pricing.FeeSource) *Service {
	return &Service{
		carts:    carts,
		products: products,
		coupons:  coupons,
		fees:     fees,
	}
}

// Get returns the customer's cart, creating it on first access.
func (s *Service) Get(ctx context.Context, customerID string) (*Cart, error) {
	c, err := s.carts.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "get cart")
	}
	return c, nil
}

// Add puts a product in the cart. Adding a product and variant that is
// already present increases its quantity.
func (s *Service) Add(ctx context.Context, customerID string, req AddRequest) (*Cart, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.Live {
		return nil, ErrUnavailable
	}
	if req.VariantID != "" {
		if _, err := p.Variant(req.VariantID); err != nil {
			return nil, err
		}
	}

	c, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.AddItem(ctx, c.ID, req.ProductID, req.VariantID, req.Quantity); err != nil {
		return nil, errors.Wrap(err, "add cart item")
	}
	return s.Get(ctx, customerID)
}

// Update sets the quantity of an item owned by the customer.
func (s *Service) Update(ctx context.Context, customerID, itemID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.ownedItem(ctx, customerID, itemID); err != nil {
		return nil, err
	}
	if err := s.carts.SetQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "set quantity")
	}
	return s.Get(ctx, customerID)
}

// Remove deletes an item owned by the customer.
func (s *Service) Remove(ctx context.Context, customerID, itemID string) error {
	if _, err := s.ownedItem(ctx, customerID, itemID); err != nil {
		return err
	}
	if err := s.carts.RemoveItem(ctx, itemID); err != nil {
		return errors.Wrap(err, "remove cart item")
	}
	return nil
}

// Quote prices the customer's cart. A non-empty coupon code is validated
// and any rejection is returned as is.
func (s *Service) Quote(ctx context.Context, customerID, couponCode string) (*Priced, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var cp *coupon.Coupon
	var discount *pricing.Discount
	if couponCode != "" {
		cp, err = s.coupons.Validate(ctx, couponCode)
		if err != nil {
			return nil, err
		}
		discount = cp.Discount()
	}

	lines, err := c.PricingLines()
	if err != nil {
		return nil, err
	}
	fees, err := s.fees.CurrentFees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load fees")
	}

	return &Priced{
		Cart:   c,
		Quote:  pricing.Compute(lines, discount, fees),
		Coupon: cp,
	}, nil
}

func (s *Service) ownedItem(ctx context.Context, customerID, itemID string) (*Item, error) {
	item, err := s.carts.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return item, nil
}
