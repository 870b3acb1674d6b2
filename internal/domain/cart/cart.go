// Package cart holds the per-customer shopping cart and prices it.
package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/pricing"
)

var (
	// ErrItemNotFound is returned when a cart item does not exist.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrForbidden is returned when a customer touches another customer's item.
	ErrForbidden = errors.New("cart item belongs to another customer")
	// ErrInvalidQuantity is returned for a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrUnavailable is returned when adding a product that is not live.
	ErrUnavailable = errors.New("product is not available")
)

// Cart is a customer's cart with every item resolved to current catalog data.
type Cart struct {
	ID         string
	CustomerID string
	Lines      []Line
}

// Empty reports whether the cart holds no items.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// PricingLines converts the cart lines for the pricing engine.
func (c *Cart) PricingLines() ([]pricing.Line, error) {
	out := make([]pricing.Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		pl, err := l.Priced()
		if err != nil {
			return nil, err
		}
		out = append(out, pl)
	}
	return out, nil
}

// Line is a cart item joined with its product.
type Line struct {
	ItemID      string
	ProductID   string
	VariantID   string
	ProductName string
	VariantName string
	// DisplayPrice is the product price as stored in the catalog.
	DisplayPrice string
	TaxRate      decimal.Decimal
	Quantity     int
}

// Priced returns the pricing view of the line, parsing the display price.
func (l Line) Priced() (pricing.Line, error) {
	price, err := pricing.ParsePrice(l.DisplayPrice)
	if err != nil {
		return pricing.Line{}, errors.Wrapf(err, "product %s", l.ProductID)
	}
	return pricing.Line{UnitPrice: price, Quantity: l.Quantity, TaxRate: l.TaxRate}, nil
}

// Item is a stored cart row with the owner of its cart.
type Item struct {
	ID         string
	CartID     string
	CustomerID string
	ProductID  string
	VariantID  string
	Quantity   int
}

// Repository persists carts and their items.
type Repository interface {
	// GetOrCreate returns the customer's cart, creating an empty one on
	// first access.
	GetOrCreate(ctx context.Context, customerID string) (*Cart, error)
	// AddItem inserts an item, or increments the quantity of the existing
	// item with the same product and variant.
	AddItem(ctx context.Context, cartID, productID, variantID string, quantity int) error
	FindItem(ctx context.Context, itemID string) (*Item, error)
	SetQuantity(ctx context.Context, itemID string, quantity int) error
	RemoveItem(ctx context.Context, itemID string) error
}
