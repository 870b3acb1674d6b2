package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/pricing"
)

var (
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a variant does not belong to the product.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrInvalidStock is returned for a negative stock quantity.
	ErrInvalidStock = errors.New("stock must not be negative")
)

// Product is a catalog item available for purchase.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	// DisplayPrice is the price as entered by the merchant, e.g. "₹1,299".
	DisplayPrice string
	// MRP is the optional list price shown for comparison.
	MRP      string
	TaxRate  decimal.Decimal
	Stock    int
	Live     bool
	Images   []string
	Variants []Variant
}

// UnitPrice returns the numeric value of the display price.
func (p *Product) UnitPrice() (decimal.Decimal, error) {
	return pricing.ParsePrice(p.DisplayPrice)
}

// Variant returns the variant with the given id.
func (p *Product) Variant(id string) (*Variant, error) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], nil
		}
	}
	return nil, ErrVariantNotFound
}

// Variant is a product option with its own images. It shares the parent's
// price and tax rate.
type Variant struct {
	ID     string
	Name   string
	Images []string
}

// Repository defines catalog reads and the admin inventory writes.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	SetStock(ctx context.Context, id string, stock int) error
	SetLive(ctx context.Context, id string, live bool) error
}
