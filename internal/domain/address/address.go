// Package address manages a customer's saved delivery addresses.
package address

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound is returned for a missing address or one owned by another
	// customer.
	ErrNotFound = errors.New("address not found")
	// ErrDuplicateName is returned when the customer already has an address
	// with the same name.
	ErrDuplicateName = errors.New("address name already exists")
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid address: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// Address is a saved delivery address. Name labels it for the customer,
// e.g. "Home".
type Address struct {
	ID         string
	CustomerID string
	Name       string `validate:"required,max=50"`
	FullName   string `validate:"required,max=200"`
	ContactNo  string `validate:"required,min=6,max=20"`
	Email      string `validate:"required,email,max=254"`
	Address    string `validate:"required,max=500"`
	City       string `validate:"required,max=100"`
	State      string `validate:"required,max=100"`
	Pincode    string `validate:"required,max=12"`
	Country    string `validate:"required,max=100"`
	// Default marks the address preselected at checkout. At most one
	// address per customer is the default.
	Default   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository persists addresses. Create and Update clear the default flag
// of the customer's other addresses when a.Default is set, in the same
// transaction.
type Repository interface {
	// List returns the customer's addresses, the default first and then
	// newest first.
	List(ctx context.Context, customerID string) ([]Address, error)
	Get(ctx context.Context, customerID, id string) (*Address, error)
	Create(ctx context.Context, a *Address) error
	Update(ctx context.Context, a *Address) error
	Delete(ctx context.Context, customerID, id string) error
}
