package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/address"
)

var _ address.Repository = (*AddressRepository)(nil)

const addressColumns = `id, customer_id, name, full_name, contact_no, email, address, city, state, pincode, country, is_default, created_at, updated_at`

// AddressRepository implements address.Repository backed by PostgreSQL.
type AddressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns an AddressRepository that uses the given pool.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// List returns the customer's addresses, the default first.
func (r *AddressRepository) List(ctx context.Context, customerID string) ([]address.Address, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+addressColumns+` FROM addresses
		WHERE customer_id = $1
		ORDER BY is_default DESC, created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (address.Address, error) {
		a, err := scanAddress(row)
		if err != nil {
			return address.Address{}, err
		}
		return *a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning addresses: %w", err)
	}
	return list, nil
}

// Get returns the address when it belongs to the customer.
func (r *AddressRepository) Get(ctx context.Context, customerID, id string) (*address.Address, error) {
	a, err := scanAddress(r.pool.QueryRow(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = $1 AND customer_id = $2`, id, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, address.ErrNotFound
		}
		return nil, fmt.Errorf("getting address %q: %w", id, err)
	}
	return a, nil
}

// Create inserts the address.
func (r *AddressRepository) Create(ctx context.Context, a *address.Address) error {
	return r.write(ctx, a, func(tx pgx.Tx) (int64, error) {
		tag, err := tx.Exec(ctx, `
			INSERT INTO addresses (`+addressColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			a.ID, a.CustomerID, a.Name, a.FullName, a.ContactNo, a.Email,
			a.Address, a.City, a.State, a.Pincode, a.Country, a.Default, a.CreatedAt, a.UpdatedAt,
		)
		return tag.RowsAffected(), err
	})
}

// Update rewrites the address fields.
func (r *AddressRepository) Update(ctx context.Context, a *address.Address) error {
	return r.write(ctx, a, func(tx pgx.Tx) (int64, error) {
		tag, err := tx.Exec(ctx, `
			UPDATE addresses SET
				name = $3, full_name = $4, contact_no = $5, email = $6, address = $7,
				city = $8, state = $9, pincode = $10, country = $11, is_default = $12, updated_at = $13
			WHERE id = $1 AND customer_id = $2`,
			a.ID, a.CustomerID, a.Name, a.FullName, a.ContactNo, a.Email,
			a.Address, a.City, a.State, a.Pincode, a.Country, a.Default, a.UpdatedAt,
		)
		return tag.RowsAffected(), err
	})
}

// write runs one address write, first clearing the customer's other
// defaults when a is the new default.
func (r *AddressRepository) write(ctx context.Context, a *address.Address, exec func(tx pgx.Tx) (int64, error)) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if a.Default {
			if _, err := tx.Exec(ctx,
				`UPDATE addresses SET is_default = FALSE WHERE customer_id = $1 AND is_default`,
				a.CustomerID,
			); err != nil {
				return fmt.Errorf("clearing default address: %w", err)
			}
		}
		n, err := exec(tx)
		if err != nil {
			return err
		}
		if n == 0 {
			return address.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if uniqueConstraint(err) == "addresses_customer_name_key" {
			return address.ErrDuplicateName
		}
		if errors.Is(err, address.ErrNotFound) {
			return err
		}
		return fmt.Errorf("writing address %q: %w", a.ID, err)
	}
	return nil
}

// Delete removes the address when it belongs to the customer.
func (r *AddressRepository) Delete(ctx context.Context, customerID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("deleting address %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return address.ErrNotFound
	}
	return nil
}

func scanAddress(row pgx.Row) (*address.Address, error) {
	var a address.Address
	err := row.Scan(
		&a.ID, &a.CustomerID, &a.Name, &a.FullName, &a.ContactNo, &a.Email,
		&a.Address, &a.City, &a.State, &a.Pincode, &a.Country, &a.Default, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
