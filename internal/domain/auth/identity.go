// Package auth carries the authenticated caller through a request.
package auth

import "context"

// Identity is the caller as seen by the domain services: an opaque customer
// id and the admin capability.
type Identity struct {
	CustomerID string
	Admin      bool
}

type identityKey struct{}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
