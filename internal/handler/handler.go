// Package handler implements the storefront API on top of the domain
// services.
package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/settings"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Files serves stored invoice files.
type Files interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// Deps are the services behind the API. LiveFeed and Files may be nil.
type Deps struct {
	Carts         *cart.Service
	Coupons       *coupon.Service
	CouponCheck   coupon.Validator
	Orders        *order.Service
	Payments      *payment.Service
	Products      *product.Service
	Notifications *notification.Service
	Addresses     *address.Service
	Settings      *settings.Service
	LiveFeed      http.Handler
	Files         Files
}

// Handler implements the ogen-generated Handler interface, delegating
// business logic to the domain services.
type Handler struct {
	oas.UnimplementedHandler
	Deps
}

// NewHandler constructs a Handler over deps.
func NewHandler(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// Routes mounts the generated API server under /api next to the routes it
// does not describe: the admin live feed and stored invoice files.
func (h *Handler) Routes(api http.Handler, sec *SecurityHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	if h.LiveFeed != nil {
		mux.Handle("GET /api/admin/notifications/live", sec.Admin(h.LiveFeed))
	}
	if h.Files != nil {
		mux.HandleFunc("GET /files/{key...}", h.ServeFile)
	}
	return mux
}
