package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"

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

// Error kinds of the API error body.
const (
	KindValidation            = "VALIDATION"
	KindEmptyCart             = "EMPTY_CART"
	KindCouponNotFound        = "COUPON_NOT_FOUND"
	KindCouponInactive        = "COUPON_INACTIVE"
	KindCouponExpired         = "COUPON_EXPIRED"
	KindCouponExhausted       = "COUPON_EXHAUSTED"
	KindIDAllocationExhausted = "ID_ALLOCATION_EXHAUSTED"
	KindPersistence           = "PERSISTENCE"
	KindInvalidState          = "INVALID_STATE"
	KindNotFound              = "NOT_FOUND"
	KindForbidden             = "FORBIDDEN"
	KindUnauthorized          = "UNAUTHORIZED"
	KindGateway               = "GATEWAY_ERROR"
	KindInvalidSignature      = "INVALID_SIGNATURE"
	KindNotImplemented        = "NOT_IMPLEMENTED"
)

var (
	errUnauthorized = errors.New("missing or invalid bearer token")
	errForbidden    = errors.New("admin role required")
)

// fieldError reports a field whose value the schema accepts but the
// storefront cannot use, e.g. an unparsable amount string.
type fieldError struct {
	Field string
}

func (e *fieldError) Error() string { return "invalid value for " + e.Field }

type apiError struct {
	status  int
	kind    string
	message string
}

// isDecodeError reports whether err comes from decoding or validating the
// request against the API schema.
func isDecodeError(err error) bool {
	if _, ok := errors.Into[*ogenerrors.DecodeRequestError](err); ok {
		return true
	}
	if _, ok := errors.Into[*ogenerrors.DecodeParamsError](err); ok {
		return true
	}
	if _, ok := errors.Into[*validate.Error](err); ok {
		return true
	}
	if _, ok := errors.Into[*validate.InvalidContentTypeError](err); ok {
		return true
	}
	return errors.Is(err, validate.ErrBodyRequired)
}

// classify maps an error to its HTTP status, kind and public message.
// Only client errors carry the error text; everything else is generic.
func classify(err error) apiError {
	var (
		verr  *order.ValidationError
		aerr  *address.ValidationError
		ferr  *fieldError
		state *order.StateError
	)
	switch {
	case errors.As(err, &verr):
		return apiError{http.StatusBadRequest, KindValidation, verr.Error()}
	case errors.As(err, &aerr):
		return apiError{http.StatusBadRequest, KindValidation, aerr.Error()}
	case errors.As(err, &ferr):
		return apiError{http.StatusBadRequest, KindValidation, ferr.Error()}
	case isDecodeError(err),
		errors.Is(err, order.ErrInvalidRequest),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrUnavailable),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, coupon.ErrInvalid),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, notification.ErrUnknownAction),
		errors.Is(err, address.ErrInvalidRequest),
		errors.Is(err, settings.ErrInvalidFees):
		return apiError{http.StatusBadRequest, KindValidation, err.Error()}
	case errors.Is(err, coupon.ErrDuplicateCode):
		return apiError{http.StatusConflict, KindValidation, coupon.ErrDuplicateCode.Error()}
	case errors.Is(err, address.ErrDuplicateName):
		return apiError{http.StatusConflict, KindValidation, address.ErrDuplicateName.Error()}

	case errors.Is(err, order.ErrEmptyCart):
		return apiError{http.StatusBadRequest, KindEmptyCart, "cart is empty"}
	case errors.Is(err, coupon.ErrNotFound):
		return apiError{http.StatusBadRequest, KindCouponNotFound, "coupon not found"}
	case errors.Is(err, coupon.ErrInactive):
		return apiError{http.StatusBadRequest, KindCouponInactive, "coupon is not active"}
	case errors.Is(err, coupon.ErrExpired):
		return apiError{http.StatusBadRequest, KindCouponExpired, "coupon has expired"}
	case errors.Is(err, coupon.ErrExhausted):
		return apiError{http.StatusBadRequest, KindCouponExhausted, "coupon usage limit reached"}
	case errors.Is(err, order.ErrInvalidSignature):
		return apiError{http.StatusBadRequest, KindInvalidSignature, "payment signature mismatch"}

	case errors.Is(err, order.ErrIDAllocationExhausted):
		return apiError{http.StatusServiceUnavailable, KindIDAllocationExhausted, "retry finalization; do not pay again"}
	case errors.As(err, &state):
		return apiError{http.StatusConflict, KindInvalidState, state.Error()}
	case errors.Is(err, order.ErrInvalidState):
		return apiError{http.StatusConflict, KindInvalidState, err.Error()}

	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, product.ErrVariantNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, notification.ErrNotFound),
		errors.Is(err, address.ErrNotFound):
		return apiError{http.StatusNotFound, KindNotFound, err.Error()}
	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, cart.ErrForbidden),
		errors.Is(err, settings.ErrForbidden),
		errors.Is(err, errForbidden):
		return apiError{http.StatusForbidden, KindForbidden, "access denied"}
	case errors.Is(err, errUnauthorized),
		errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied):
		return apiError{http.StatusUnauthorized, KindUnauthorized, errUnauthorized.Error()}
	case errors.Is(err, payment.ErrGateway):
		return apiError{http.StatusBadGateway, KindGateway, "payment gateway is unavailable, please try again"}
	case errors.Is(err, ht.ErrNotImplemented):
		return apiError{http.StatusNotImplemented, KindNotImplemented, "operation is not implemented"}
	default:
		return apiError{http.StatusInternalServerError, KindPersistence, "something went wrong, please try again"}
	}
}

// NewError maps an error returned by an operation to the API error body.
// Server-side failures are logged with the full error.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *oas.ErrorStatusCode {
	ae := classify(err)
	lg := zctx.From(ctx)
	if ae.status >= http.StatusInternalServerError {
		lg.Error("Request failed", zap.String("kind", ae.kind), zap.Error(err))
	} else {
		lg.Debug("Request rejected", zap.String("kind", ae.kind), zap.Error(err))
	}
	return &oas.ErrorStatusCode{
		StatusCode: ae.status,
		Response: oas.Error{
			Code:    ae.status,
			Error:   ae.kind,
			Message: ae.message,
		},
	}
}

// ErrorHandler writes errors raised outside the operations, such as
// malformed requests, in the same shape as operation errors.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := newError(ctx, err)

	e := new(jx.Encoder)
	res.Response.Encode(e)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = e.WriteTo(w)
}
