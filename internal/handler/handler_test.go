package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/settings"
	"github.com/xenking/storefront/internal/invoice"
)

const testSecret = "test-secret"

var (
	alice = auth.Identity{CustomerID: "alice"}
	bob   = auth.Identity{CustomerID: "bob"}
	admin = auth.Identity{CustomerID: "staff", Admin: true}
)

type testEnv struct {
	db    *memDB
	notes *memNotes
	gw    *mockGateway
	sec   *SecurityHandler
	h     *Handler
	srv   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newMemDB()
	db.putProduct(product.Product{
		ID:           "p1",
		Name:         "Kurta",
		DisplayPrice: "₹1,000.00",
		TaxRate:      decimal.NewFromInt(5),
		Stock:        10,
		Live:         true,
		Variants:     []product.Variant{{ID: "v1", Name: "Blue"}},
	})
	db.putProduct(product.Product{ID: "p2", Name: "Dupatta", DisplayPrice: "₹300", Live: false})

	limit := 1
	db.putCoupon(coupon.Coupon{
		ID:         "c1",
		Code:       "FESTIVE10",
		Type:       pricing.DiscountPercent,
		Value:      decimal.NewFromInt(10),
		ExpiresAt:  time.Now().Add(24 * time.Hour),
		Active:     true,
		UsageLimit: &limit,
	})
	db.putCoupon(coupon.Coupon{
		Code:      "OLD",
		Type:      pricing.DiscountFixed,
		Value:     decimal.NewFromInt(100),
		ExpiresAt: time.Now().Add(-time.Hour),
		Active:    true,
	})

	notes := &memNotes{}
	events := notification.NewService(notes)
	check := coupon.NewRepoValidator(memCoupons{db})
	fees := settings.NewService(&memSettings{}, pricing.Fees{
		StandardDeliveryFee:   decimal.NewFromInt(50),
		FreeDeliveryThreshold: decimal.NewFromInt(2500),
	})
	store := invoice.New(memblob.OpenBucket(nil), "http://store.test/files")
	t.Cleanup(func() { _ = store.Close() })
	gw := &mockGateway{}

	sec := NewSecurityHandler(testSecret)
	h := NewHandler(Deps{
		Carts:         cart.NewService(db, db, check, fees),
		Coupons:       coupon.NewService(memCoupons{db}, events),
		CouponCheck:   check,
		Orders:        order.NewService(db, check, events, fees, order.WithInvoiceStore(store)),
		Payments:      payment.NewService(gw, ""),
		Products:      product.NewService(db, events),
		Notifications: events,
		Addresses:     address.NewService(&memAddresses{}),
		Settings:      fees,
		LiveFeed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(identity(r.Context()).CustomerID))
		}),
		Files: store,
	})

	api, err := oas.NewServer(h, sec,
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(ErrorHandler),
	)
	require.NoError(t, err)

	return &testEnv{db: db, notes: notes, gw: gw, sec: sec, h: h, srv: h.Routes(api, sec)}
}

func (e *testEnv) token(t *testing.T, id auth.Identity) string {
	t.Helper()
	tok, err := e.sec.Sign(id, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, id *auth.Identity, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(t, *id))
	}
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, kind, body["error"])
	assert.EqualValues(t, status, body["code"])
	assert.NotEmpty(t, body["message"])
}

func (e *testEnv) fillCart(t *testing.T, id auth.Identity) {
	t.Helper()
	rec := e.do(t, &id, http.MethodPost, "/api/cart", `{"productId":"p1","variantId":"v1","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

const shippingJSON = `"shipping":{"fullName":"Asha Rao","contactNo":"9876543210","email":"","address":"12 MG Road","city":"Pune","pincode":"411001","country":"India"}`

func finalizeBody(paymentID, total, couponCode string) string {
	return `{"razorpayOrderId":"order_gw1","razorpayPaymentId":"` + paymentID +
		`","totalAmount":` + total + `,"couponCode":"` + couponCode + `",` + shippingJSON + `}`
}

func TestSecurity(t *testing.T) {
	env := newTestEnv(t)

	t.Run("MissingToken", func(t *testing.T) {
		rec := env.do(t, nil, http.MethodGet, "/api/cart", "")
		requireError(t, rec, http.StatusUnauthorized, KindUnauthorized)
	})
	t.Run("ExpiredToken", func(t *testing.T) {
		tok, err := env.sec.Sign(alice, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		requireError(t, rec, http.StatusUnauthorized, KindUnauthorized)
	})
	t.Run("WrongSecret", func(t *testing.T) {
		tok, err := NewSecurityHandler("other").Sign(alice, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		requireError(t, rec, http.StatusUnauthorized, KindUnauthorized)
	})
	t.Run("QueryTokenOnlyForLiveFeed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart?access_token="+env.token(t, alice), nil)
		rec := httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		requireError(t, rec, http.StatusUnauthorized, KindUnauthorized)

		req = httptest.NewRequest(http.MethodGet, "/api/admin/notifications/live?access_token="+env.token(t, admin), nil)
		rec = httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "staff", rec.Body.String())

		req = httptest.NewRequest(http.MethodGet, "/api/admin/notifications/live?access_token="+env.token(t, alice), nil)
		rec = httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		requireError(t, rec, http.StatusForbidden, KindForbidden)
	})
	t.Run("AdminOnly", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodGet, "/api/admin/orders", "")
		requireError(t, rec, http.StatusForbidden, KindForbidden)

		rec = env.do(t, &admin, http.MethodGet, "/api/admin/orders", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("MetadataRole", func(t *testing.T) {
		c := claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		c.Metadata.Role = roleAdmin
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/notifications", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		env.srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleBearerAuth(t *testing.T) {
	sec := NewSecurityHandler(testSecret)
	tok, err := sec.Sign(alice, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	t.Run("Customer", func(t *testing.T) {
		ctx, err := sec.HandleBearerAuth(context.Background(), oas.GetCartOperation, oas.BearerAuth{Token: tok})
		require.NoError(t, err)
		assert.Equal(t, alice, identity(ctx))
	})
	t.Run("AdminRoleRequired", func(t *testing.T) {
		_, err := sec.HandleBearerAuth(context.Background(), oas.ListAllOrdersOperation, oas.BearerAuth{
			Token: tok,
			Roles: []string{roleAdmin},
		})
		require.ErrorIs(t, err, errForbidden)
	})
	t.Run("Garbage", func(t *testing.T) {
		_, err := sec.HandleBearerAuth(context.Background(), oas.GetCartOperation, oas.BearerAuth{Token: "nope"})
		require.ErrorIs(t, err, errUnauthorized)
	})
}

func TestNewError(t *testing.T) {
	h := NewHandler(Deps{})

	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{
			name: "SecurityRequirement",
			err: &ogenerrors.SecurityError{
				Security: "BearerAuth",
				Err:      ogenerrors.ErrSecurityRequirementIsNotSatisfied,
			},
			status: http.StatusUnauthorized,
			kind:   KindUnauthorized,
		},
		{name: "Field", err: &fieldError{Field: "totalAmount"}, status: http.StatusBadRequest, kind: KindValidation},
		{name: "AddressName", err: errors.Wrap(address.ErrDuplicateName, "create"), status: http.StatusConflict, kind: KindValidation},
		{name: "AddressMissing", err: address.ErrNotFound, status: http.StatusNotFound, kind: KindNotFound},
		{name: "SettingsForbidden", err: settings.ErrForbidden, status: http.StatusForbidden, kind: KindForbidden},
		{name: "NegativeFees", err: settings.ErrInvalidFees, status: http.StatusBadRequest, kind: KindValidation},
		{
			name:   "State",
			err:    &order.StateError{OrderID: "123456", From: order.StatusPending, To: order.StatusShipped},
			status: http.StatusConflict,
			kind:   KindInvalidState,
		},
		{name: "NotImplemented", err: ht.ErrNotImplemented, status: http.StatusNotImplemented, kind: KindNotImplemented},
		{name: "Unknown", err: errors.New("pq: connection reset"), status: http.StatusInternalServerError, kind: KindPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.NotNil(t, res)
			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, tt.status, res.Response.Code)
			assert.Equal(t, tt.kind, res.Response.Error)
			assert.NotContains(t, res.Response.Message, "pq:")
		})
	}
}

func TestCart(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	rec := env.do(t, &alice, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeJSON(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "Blue", line["variantName"])
	assert.EqualValues(t, 2, line["quantity"])
	itemID := line["id"].(string)

	t.Run("NotLive", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/cart", `{"productId":"p2"}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("UnknownVariant", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/cart", `{"productId":"p1","variantId":"v9"}`)
		requireError(t, rec, http.StatusNotFound, KindNotFound)
	})
	t.Run("MissingProduct", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/cart", `{"quantity":1}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("BadJSON", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/cart", `{"productId":`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("StringQuantity", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPut, "/api/cart/"+itemID, `{"quantity":"3"}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("ZeroQuantity", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPut, "/api/cart/"+itemID, `{"quantity":0}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("OtherCustomer", func(t *testing.T) {
		rec := env.do(t, &bob, http.MethodPut, "/api/cart/"+itemID, `{"quantity":5}`)
		requireError(t, rec, http.StatusForbidden, KindForbidden)

		rec = env.do(t, &bob, http.MethodDelete, "/api/cart/"+itemID, "")
		requireError(t, rec, http.StatusForbidden, KindForbidden)
	})
	t.Run("Update", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPut, "/api/cart/"+itemID, `{"quantity":3}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		line := decodeJSON(t, rec)["items"].([]any)[0].(map[string]any)
		assert.EqualValues(t, 3, line["quantity"])
	})
	t.Run("Remove", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodDelete, "/api/cart/"+itemID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, &alice, http.MethodDelete, "/api/cart/"+itemID, "")
		requireError(t, rec, http.StatusNotFound, KindNotFound)
	})
}

func quoteTotal(t *testing.T, rec *httptest.ResponseRecorder) decimal.Decimal {
	t.Helper()
	var body struct {
		Quote struct {
			DeliveryFee json.Number `json:"deliveryFee"`
			Total       json.Number `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return decimal.RequireFromString(body.Quote.Total.String())
}

func TestQuoteCart(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	tests := []struct {
		name   string
		body   string
		total  string
		status int
		kind   string
	}{
		{name: "NoCoupon", body: `{}`, total: "2150", status: http.StatusOK},
		{name: "Percent", body: `{"couponCode":"festive10"}`, total: "1950", status: http.StatusOK},
		{name: "Expired", body: `{"couponCode":"OLD"}`, status: http.StatusBadRequest, kind: KindCouponExpired},
		{name: "Unknown", body: `{"couponCode":"NOPE"}`, status: http.StatusBadRequest, kind: KindCouponNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, &alice, http.MethodPost, "/api/cart/quote", tt.body)
			if tt.kind != "" {
				requireError(t, rec, tt.status, tt.kind)
				return
			}
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			total := quoteTotal(t, rec)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(total), "total %s", total)
		})
	}
}

func TestFees(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	rec := env.do(t, nil, http.MethodGet, "/api/settings/fees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"standardDeliveryFee":50,"freeDeliveryThreshold":2500,"freeDeliveryCoupon":true}`, rec.Body.String())

	t.Run("CustomerCannotEdit", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPut, "/api/settings/fees", `{"standardDeliveryFee":0,"freeDeliveryThreshold":0}`)
		requireError(t, rec, http.StatusForbidden, KindForbidden)
	})
	t.Run("Negative", func(t *testing.T) {
		rec := env.do(t, &admin, http.MethodPut, "/api/settings/fees", `{"standardDeliveryFee":-1,"freeDeliveryThreshold":100}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("BadAmount", func(t *testing.T) {
		rec := env.do(t, &admin, http.MethodPut, "/api/settings/fees", `{"standardDeliveryFee":"lots","freeDeliveryThreshold":100}`)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("Update", func(t *testing.T) {
		rec := env.do(t, &admin, http.MethodPut, "/api/settings/fees",
			`{"standardDeliveryFee":"80","freeDeliveryThreshold":1000,"freeDeliveryCoupon":false}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"standardDeliveryFee":80,"freeDeliveryThreshold":1000,"freeDeliveryCoupon":false}`, rec.Body.String())

		rec = env.do(t, nil, http.MethodGet, "/api/settings/fees", "")
		assert.JSONEq(t, `{"standardDeliveryFee":80,"freeDeliveryThreshold":1000,"freeDeliveryCoupon":false}`, rec.Body.String())

		// The cart subtotal now clears the threshold.
		rec = env.do(t, &alice, http.MethodPost, "/api/cart/quote", `{}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decimal.NewFromInt(2100).Equal(quoteTotal(t, rec)), rec.Body.String())
	})
	t.Run("KeepsCouponFlag", func(t *testing.T) {
		rec := env.do(t, &admin, http.MethodPut, "/api/settings/fees", `{"standardDeliveryFee":500,"freeDeliveryThreshold":5000}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, false, decodeJSON(t, rec)["freeDeliveryCoupon"])

		rec = env.do(t, &alice, http.MethodPost, "/api/cart/quote", `{}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decimal.NewFromInt(2600).Equal(quoteTotal(t, rec)), rec.Body.String())
	})
}

func TestFinalizeOrder(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	rec := env.do(t, &alice, http.MethodPost, "/api/orders", finalizeBody("pay_1", "1950", "festive10"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeJSON(t, rec)
	assert.Equal(t, false, body["replayed"])
	assert.Empty(t, body["warnings"])
	created := body["order"].(map[string]any)
	orderID := created["orderId"].(string)
	assert.True(t, order.ValidOrderID(orderID), orderID)
	assert.Equal(t, orderID, body["id"])
	assert.Equal(t, orderID, created["id"])
	assert.Equal(t, "PENDING", created["status"])
	assert.EqualValues(t, 1950, created["totalAmount"])
	assert.EqualValues(t, 200, created["discount"])
	assert.Equal(t, "FESTIVE10", created["couponCode"])
	item := created["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Kurta (Blue)", item["name"])

	t.Run("CartCleared", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodGet, "/api/cart", "")
		assert.Empty(t, decodeJSON(t, rec)["items"])
	})
	t.Run("Notified", func(t *testing.T) {
		assert.Contains(t, env.notes.messages(), notification.OrderCreatedMessage(orderID, decimal.NewFromInt(1950)))
	})
	t.Run("Replay", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/orders", finalizeBody("pay_1", "1950", "festive10"))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeJSON(t, rec)
		assert.Equal(t, true, body["replayed"])
		assert.Equal(t, orderID, body["id"])
		assert.Equal(t, orderID, body["order"].(map[string]any)["orderId"])
	})
	t.Run("ReplayOtherCustomer", func(t *testing.T) {
		rec := env.do(t, &bob, http.MethodPost, "/api/orders", finalizeBody("pay_1", "1950", ""))
		requireError(t, rec, http.StatusForbidden, KindForbidden)
	})
	t.Run("CouponExhausted", func(t *testing.T) {
		env.fillCart(t, bob)
		rec := env.do(t, &bob, http.MethodPost, "/api/orders", finalizeBody("pay_2", "1950", "FESTIVE10"))
		requireError(t, rec, http.StatusBadRequest, KindCouponExhausted)

		rec = env.do(t, &bob, http.MethodGet, "/api/cart", "")
		assert.Len(t, decodeJSON(t, rec)["items"], 1)
	})
	t.Run("EmptyCart", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/orders", finalizeBody("pay_3", "2150", ""))
		requireError(t, rec, http.StatusBadRequest, KindEmptyCart)
	})
	t.Run("Listed", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodGet, "/api/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, orderID, list[0]["orderId"])

		rec = env.do(t, &bob, http.MethodGet, "/api/orders", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
	t.Run("Get", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodGet, "/api/orders/"+orderID, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, &bob, http.MethodGet, "/api/orders/"+orderID, "")
		requireError(t, rec, http.StatusForbidden, KindForbidden)

		rec = env.do(t, &admin, http.MethodGet, "/api/orders/"+orderID, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, &alice, http.MethodGet, "/api/orders/1", "")
		requireError(t, rec, http.StatusNotFound, KindNotFound)
	})
}

// checkoutBody is the body the checkout page posts after payment.
const checkoutBody = `{
	"razorpayOrderId": "order_gw1",
	"razorpayPaymentId": "pay_7",
	"totalAmount": 1950,
	"customerDetails": {
		"fullName": "Asha Rao",
		"contactNo": "9876543210",
		"address": "12 MG Road",
		"city": "Pune",
		"state": "Maharashtra",
		"pincode": "411001",
		"country": "India",
		"email": "asha@example.com"
	},
	"appliedCoupon": {"id": "c1", "code": "FESTIVE10", "discountType": "PERCENT", "value": 10}
}`

func TestFinalizeOrder_CheckoutPayload(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	rec := env.do(t, &alice, http.MethodPost, "/api/orders", checkoutBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeJSON(t, rec)
	id := body["id"].(string)
	created := body["order"].(map[string]any)
	assert.Equal(t, created["orderId"], id)
	assert.Equal(t, "FESTIVE10", created["couponCode"])
	assert.EqualValues(t, 200, created["discount"])
	shipping := created["shipping"].(map[string]any)
	assert.Equal(t, "Maharashtra", shipping["state"])
	assert.Equal(t, "asha@example.com", shipping["email"])

	// The order complete page loads the order by the returned id.
	rec = env.do(t, &alice, http.MethodGet, "/api/orders/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, id, decodeJSON(t, rec)["orderId"])

	t.Run("NullCoupon", func(t *testing.T) {
		env.fillCart(t, bob)
		body := strings.Replace(checkoutBody, `"pay_7"`, `"pay_8"`, 1)
		body = strings.Replace(body, `"totalAmount": 1950`, `"totalAmount": 2150`, 1)
		body = body[:strings.Index(body, `"appliedCoupon"`)] + `"appliedCoupon": null}`

		rec := env.do(t, &bob, http.MethodPost, "/api/orders", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decodeJSON(t, rec)["order"].(map[string]any)
		assert.Nil(t, created["couponCode"])
		assert.EqualValues(t, 0, created["discount"])
	})
}

func TestHandler_FinalizeOrder(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)
	ctx := auth.WithIdentity(context.Background(), alice)

	req := &oas.FinalizeOrderRequest{
		RazorpayOrderId:   "order_gw1",
		RazorpayPaymentId: "pay_1",
		TotalAmount:       oas.NewStringAmount("1950.00"),
		CustomerDetails: oas.NewOptCustomerDetails(oas.CustomerDetails{
			FullName:  "Asha Rao",
			ContactNo: "9876543210",
			Address:   "12 MG Road",
			City:      "Pune",
			Pincode:   "411001",
			Country:   "India",
		}),
		AppliedCoupon: oas.NewOptNilAppliedCoupon(oas.AppliedCoupon{Code: "festive10"}),
	}

	res, err := env.h.FinalizeOrder(ctx, req)
	require.NoError(t, err)
	created, ok := res.(*oas.FinalizeOrderCreated)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, created.Order.OrderId, created.ID)
	assert.Equal(t, "FESTIVE10", created.Order.CouponCode.Or(""))
	assert.Equal(t, oas.OrderStatusPENDING, created.Order.Status)
	assert.NotNil(t, created.Warnings)

	res, err = env.h.FinalizeOrder(ctx, req)
	require.NoError(t, err)
	replayed, ok := res.(*oas.FinalizeOrderOK)
	require.True(t, ok, "got %T", res)
	assert.True(t, replayed.Replayed)
	assert.Equal(t, created.ID, replayed.ID)

	t.Run("CouponCodeWins", func(t *testing.T) {
		env.fillCart(t, bob)
		req := *req
		req.RazorpayPaymentId = "pay_2"
		req.TotalAmount = oas.NewFloat64Amount(2150)
		req.CouponCode = oas.NewOptString("NOPE")
		_, err := env.h.FinalizeOrder(auth.WithIdentity(context.Background(), bob), &req)
		require.ErrorIs(t, err, coupon.ErrNotFound)
	})
	t.Run("BadTotal", func(t *testing.T) {
		req := *req
		req.RazorpayPaymentId = "pay_3"
		req.TotalAmount = oas.NewStringAmount("abc")
		_, err := env.h.FinalizeOrder(ctx, &req)
		var ferr *fieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "totalAmount", ferr.Field)
	})
}

func TestFinalizeOrder_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t, alice)

	tests := []struct {
		name string
		body string
	}{
		{name: "MissingPayment", body: `{"razorpayOrderId":"order_gw1","totalAmount":2150,` + shippingJSON + `}`},
		{name: "MissingShipping", body: `{"razorpayOrderId":"order_gw1","razorpayPaymentId":"pay_1","totalAmount":2150}`},
		{name: "ZeroTotal", body: finalizeBody("pay_1", "0", "")},
		{name: "BadTotal", body: finalizeBody("pay_1", `"abc"`, "")},
		{name: "BadEmail", body: strings.Replace(finalizeBody("pay_1", "2150", ""), `"email":""`, `"email":"nope"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, &alice, http.MethodPost, "/api/orders", tt.body)
			requireError(t, rec, http.StatusBadRequest, KindValidation)
		})
	}

	rec := env.do(t, &alice, http.MethodGet, "/api/cart", "")
	assert.Len(t, decodeJSON(t, rec)["items"], 1, "failed finalization must keep the cart")
}

func (e *testEnv) placeOrder(t *testing.T, id auth.Identity, paymentID string) string {
	t.Helper()
	e.fillCart(t, id)
	rec := e.do(t, &id, http.MethodPost, "/api/orders", finalizeBody(paymentID, "2150", ""))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON(t, rec)["id"].(string)
}

func TestCancelOrder(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.placeOrder(t, alice, "pay_1")
	path := "/api/orders/" + orderID

	rec := env.do(t, &alice, http.MethodPatch, path, `{"cancelDescription":"changed my mind"}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &bob, http.MethodPatch, path, `{"cancelReason":"fraud"}`)
	requireError(t, rec, http.StatusForbidden, KindForbidden)

	rec = env.do(t, &alice, http.MethodPatch, path, `{"cancelReason":"Ordered by mistake","cancelDescription":"changed my mind"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "CANCELLED", body["status"])
	assert.Equal(t, "Ordered by mistake", body["cancelReason"])

	rec = env.do(t, &alice, http.MethodPatch, path, `{"cancelReason":"again"}`)
	requireError(t, rec, http.StatusConflict, KindInvalidState)
}

func TestTransitionOrder(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.placeOrder(t, alice, "pay_1")
	path := "/api/admin/orders/" + orderID + "/status"

	rec := env.do(t, &alice, http.MethodPatch, path, `{"status":"CONFIRMED"}`)
	requireError(t, rec, http.StatusForbidden, KindForbidden)

	rec = env.do(t, &admin, http.MethodPatch, path, `{"status":"LOST"}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	t.Run("SkipRejected", func(t *testing.T) {
		rec := env.do(t, &admin, http.MethodPatch, path, `{"status":"SHIPPED"}`)
		requireError(t, rec, http.StatusConflict, KindInvalidState)

		rec = env.do(t, &alice, http.MethodGet, "/api/orders/"+orderID, "")
		assert.Equal(t, "PENDING", decodeJSON(t, rec)["status"])
	})

	for _, step := range []string{"confirmed", "SHIPPED", "DELIVERED"} {
		rec := env.do(t, &admin, http.MethodPatch, path, `{"status":"`+step+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, "%s: %s", step, rec.Body.String())
		assert.Equal(t, strings.ToUpper(step), decodeJSON(t, rec)["status"])

		if step == "SHIPPED" {
			rec = env.do(t, &admin, http.MethodPatch, path, `{"status":"CONFIRMED"}`)
			requireError(t, rec, http.StatusConflict, KindInvalidState)

			rec = env.do(t, &alice, http.MethodPatch, "/api/orders/"+orderID, `{"cancelReason":"late"}`)
			requireError(t, rec, http.StatusConflict, KindInvalidState)
		}
	}

	rec = env.do(t, &admin, http.MethodPatch, path, `{"status":"CANCELLED"}`)
	requireError(t, rec, http.StatusConflict, KindInvalidState)

	msgs := env.notes.messages()
	assert.Contains(t, msgs, notification.OrderStatusMessage(orderID, "PENDING", "CONFIRMED"))
	assert.Contains(t, msgs, notification.OrderStatusMessage(orderID, "SHIPPED", "DELIVERED"))
}

func TestCreatePaymentOrder(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, &alice, http.MethodPost, "/api/payment/create-order", `{"amount":"2150.50","currency":"INR"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "order_gw1", body["orderId"])
	assert.EqualValues(t, 215050, body["amount"])
	assert.Equal(t, "INR", body["currency"])
	assert.Equal(t, "alice", env.gw.last.Notes["customer_id"])

	rec = env.do(t, &alice, http.MethodPost, "/api/payment/create-order", `{"amount":0}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	env.gw.err = errors.New("connection refused")
	rec = env.do(t, &alice, http.MethodPost, "/api/payment/create-order", `{"amount":10}`)
	requireError(t, rec, http.StatusBadGateway, KindGateway)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCoupons(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, nil, http.MethodPost, "/api/coupons/validate", `{"code":"festive10"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "FESTIVE10", body["code"])
	assert.Equal(t, "PERCENT", body["discountType"])
	assert.Equal(t, true, body["isActive"])

	rec = env.do(t, nil, http.MethodPost, "/api/coupons/validate", `{}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	create := `{"code":"new50","discountType":"fixed","value":50,"expiryDate":"2099-01-01","usageLimit":null}`
	rec = env.do(t, &alice, http.MethodPost, "/api/admin/coupons", create)
	requireError(t, rec, http.StatusForbidden, KindForbidden)

	rec = env.do(t, &admin, http.MethodPost, "/api/admin/coupons", create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body = decodeJSON(t, rec)
	assert.Equal(t, "NEW50", body["code"])
	assert.Nil(t, body["usageLimit"])

	rec = env.do(t, &admin, http.MethodPost, "/api/admin/coupons", create)
	requireError(t, rec, http.StatusConflict, KindValidation)

	rec = env.do(t, &admin, http.MethodPost, "/api/admin/coupons",
		`{"code":"big","discountType":"PERCENT","value":150,"expiryDate":"2099-01-01T00:00:00Z"}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/coupons/new50/active", `{"isActive":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, decodeJSON(t, rec)["isActive"])

	rec = env.do(t, nil, http.MethodPost, "/api/coupons/validate", `{"code":"NEW50"}`)
	requireError(t, rec, http.StatusBadRequest, KindCouponInactive)

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/coupons/missing/active", `{"isActive":true}`)
	requireError(t, rec, http.StatusBadRequest, KindCouponNotFound)
}

func TestProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, &admin, http.MethodPatch, "/api/admin/products/p1/stock", `{"stock":-1}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/products/p1/stock", `{"stock":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 4, decodeJSON(t, rec)["stock"])

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/products/p2/live", `{"isLive":"true"}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/products/p2/live", `{"isLive":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decodeJSON(t, rec)["isLive"])

	rec = env.do(t, &admin, http.MethodPatch, "/api/admin/products/p9/live", `{"isLive":true}`)
	requireError(t, rec, http.StatusNotFound, KindNotFound)

	assert.Contains(t, env.notes.messages(), notification.StockMessage("Kurta", 10, 4))
	assert.Contains(t, env.notes.messages(), notification.LiveMessage("Dupatta", true))
}

const addressJSON = `{"name":"Home","fullName":"Asha Rao","contactNo":"9876543210","address":"12 MG Road",` +
	`"city":"Pune","state":"Maharashtra","pincode":"411001","country":"India","email":"asha@example.com","isDefault":false}`

func TestAddresses(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, &alice, http.MethodPost, "/api/addresses", addressJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	home := decodeJSON(t, rec)
	id := home["id"].(string)
	assert.Equal(t, "Home", home["name"])
	assert.Equal(t, false, home["isDefault"])

	t.Run("DuplicateName", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/addresses", addressJSON)
		requireError(t, rec, http.StatusConflict, KindValidation)
	})
	t.Run("MissingState", func(t *testing.T) {
		rec := env.do(t, &alice, http.MethodPost, "/api/addresses", strings.Replace(addressJSON, `"state":"Maharashtra",`, "", 1))
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("BadEmail", func(t *testing.T) {
		body := strings.NewReplacer(`"Home"`, `"Work"`, `asha@example.com`, `asha`).Replace(addressJSON)
		rec := env.do(t, &alice, http.MethodPost, "/api/addresses", body)
		requireError(t, rec, http.StatusBadRequest, KindValidation)
	})
	t.Run("OtherCustomer", func(t *testing.T) {
		rec := env.do(t, &bob, http.MethodGet, "/api/addresses/"+id, "")
		requireError(t, rec, http.StatusNotFound, KindNotFound)

		rec = env.do(t, &bob, http.MethodGet, "/api/addresses", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
	t.Run("DefaultFirst", func(t *testing.T) {
		body := strings.NewReplacer(`"Home"`, `"Office"`, `"isDefault":false`, `"isDefault":true`).Replace(addressJSON)
		rec := env.do(t, &alice, http.MethodPost, "/api/addresses", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = env.do(t, &alice, http.MethodGet, "/api/addresses", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "Office", list[0]["name"])
		assert.Equal(t, true, list[0]["isDefault"])
	})
	t.Run("Update", func(t *testing.T) {
		body := strings.Replace(addressJSON, `"city":"Pune"`, `"city":"Mumbai"`, 1)
		rec := env.do(t, &alice, http.MethodPut, "/api/addresses/"+id, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Mumbai", decodeJSON(t, rec)["city"])

		rec = env.do(t, &alice, http.MethodGet, "/api/addresses/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Mumbai", decodeJSON(t, rec)["city"])
	})
	t.Run("Delete", func(t *testing.T) {
		rec := env.do(t, &bob, http.MethodDelete, "/api/addresses/"+id, "")
		requireError(t, rec, http.StatusNotFound, KindNotFound)

		rec = env.do(t, &alice, http.MethodDelete, "/api/addresses/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "address deleted", decodeJSON(t, rec)["message"])

		rec = env.do(t, &alice, http.MethodGet, "/api/addresses/"+id, "")
		requireError(t, rec, http.StatusNotFound, KindNotFound)
	})
}

func TestNotifications(t *testing.T) {
	env := newTestEnv(t)
	env.placeOrder(t, alice, "pay_1")
	env.placeOrder(t, bob, "pay_2")

	rec := env.do(t, &admin, http.MethodGet, "/api/admin/notifications?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	newest := list[0]["id"].(string)

	rec = env.do(t, &admin, http.MethodGet, "/api/admin/notifications?limit=x", "")
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &admin, http.MethodPut, "/api/admin/notifications/n-1", `{"action":"pin"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	pinned := decodeJSON(t, rec)
	assert.Equal(t, true, pinned["isPinned"])
	assert.Equal(t, true, pinned["isRead"])

	rec = env.do(t, &admin, http.MethodGet, "/api/admin/notifications", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "n-1", list[0]["id"])
	assert.Equal(t, newest, list[1]["id"])

	rec = env.do(t, &admin, http.MethodPut, "/api/admin/notifications/n-1", `{"action":"archive"}`)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	rec = env.do(t, &admin, http.MethodDelete, "/api/admin/notifications/n-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, &admin, http.MethodDelete, "/api/admin/notifications/n-1", "")
	requireError(t, rec, http.StatusNotFound, KindNotFound)
}

func uploadRequest(t *testing.T, path, contentType, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="invoice"; filename="invoice.pdf"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestInvoice(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.placeOrder(t, alice, "pay_1")
	path := "/api/admin/orders/" + orderID + "/invoice"
	bearer := "Bearer " + env.token(t, admin)

	req := uploadRequest(t, path, "text/plain", "hello")
	req.Header.Set("Authorization", bearer)
	rec := httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	requireError(t, rec, http.StatusBadRequest, KindValidation)

	req = uploadRequest(t, path, "application/pdf", "%PDF-1.4 invoice")
	req.Header.Set("Authorization", bearer)
	rec = httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	url := decodeJSON(t, rec)["invoiceUrl"].(string)
	key, ok := strings.CutPrefix(url, "http://store.test/files/")
	require.True(t, ok, url)
	assert.True(t, strings.HasPrefix(key, "invoices/"+orderID+"/"), key)
	assert.True(t, strings.HasSuffix(key, ".pdf"), key)

	rec = env.do(t, nil, http.MethodGet, "/files/"+key, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4 invoice", rec.Body.String())

	rec = env.do(t, nil, http.MethodGet, "/files/invoices/missing.pdf", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(""))
	req.Header.Set("Authorization", bearer)
	rec = httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	requireError(t, rec, http.StatusBadRequest, KindValidation)
}

func TestExportOrders(t *testing.T) {
	env := newTestEnv(t)
	env.placeOrder(t, alice, "pay_1")

	rec := env.do(t, &admin, http.MethodGet, "/api/admin/orders/export", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment;")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}
