package order

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
)

type fixture struct {
	store     *memStore
	coupons   *mockValidator
	events    *recordingEmitter
	mailer    *mockMailer
	publisher *mockPublisher
	svc       *Service
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{
		store:     newMemStore(),
		coupons:   &mockValidator{},
		events:    &recordingEmitter{},
		mailer:    &mockMailer{},
		publisher: &mockPublisher{},
	}
	fees := pricing.Fees{StandardDeliveryFee: decimal.NewFromInt(50), FreeDeliveryThreshold: decimal.NewFromInt(2500)}
	opts = append([]Option{WithMailer(f.mailer), WithPublisher(f.publisher)}, opts...)
	f.svc = NewService(f.store, f.coupons, f.events, fees, opts...)
	return f
}

func validRequest(customerID, paymentID string, total int64) FinalizeRequest {
	return FinalizeRequest{
		CustomerID:       customerID,
		GatewayOrderID:   "order_" + paymentID,
		GatewayPaymentID: paymentID,
		DeclaredTotal:    decimal.NewFromInt(total),
		Shipping: Shipping{
			FullName:  "Asha Rao",
			ContactNo: "9876543210",
			Email:     "asha@example.com",
			Address:   "12 MG Road",
			City:      "Bengaluru",
			Pincode:   "560001",
			Country:   "India",
		},
	}
}

func TestFinalize_CreatesOrderAndClearsCart(t *testing.T) {
	f := newFixture()
	f.store.putCart("cust-1", kurtaLine(2))

	res, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 2150))
	require.NoError(t, err)

	o := res.Order
	assert.False(t, res.Replayed)
	assert.Empty(t, res.Warnings)
	assert.True(t, ValidOrderID(o.OrderID), "order id %q", o.OrderID)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, decimal.NewFromInt(2150).Equal(o.TotalAmount))
	assert.True(t, decimal.NewFromInt(2000).Equal(o.Subtotal))
	assert.True(t, decimal.NewFromInt(100).Equal(o.Tax))
	assert.True(t, decimal.NewFromInt(50).Equal(o.DeliveryFee))
	assert.True(t, decimal.NewFromInt(2150).Equal(o.QuotedTotal))
	assert.Equal(t, "Bengaluru", o.Shipping.City)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "Kurta", o.Items[0].ProductName)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(1000).Equal(o.Items[0].UnitPrice))

	assert.Zero(t, f.store.cartLen("cust-1"))
	assert.Equal(t, 1, f.store.count())
	assert.Equal(t, []string{o.OrderID}, f.mailer.sent)
	assert.Equal(t, []string{o.OrderID}, f.publisher.published)
	require.Len(t, f.events.messages, 1)
	assert.Contains(t, f.events.messages[0], o.OrderID)
}

func TestFinalize_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 100))

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, f.store.count())
	assert.Empty(t, f.events.messages)
	assert.Empty(t, f.mailer.sent)
}

func TestFinalize_ReplaySamePayment(t *testing.T) {
	f := newFixture()
	f.store.putCart("cust-1", kurtaLine(1))
	ctx := context.Background()

	first, err := f.svc.Finalize(ctx, validRequest("cust-1", "pay_1", 1100))
	require.NoError(t, err)

	// The cart is empty now, yet the retry succeeds with the same order.
	second, err := f.svc.Finalize(ctx, validRequest("cust-1", "pay_1", 1100))
	require.NoError(t, err)

	assert.True(t, second.Replayed)
	assert.Equal(t, first.Order.OrderID, second.Order.OrderID)
	assert.Equal(t, 1, f.store.count())
	assert.Len(t, f.mailer.sent, 1)
	assert.Len(t, f.events.messages, 1)
}

func TestFinalize_ReplayOtherCustomer(t *testing.T) {
	f := newFixture()
	f.store.seed(&Order{OrderID: "12345678", CustomerID: "cust-1", GatewayPaymentID: "pay_1"})

	_, err := f.svc.Finalize(context.Background(), validRequest("cust-2", "pay_1", 100))

	require.ErrorIs(t, err, ErrForbidden)
}

func TestFinalize_RetriesOrderIDCollision(t *testing.T) {
	f := newFixture()
	f.store.putCart("cust-1", kurtaLine(1))
	f.store.reserved["11111111"] = true
	f.svc.alloc.next = sequence(11111111, 22222222)

	res, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 1100))

	require.NoError(t, err)
	assert.Equal(t, "22222222", res.Order.OrderID)
	assert.Equal(t, 1, f.store.inserts)
}

func TestFinalize_AllocationExhausted(t *testing.T) {
	t.Run("ExistenceCheck", func(t *testing.T) {
		f := newFixture()
		f.store.putCart("cust-1", kurtaLine(1))
		f.store.seed(&Order{OrderID: "11111111", CustomerID: "someone"})
		f.svc.alloc.next = sequence(11111111)

		_, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 1100))

		require.ErrorIs(t, err, ErrIDAllocationExhausted)
		assert.Equal(t, 1, f.store.cartLen("cust-1"))
	})
	t.Run("Insert", func(t *testing.T) {
		f := newFixture()
		f.store.putCart("cust-1", kurtaLine(1))
		var ids []int64
		for i := range int64(MaxIDAttempts) {
			id := 30_000_000 + i
			ids = append(ids, id)
			f.store.reserved[strconv.FormatInt(id, 10)] = true
		}
		f.svc.alloc.next = sequence(ids...)

		_, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 1100))

		require.ErrorIs(t, err, ErrIDAllocationExhausted)
		assert.Zero(t, f.store.inserts)
		assert.Equal(t, 1, f.store.cartLen("cust-1"))
	})
}

func TestFinalize_EmailFailureIsWarning(t *testing.T) {
	f := newFixture()
	f.mailer.err = errors.New("smtp down")
	f.events.err = errors.New("notifications table gone")
	f.store.putCart("cust-1", kurtaLine(1))

	res, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 1100))

	require.NoError(t, err)
	assert.Equal(t, []string{WarningEmailFailed}, res.Warnings)
	assert.Equal(t, 1, f.store.count())
}

func TestFinalize_NoEmailSkipsMailer(t *testing.T) {
	f := newFixture()
	f.store.putCart("cust-1", kurtaLine(1))
	req := validRequest("cust-1", "pay_1", 1100)
	req.Shipping.Email = ""

	res, err := f.svc.Finalize(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, f.mailer.sent)
}

func TestFinalize_Coupon(t *testing.T) {
	ten := &coupon.Coupon{
		Code:      "TEN",
		Type:      pricing.DiscountPercent,
		Value:     decimal.NewFromInt(10),
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("Applied", func(t *testing.T) {
		f := newFixture()
		f.coupons.coupon = ten
		f.store.putCart("cust-1", kurtaLine(2))
		req := validRequest("cust-1", "pay_1", 1950)
		req.CouponCode = "ten"

		res, err := f.svc.Finalize(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "TEN", res.Order.CouponCode)
		assert.True(t, decimal.NewFromInt(200).Equal(res.Order.Discount))
		assert.True(t, decimal.NewFromInt(1950).Equal(res.Order.QuotedTotal))
		assert.Equal(t, 1, f.store.claimed["TEN"])
	})
	t.Run("Rejected", func(t *testing.T) {
		f := newFixture()
		f.coupons.err = coupon.ErrExpired
		f.store.putCart("cust-1", kurtaLine(2))
		req := validRequest("cust-1", "pay_1", 1950)
		req.CouponCode = "OLD"

		_, err := f.svc.Finalize(context.Background(), req)

		require.ErrorIs(t, err, coupon.ErrExpired)
		assert.Zero(t, f.store.count())
	})
	t.Run("ExhaustedRollsBack", func(t *testing.T) {
		f := newFixture()
		f.coupons.coupon = ten
		f.store.couponUses["TEN"] = 0
		f.store.putCart("cust-1", kurtaLine(2))
		req := validRequest("cust-1", "pay_1", 1950)
		req.CouponCode = "TEN"

		_, err := f.svc.Finalize(context.Background(), req)

		require.ErrorIs(t, err, coupon.ErrExhausted)
		assert.Zero(t, f.store.count())
		assert.Equal(t, 1, f.store.cartLen("cust-1"))
	})
}

func TestFinalize_TotalMismatchKeepsPaidAmount(t *testing.T) {
	f := newFixture()
	f.store.putCart("cust-1", kurtaLine(2))

	res, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 2000))

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2000).Equal(res.Order.TotalAmount))
	assert.True(t, decimal.NewFromInt(2150).Equal(res.Order.QuotedTotal))
}

func TestFinalize_Validation(t *testing.T) {
	for _, tt := range []struct {
		name   string
		mutate func(*FinalizeRequest)
		field  string
	}{
		{"MissingCity", func(r *FinalizeRequest) { r.Shipping.City = "" }, "Shipping.City"},
		{"BadEmail", func(r *FinalizeRequest) { r.Shipping.Email = "not-an-email" }, "Shipping.Email"},
		{"MissingPayment", func(r *FinalizeRequest) { r.GatewayPaymentID = "" }, "GatewayPaymentID"},
		{"ZeroTotal", func(r *FinalizeRequest) { r.DeclaredTotal = decimal.Zero }, "totalAmount"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.putCart("cust-1", kurtaLine(1))
			req := validRequest("cust-1", "pay_1", 1100)
			tt.mutate(&req)

			_, err := f.svc.Finalize(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidRequest)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Zero(t, f.store.count())
		})
	}
}

func TestFinalize_Signature(t *testing.T) {
	f := newFixture(WithSignatureVerifier(&mockVerifier{err: errors.New("mismatch")}))
	f.store.putCart("cust-1", kurtaLine(1))

	_, err := f.svc.Finalize(context.Background(), validRequest("cust-1", "pay_1", 1100))

	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, 1, f.store.cartLen("cust-1"))
}

func TestFinalize_ConcurrentIDsAreDistinct(t *testing.T) {
	const (
		customers = 50
		space     = 1000
		preseeded = 100
	)
	f := newFixture()
	f.svc.alloc.next = func() int64 { return minOrderID + rand.Int64N(space) }

	seeded := make(map[string]bool, preseeded)
	for i := range int64(preseeded) {
		id := strconv.FormatInt(minOrderID+i*(space/preseeded), 10)
		seeded[id] = true
		f.store.seed(&Order{OrderID: id, CustomerID: "old"})
	}
	for i := range customers {
		f.store.putCart(fmt.Sprintf("cust-%d", i), kurtaLine(1))
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]bool, customers)
	)
	for i := range customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := validRequest(fmt.Sprintf("cust-%d", i), fmt.Sprintf("pay_%d", i), 1100)
			res, err := f.svc.Finalize(context.Background(), req)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, ids[res.Order.OrderID], "duplicate id %s", res.Order.OrderID)
			assert.False(t, seeded[res.Order.OrderID], "reused id %s", res.Order.OrderID)
			ids[res.Order.OrderID] = true
		}()
	}
	wg.Wait()

	assert.Len(t, ids, customers)
	assert.Equal(t, customers+preseeded, f.store.count())
}

func seededOrder(f *fixture, status Status) *Order {
	o := &Order{
		OrderID:          "40000001",
		CustomerID:       "cust-1",
		Status:           status,
		GatewayPaymentID: "pay_seed",
	}
	f.store.seed(o)
	return o
}

func TestCancel(t *testing.T) {
	for _, tt := range []struct {
		status Status
		err    error
	}{
		{StatusPending, nil},
		{StatusConfirmed, nil},
		{StatusShipped, ErrInvalidState},
		{StatusDelivered, ErrInvalidState},
		{StatusCancelled, ErrInvalidState},
	} {
		t.Run(string(tt.status), func(t *testing.T) {
			f := newFixture()
			seededOrder(f, tt.status)

			o, err := f.svc.Cancel(context.Background(), CancelRequest{
				CustomerID:  "cust-1",
				OrderID:     "40000001",
				Reason:      "Changed my mind",
				Description: "Ordered the wrong size",
			})

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Empty(t, f.events.messages)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, o.Status)
			assert.Equal(t, "Changed my mind", o.CancelReason)
			require.Len(t, f.events.messages, 1)
			assert.True(t, strings.HasSuffix(f.events.messages[0], "CANCELLED"))
		})
	}
}

func TestCancel_Rejections(t *testing.T) {
	f := newFixture()
	seededOrder(f, StatusPending)
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, CancelRequest{CustomerID: "cust-2", OrderID: "40000001", Reason: "x"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Cancel(ctx, CancelRequest{CustomerID: "cust-1", OrderID: "40000001"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = f.svc.Cancel(ctx, CancelRequest{CustomerID: "cust-1", OrderID: "99999999", Reason: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancel_AlreadyCancelledMessage(t *testing.T) {
	f := newFixture()
	seededOrder(f, StatusCancelled)

	_, err := f.svc.Cancel(context.Background(), CancelRequest{CustomerID: "cust-1", OrderID: "40000001", Reason: "x"})

	require.EqualError(t, err, "order 40000001 is already cancelled")
}

func TestTransitionStatus(t *testing.T) {
	f := newFixture()
	seededOrder(f, StatusPending)
	ctx := context.Background()

	_, err := f.svc.TransitionStatus(ctx, false, "40000001", StatusConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.TransitionStatus(ctx, true, "40000001", "LOST")
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = f.svc.TransitionStatus(ctx, true, "40000001", StatusShipped)
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StatusPending, serr.From)
	assert.Empty(t, f.events.messages)

	o, err := f.svc.TransitionStatus(ctx, true, "40000001", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)

	o, err = f.svc.TransitionStatus(ctx, true, "40000001", StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, []string{
		"Order 40000001 status updated: PENDING → CONFIRMED",
		"Order 40000001 status updated: CONFIRMED → SHIPPED",
	}, f.events.messages)

	_, err = f.svc.TransitionStatus(ctx, true, "40000001", StatusConfirmed)
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StatusShipped, serr.From)

	_, err = f.svc.TransitionStatus(ctx, true, "40000001", StatusCancelled)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestGetAndList(t *testing.T) {
	f := newFixture()
	seededOrder(f, StatusPending)
	ctx := context.Background()

	o, err := f.svc.Get(ctx, "cust-1", false, "40000001")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", o.CustomerID)

	_, err = f.svc.Get(ctx, "cust-2", false, "40000001")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Get(ctx, "cust-2", true, "40000001")
	require.NoError(t, err)

	mine, err := f.svc.ListForCustomer(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.svc.ListAll(ctx, false)
	require.ErrorIs(t, err, ErrForbidden)
	all, err := f.svc.ListAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAttachInvoice(t *testing.T) {
	invoices := &mockInvoices{}
	f := newFixture(WithInvoiceStore(invoices))
	seededOrder(f, StatusConfirmed)
	ctx := context.Background()

	_, err := f.svc.AttachInvoice(ctx, false, "40000001", Invoice{})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.AttachInvoice(ctx, true, "40000001", Invoice{
		Filename:    "invoice.exe",
		ContentType: "application/octet-stream",
		Body:        strings.NewReader("MZ"),
	})
	require.ErrorIs(t, err, ErrInvalidRequest)

	first, err := f.svc.AttachInvoice(ctx, true, "40000001", Invoice{
		Filename:    "invoice.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.7"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(first.InvoiceURL, ".pdf"))
	assert.Equal(t, "%PDF-1.7", invoices.stored[first.InvoiceURL])

	second, err := f.svc.AttachInvoice(ctx, true, "40000001", Invoice{
		Filename:    "scan.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.InvoiceURL, second.InvoiceURL)
	assert.Equal(t, []string{first.InvoiceURL}, invoices.deleted)
}
