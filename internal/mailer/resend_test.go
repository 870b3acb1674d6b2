package mailer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/order"
)

type sentEmail struct {
	From    string
	To      []string
	BCC     []string
	Subject string
	HTML    string
}

func decodeEmail(t *testing.T, body []byte) sentEmail {
	t.Helper()
	var m sentEmail
	list := func(d *jx.Decoder) ([]string, error) {
		var out []string
		err := d.Arr(func(d *jx.Decoder) error {
			s, err := d.Str()
			out = append(out, s)
			return err
		})
		return out, err
	}
	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "from":
			m.From, err = d.Str()
		case "to":
			m.To, err = list(d)
		case "bcc":
			m.BCC, err = list(d)
		case "subject":
			m.Subject, err = d.Str()
		case "html":
			m.HTML, err = d.Str()
		default:
			return d.Skip()
		}
		return err
	})
	require.NoError(t, err)
	return m
}

func testOrder() *order.Order {
	return &order.Order{
		OrderID:     "48213377",
		TotalAmount: decimal.RequireFromString("2150"),
		CreatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Shipping:    order.Shipping{Email: "asha@example.com"},
		Items: []order.Item{
			{ProductName: "Kurta <Blue>", Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
		},
	}
}

func TestResend_SendConfirmation(t *testing.T) {
	var (
		got  sentEmail
		auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = decodeEmail(t, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`)
	}))
	defer srv.Close()

	m, err := NewResend(Config{
		BaseURL:      srv.URL,
		APIKey:       "re_123",
		From:         "Store <orders@example.com>",
		BCC:          []string{"owner@example.com"},
		StoreName:    "Store",
		SupportPhone: "+91 90000 00000",
	})
	require.NoError(t, err)

	require.NoError(t, m.SendConfirmation(context.Background(), testOrder()))

	assert.Equal(t, "Bearer re_123", auth)
	assert.Equal(t, "Store <orders@example.com>", got.From)
	assert.Equal(t, []string{"asha@example.com"}, got.To)
	assert.Equal(t, []string{"owner@example.com"}, got.BCC)
	assert.Equal(t, "Order Confirmation - Order #48213377", got.Subject)
	assert.Contains(t, got.HTML, "Order #48213377")
	assert.Contains(t, got.HTML, "₹2150.00")
	assert.Contains(t, got.HTML, "14 Mar 2026")
	assert.Contains(t, got.HTML, "Kurta &lt;Blue&gt;")
	assert.Contains(t, got.HTML, "Quantity: 2 - Price: ₹1000.00")
	assert.Contains(t, got.HTML, "+91 90000 00000")
}

func TestResend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`)
	}))
	defer srv.Close()

	m, err := NewResend(Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = m.SendConfirmation(context.Background(), testOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send email")
	assert.Contains(t, err.Error(), "Invalid from field")
}

func TestResend_NoEmail(t *testing.T) {
	o := testOrder()
	o.Shipping.Email = ""

	m, err := NewResend(Config{})
	require.NoError(t, err)
	require.Error(t, m.SendConfirmation(context.Background(), o))
}
