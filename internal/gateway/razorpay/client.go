// Package razorpay adapts the Razorpay SDK to the payment gateway and
// signature verification interfaces.
package razorpay

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
)

// DefaultBaseURL is the public Razorpay API endpoint.
const DefaultBaseURL = "https://api.razorpay.com"

var (
	_ payment.Gateway         = (*Client)(nil)
	_ order.SignatureVerifier = (*Verifier)(nil)
)

// Config holds the API credentials.
type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
}

// Client creates orders through the Razorpay REST API.
type Client struct {
	api *razorpay.Client
}

// New returns a Client. The transport is instrumented with otelhttp.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	api := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	api.Request.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	api.Request.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return &Client{api: api}
}

type result struct {
	body map[string]interface{}
	err  error
}

// CreateOrder opens a remote order. Amount is in minor units.
func (c *Client) CreateOrder(ctx context.Context, req payment.GatewayOrderRequest) (*payment.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		notes := make(map[string]interface{}, len(req.Notes))
		for k, v := range req.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	// The SDK takes no context; the HTTP client timeout bounds the call.
	done := make(chan result, 1)
	go func() {
		body, err := c.api.Order.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return nil, &payment.GatewayError{Err: ctx.Err()}
	case res = <-done:
	}
	if res.err != nil {
		return nil, &payment.GatewayError{Err: res.err, Description: res.err.Error()}
	}

	o, err := decodeOrder(res.body)
	if err != nil {
		return nil, &payment.GatewayError{Err: errors.Wrap(err, "decode order")}
	}
	return o, nil
}

func decodeOrder(body map[string]interface{}) (*payment.GatewayOrder, error) {
	var o payment.GatewayOrder
	o.ID, _ = body["id"].(string)
	if o.ID == "" {
		return nil, errors.New("missing order id")
	}
	switch v := body["amount"].(type) {
	case float64:
		o.Amount = int64(v)
	case int64:
		o.Amount = v
	case int:
		o.Amount = int64(v)
	}
	o.Currency, _ = body["currency"].(string)
	o.Receipt, _ = body["receipt"].(string)
	o.Status, _ = body["status"].(string)
	return &o, nil
}

// Verifier checks checkout payment signatures: hex HMAC-SHA256 of
// "orderID|paymentID" keyed with the key secret.
type Verifier struct {
	secret string
}

// NewVerifier creates a Verifier for the key secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify reports payment.ErrSignatureMismatch unless signature matches the
// pair.
func (v *Verifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": gatewayPaymentID,
	}
	if signature == "" || !utils.VerifyPaymentSignature(params, strings.ToLower(signature), v.secret) {
		return payment.ErrSignatureMismatch
	}
	return nil
}
