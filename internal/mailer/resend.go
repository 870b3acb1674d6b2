// Package mailer sends transactional email through Resend.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/xenking/storefront/internal/domain/order"
)

// DefaultBaseURL is the public Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com/"

//go:embed templates/*.html
var templates embed.FS

var confirmation = template.Must(template.ParseFS(templates, "templates/confirmation.html"))

var _ order.Mailer = (*Resend)(nil)

// Config holds sender settings.
type Config struct {
	BaseURL      string
	APIKey       string
	From         string
	BCC          []string
	StoreName    string
	SupportPhone string
	Timeout      time.Duration
}

// Resend delivers order confirmations.
type Resend struct {
	cfg    Config
	client *resend.Client
}

// NewResend creates a Resend mailer.
func NewResend(cfg Config) (*Resend, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	// Request paths are resolved relative to the base URL.
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}

	client := resend.NewCustomClient(&http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, cfg.APIKey)
	client.BaseURL = base

	return &Resend{cfg: cfg, client: client}, nil
}

// Message is a single email.
type Message struct {
	To      []string
	BCC     []string
	Subject string
	HTML    string
}

// SendConfirmation emails the order summary to the shipping address email.
func (r *Resend) SendConfirmation(ctx context.Context, o *order.Order) error {
	if o.Shipping.Email == "" {
		return errors.New("order has no email")
	}
	html, err := r.renderConfirmation(o)
	if err != nil {
		return err
	}
	return r.Send(ctx, Message{
		To:      []string{o.Shipping.Email},
		BCC:     r.cfg.BCC,
		Subject: "Order Confirmation - Order #" + o.OrderID,
		HTML:    html,
	})
}

type confirmationItem struct {
	Name     string
	Quantity int
	Price    string
}

func (r *Resend) renderConfirmation(o *order.Order) (string, error) {
	data := struct {
		OrderID      string
		Total        string
		Date         string
		Items        []confirmationItem
		StoreName    string
		SupportPhone string
	}{
		OrderID:      o.OrderID,
		Total:        o.TotalAmount.StringFixed(2),
		Date:         o.CreatedAt.Format("02 Jan 2006"),
		StoreName:    r.cfg.StoreName,
		SupportPhone: r.cfg.SupportPhone,
	}
	for _, it := range o.Items {
		data.Items = append(data.Items, confirmationItem{
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Price:    it.UnitPrice.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := confirmation.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render confirmation")
	}
	return buf.String(), nil
}

// Send posts a message to the API.
func (r *Resend) Send(ctx context.Context, m Message) error {
	req := &resend.SendEmailRequest{
		From:    r.cfg.From,
		To:      m.To,
		Bcc:     m.BCC,
		Subject: m.Subject,
		Html:    m.HTML,
	}
	if _, err := r.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Wrap(err, "send email")
	}
	return nil
}
