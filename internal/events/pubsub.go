// Package events publishes order events to a message broker.
package events

import (
	"context"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
)

// OrderCreated is the event type attribute of new order messages.
const OrderCreated = "order.created"

var (
	_ order.EventPublisher = (*PubSub)(nil)
	_ order.EventPublisher = Nop{}
)

// PubSub publishes events to a Google Cloud Pub/Sub topic.
type PubSub struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// NewPubSub connects to the project and prepares a publisher for topic.
func NewPubSub(ctx context.Context, projectID, topicID string) (*PubSub, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}
	return &PubSub{
		client:    client,
		publisher: client.Publisher(topicID),
	}, nil
}

// PublishOrderCreated publishes the order and waits for the broker to
// acknowledge it.
func (p *PubSub) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	msg := &pubsub.Message{
		Data: EncodeOrder(o),
		Attributes: map[string]string{
			"event":       OrderCreated,
			"order_id":    o.OrderID,
			"customer_id": o.CustomerID,
		},
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish order event")
	}

	zctx.From(ctx).Debug("Order event published",
		zap.String("order_id", o.OrderID),
		zap.String("server_id", serverID),
	)
	return nil
}

// Close flushes pending messages and releases the client.
func (p *PubSub) Close() error {
	p.publisher.Stop()
	return p.client.Close()
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishOrderCreated(context.Context, *order.Order) error { return nil }

// EncodeOrder renders the event payload for an order.
func EncodeOrder(o *order.Order) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(o.ID)
	e.FieldStart("orderId")
	e.Str(o.OrderID)
	e.FieldStart("customerId")
	e.Str(o.CustomerID)
	e.FieldStart("status")
	e.Str(string(o.Status))
	e.FieldStart("totalAmount")
	e.Str(o.TotalAmount.String())
	e.FieldStart("gatewayOrderId")
	e.Str(o.GatewayOrderID)
	e.FieldStart("gatewayPaymentId")
	e.Str(o.GatewayPaymentID)
	e.FieldStart("items")
	e.ArrStart()
	for _, it := range o.Items {
		e.ObjStart()
		e.FieldStart("productId")
		e.Str(it.ProductID)
		if it.VariantID != "" {
			e.FieldStart("variantId")
			e.Str(it.VariantID)
		}
		e.FieldStart("quantity")
		e.Int(it.Quantity)
		e.FieldStart("price")
		e.Str(it.UnitPrice.String())
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("createdAt")
	e.Str(o.CreatedAt.UTC().Format(time.RFC3339))
	e.ObjEnd()
	return e.Bytes()
}
