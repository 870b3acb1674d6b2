package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/notification"
)

// Service implements the admin inventory actions. Stock is only ever
// changed here, never at checkout.
type Service struct {
	repo   Repository
	events notification.Emitter
}

// NewService creates a product Service.
func NewService(repo Repository, events notification.Emitter) *Service {
	return &Service{repo: repo, events: events}
}

// SetStock replaces the stock quantity and records a stock notification
// when it changed.
func (s *Service) SetStock(ctx context.Context, id string, stock int) (*Product, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Stock == stock {
		return p, nil
	}

	if err := s.repo.SetStock(ctx, id, stock); err != nil {
		return nil, errors.Wrap(err, "set stock")
	}

	s.emit(ctx, notification.TypeStock, notification.StockMessage(p.Name, p.Stock, stock))
	p.Stock = stock
	return p, nil
}

// SetLive publishes or unpublishes a product.
func (s *Service) SetLive(ctx context.Context, id string, live bool) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Live == live {
		return p, nil
	}

	if err := s.repo.SetLive(ctx, id, live); err != nil {
		return nil, errors.Wrap(err, "set live")
	}

	s.emit(ctx, notification.TypeProduct, notification.LiveMessage(p.Name, live))
	p.Live = live
	return p, nil
}

func (s *Service) emit(ctx context.Context, typ notification.Type, msg string) {
	if err := s.events.Emit(ctx, typ, msg); err != nil {
		zctx.From(ctx).Warn("Product notification failed",
			zap.String("type", string(typ)),
			zap.Error(err),
		)
	}
}
