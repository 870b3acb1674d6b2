package notification

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

const defaultListLimit = 100

var _ Emitter = (*Service)(nil)

// Service stores feed entries and fans them out to live sinks.
type Service struct {
	repo  Repository
	sinks []Sink
	now   func() time.Time
}

// NewService creates a Service backed by repo. Every stored notification is
// also passed to each sink.
func NewService(repo Repository, sinks ...Sink) *Service {
	return &Service{repo: repo, sinks: sinks, now: time.Now}
}

// Emit stores a new unread notification. Sinks are only notified once the
// row is written.
func (s *Service) Emit(ctx context.Context, typ Type, message string) error {
	n := &Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Type:      typ,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return errors.Wrap(err, "create notification")
	}
	for _, sink := range s.sinks {
		sink.Broadcast(*n)
	}
	return nil
}

// List returns up to limit entries; a non-positive limit uses the default.
func (s *Service) List(ctx context.Context, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, limit)
}

// Apply performs a feed action on a single entry. Pinning also marks the
// entry as read.
func (s *Service) Apply(ctx context.Context, id string, action Action) (*Notification, error) {
	yes, no := true, false

	var f Flags
	switch action {
	case ActionMarkRead:
		f.Read = &yes
	case ActionMarkUnread:
		f.Read = &no
	case ActionPin:
		f.Pinned = &yes
		f.Read = &yes
	case ActionUnpin:
		f.Pinned = &no
	default:
		return nil, errors.Wrapf(ErrUnknownAction, "%q", action)
	}

	return s.repo.SetFlags(ctx, id, f)
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
