package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/joao-fontenele/storefront-core/internal/clock"
	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// Tracker records page views. Implementations are fire-and-forget from the
// caller's point of view; a returned error is advisory.
type Tracker interface {
	TrackView(ctx context.Context, path string) error
}

type publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// KafkaTracker publishes page-view events through a messaging producer.
type KafkaTracker struct {
	producer publisher
	clock    clock.Clock
	newID    func() string
}

func NewKafkaTracker(producer publisher, clk clock.Clock) *KafkaTracker {
	return &KafkaTracker{
		producer: producer,
		clock:    clk,
		newID:    uuid.NewString,
	}
}

func (t *KafkaTracker) TrackView(ctx context.Context, path string) error {
	event := domain.PageViewEvent{
		EventID:   t.newID(),
		Path:      path,
		Timestamp: t.clock.Now(),
	}
	return t.producer.Publish(ctx, path, event)
}

// NopTracker discards page views. Used when no broker is configured.
type NopTracker struct{}

func (NopTracker) TrackView(context.Context, string) error {
	return nil
}

var (
	_ Tracker = (*KafkaTracker)(nil)
	_ Tracker = NopTracker{}
)
