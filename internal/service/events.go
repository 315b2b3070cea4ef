package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/pkg/logging"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventRatingSubmitted    = "rating_submitted"

	publishTimeout = 5 * time.Second
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, string, any) error { return nil }

type Event struct {
	Type       string             `json:"type"`
	ProducerID uuid.UUID          `json:"producer_id"`
	OrderID    uuid.UUID          `json:"order_id"`
	Status     domain.OrderStatus `json:"status,omitempty"`
	Score      int                `json:"score,omitempty"`
	At         time.Time          `json:"at"`
}

// Events publishes domain events after the owning transaction committed.
// A failed publish is logged and otherwise ignored.
type Events struct {
	Pub   Publisher
	Topic string
}

func (e *Events) emit(ctx context.Context, ev Event) {
	if e == nil || e.Pub == nil {
		return
	}
	ev.At = time.Now().UTC()

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.Pub.PublishEvent(pctx, e.Topic, ev.ProducerID.String(), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
