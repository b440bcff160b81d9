// Package events publishes domain events about order activity.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types.
const (
	OrderCreated     = "order.created"
	OrderDeleted     = "order.deleted"
	OrderItemAdded   = "order_item.added"
	OrderItemRemoved = "order_item.removed"
	PaymentSubmitted = "payment.submitted"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func New(eventType string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                        { return nil }
