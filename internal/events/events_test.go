package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func TestNew(t *testing.T) {
	e := New(OrderCreated, map[string]any{"cpf": "12345678901"})
	if e.ID == "" || e.Type != OrderCreated || e.OccurredAt.IsZero() {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.OccurredAt.Location().String() != "UTC" {
		t.Fatalf("timestamp not UTC: %v", e.OccurredAt)
	}
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "smart-order.events"}
	e := New(PaymentSubmitted, map[string]any{"orderId": "o1", "paymentType": "pix"})

	if err := p.Publish(context.Background(), e); err != nil {
		t.Fatal(err)
	}
	if ch.exchange != "smart-order.events" || ch.key != PaymentSubmitted {
		t.Fatalf("exchange=%q key=%q", ch.exchange, ch.key)
	}
	if ch.msg.DeliveryMode != amqp.Persistent || ch.msg.ContentType != "application/json" || ch.msg.MessageId != e.ID {
		t.Fatalf("unexpected publishing %+v", ch.msg)
	}
	var decoded Event
	if err := json.Unmarshal(ch.msg.Body, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Payload["orderId"] != "o1" {
		t.Fatalf("payload = %v", decoded.Payload)
	}
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "x"}
	if err := p.Publish(context.Background(), New(OrderDeleted, nil)); err == nil {
		t.Fatal("expected error")
	}
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), New(OrderCreated, nil)); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}
