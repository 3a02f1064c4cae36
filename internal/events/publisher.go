// Package events publishes domain events to RabbitMQ. Errors are logged and
// returned so callers on best-effort paths can ignore failures without
// interrupting the main request flow.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// AMQPPublisher declares a durable queue per topic and publishes persistent
// JSON messages. Connections are per publish; the publisher never panics and
// never blocks the caller beyond the dial timeout.
type AMQPPublisher struct {
	url string
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		slog.Warn("amqp dial failed", "topic", topic, "error", err.Error())
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("amqp channel open failed", "topic", topic, "error", err.Error())
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		slog.Warn("amqp queue declare failed", "topic", topic, "error", err.Error())
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("amqp payload marshal failed", "topic", topic, "error", err.Error())
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", topic, false, false, pub); err != nil {
		slog.Warn("amqp publish failed", "topic", topic, "error", err.Error())
		return err
	}

	return nil
}

// NopPublisher is used when no broker is configured and in tests.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (*NopPublisher) Publish(context.Context, string, any) error {
	return nil
}
