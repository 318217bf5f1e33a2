package nats

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const contentTypeHeader = "Content-Type"

// NatsPublisher publishes events to JetStream and waits for the server ack.
// The request id of ctx, if any, travels in the X-Request-Id header.
type NatsPublisher struct {
	js jetstream.JetStream
}

func NewNatsPublisher(js jetstream.JetStream) *NatsPublisher {
	return &NatsPublisher{js: js}
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	msg := nats.NewMsg(event.Subject())
	msg.Data = data
	msg.Header.Set(contentTypeHeader, "application/json")
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		msg.Header.Set(middleware.RequestIDHeader, reqID)
	}
	if _, err = p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Subject(), err)
	}
	return nil
}
