// Package messaging defines the event publishing contract used by the catalog services.
package messaging

import (
	"context"
)

// Event is a message with a routing subject and a serialized payload.
type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// Publisher delivers events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher drops every event. Used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}
