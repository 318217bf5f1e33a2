package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maramosh/parcial-practico-miguel/internal/config"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
	"github.com/maramosh/parcial-practico-miguel/pkg/nats"
)

// SetupPublisher returns the association event publisher and a function releasing its connection.
// With NATS disabled every event is dropped.
func SetupPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Nats.Enabled {
		logger.Info("NATS disabled, association events will not be published")
		return messaging.NoopPublisher{}, func() {}, nil
	}

	nc, err := nats.NewClient(cfg.Nats.Url, cfg.Nats.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}

	streamCtx, cancel := context.WithTimeout(ctx, cfg.Nats.Timeout)
	defer cancel()
	if _, err := nats.EnsureStream(streamCtx, js, messaging.StreamName, messaging.StreamSubjects); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to prepare JetStream stream: %w", err)
	}
	logger.Info("Connected to NATS", "url", nc.ConnectedUrlRedacted(), "stream", messaging.StreamName)

	publisher := messaging.NewBreakerPublisher(nats.NewNatsPublisher(js), cfg.Publisher.CircuitBreaker)
	return publisher, func() {
		if err := nc.Drain(); err != nil {
			logger.Warn("Failed to drain NATS connection", "error", err)
		}
	}, nil
}
