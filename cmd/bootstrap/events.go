package bootstrap

import (
	"log/slog"

	"hotelier/internal/events"
	"hotelier/internal/pkg/config"
	"hotelier/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when AMQP is not
// configured; event delivery is best effort everywhere it is used.
func NewEventPublisher(cfg config.Config) commands.EventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP not configured, events disabled")
		return events.NewNopPublisher()
	}
	return events.NewAMQPPublisher(cfg.AMQP.URL)
}
