package services

import (
	"context"
	"log/slog"

	"github.com/artsfest/scoreboard/live"
)

// Broadcaster is the part of the live hub the services need.
type Broadcaster interface {
	Broadcast(messageType string, payload any)
}

// Notifier recomputes the live payload after a mutation and pushes it to
// connected displays. A nil *Notifier is a no-op, which keeps services
// testable without a hub.
type Notifier struct {
	scoreboard ScoreboardService
	hub        Broadcaster
	logger     *slog.Logger
}

func NewNotifier(scoreboard ScoreboardService, hub Broadcaster, logger *slog.Logger) *Notifier {
	return &Notifier{scoreboard: scoreboard, hub: hub, logger: logger}
}

// ScoreboardChanged pushes a fresh live payload. Failures are logged, never
// propagated: the write that triggered the push has already succeeded, and
// clients fall back to polling.
func (n *Notifier) ScoreboardChanged(ctx context.Context) {
	if n == nil {
		return
	}
	data, err := n.scoreboard.Live(ctx)
	if err != nil {
		n.logger.Error("failed to compute live payload for broadcast", slog.Any("error", err))
		return
	}
	n.hub.Broadcast(live.MessageScoreboardUpdated, data)
}

// SettingsChanged pushes the new settings and, since point values may have
// changed, a fresh scoreboard as well.
func (n *Notifier) SettingsChanged(ctx context.Context, payload any) {
	if n == nil {
		return
	}
	n.hub.Broadcast(live.MessageSettingsUpdated, payload)
	n.ScoreboardChanged(ctx)
}
