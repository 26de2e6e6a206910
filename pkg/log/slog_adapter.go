package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes timer events to an slog.Logger.
// Useful for development when you want to see timer events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Ticks are logged at Debug level,
// everything else at Info.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("kind", event.Kind.String()),
		slog.Int("remaining", event.Remaining),
		slog.Int("configured", event.Configured),
	}

	if event.Label != "" {
		attrs = append(attrs, slog.String("label", event.Label))
	}
	if event.IsTransition() {
		attrs = append(attrs,
			slog.String("old_phase", event.OldPhase),
			slog.String("new_phase", event.NewPhase),
		)
	}
	if event.Mode != "" {
		attrs = append(attrs, slog.String("mode", event.Mode))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	level := slog.LevelInfo
	if event.Kind == KindTick {
		level = slog.LevelDebug
	}
	if event.Error != "" {
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "timer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
