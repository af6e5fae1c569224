package nav

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/explore/internal/domain"
)

// TransitionEvent captures one step of the state machine.
type TransitionEvent struct {
	Intent  Intent
	From    domain.Screen
	To      domain.Screen
	Depth   int
	Outcome Outcome
}

// Observer receives transition events.
type Observer interface {
	ObserveTransition(ctx context.Context, event TransitionEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(context.Context, TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transition events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logObserver) ObserveTransition(ctx context.Context, event TransitionEvent) {
	attrs := []any{
		"intent", event.Intent.String(),
		"from", event.From.Route(),
		"to", event.To.Route(),
		"depth", event.Depth,
	}
	switch {
	case event.Outcome.Fallback:
		o.logger.WarnContext(ctx, "nav_fallback", attrs...)
	case event.Outcome.Ignored:
		o.logger.DebugContext(ctx, "nav_ignored", attrs...)
	case event.Outcome.Suppressed:
		o.logger.InfoContext(ctx, "nav_back_suppressed", attrs...)
	case event.Outcome.Propagate:
		o.logger.InfoContext(ctx, "nav_back_propagated", attrs...)
	default:
		o.logger.InfoContext(ctx, "nav_transition", attrs...)
	}
}
