package observability

import (
	"log/slog"

	"github.com/aretw0/collage/pkg/domain"
)

// LoggingHooks logs every coordinator event at debug level.
func LoggingHooks(logger *slog.Logger) domain.CoordinatorHooks {
	return domain.CoordinatorHooks{
		OnFrameRegistered: func(e *domain.FrameEvent) {
			logger.Debug("frame_registered", "frame_id", e.FrameID)
		},
		OnFrameSwept: func(e *domain.FrameEvent) {
			logger.Debug("frame_swept", "frame_id", e.FrameID)
		},
		OnRoute: func(e *domain.RouteEvent) {
			logger.Debug("route", "op", e.Op, "context", e.Context, "node", e.Node, "failed", e.Failed)
		},
		OnInteraction: func(e *domain.InteractionEvent) {
			logger.Debug("interaction", "context", e.Context, "slot", e.Slot.Name(), "origin", e.Origin.Name())
		},
	}
}

// Combine returns hooks that call each of the given hook sets in order.
func Combine(sets ...domain.CoordinatorHooks) domain.CoordinatorHooks {
	var out domain.CoordinatorHooks
	for _, s := range sets {
		out.OnFrameRegistered = chain(out.OnFrameRegistered, s.OnFrameRegistered)
		out.OnFrameSwept = chain(out.OnFrameSwept, s.OnFrameSwept)
		out.OnRoute = chain(out.OnRoute, s.OnRoute)
		out.OnInteraction = chain(out.OnInteraction, s.OnInteraction)
	}
	return out
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
