package cache

import (
	"context"
	"log/slog"

	"gamevault/backend/internal/hub"
)

// Invalidator drops the views made stale by a committed mutation and tells
// live subscribers which keys went away.
type Invalidator struct {
	views  Views
	events *hub.Hub
	logger *slog.Logger
}

// NewInvalidator builds an Invalidator. views and events may be nil.
func NewInvalidator(views Views, events *hub.Hub, logger *slog.Logger) *Invalidator {
	if views == nil {
		views = NopViews{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Invalidator{views: views, events: events, logger: logger}
}

// Invalidate runs after the write has committed, so failures are only
// logged. It returns the keys it invalidated.
func (i *Invalidator) Invalidate(ctx context.Context, kind Mutation, ref Ref) []string {
	keys := KeysFor(kind, ref)
	if err := i.views.Invalidate(ctx, keys...); err != nil {
		i.logger.Error("view invalidation failed", "mutation", kind, "keys", keys, "error", err)
	}
	if i.events != nil {
		event := hub.Event{Type: string(kind), Payload: keys}
		if err := i.events.Broadcast(hub.TopicInvalidations, event); err != nil {
			i.logger.Error("invalidation broadcast failed", "mutation", kind, "error", err)
		}
	}
	return keys
}
