package workers

import (
	"context"
	"log/slog"
	"time"

	"dmchat/contract"
	"dmchat/domain/event"
)

// EventFanoutWorker broadcasts domain events to in-process consumers: the
// permanent sinks (projections, indexes) plus every sink subscribed to the
// event's topic at delivery time.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. Delivery is at-most-once per sink per
// event; a sink slower than sinkTimeout misses the event and resynchronizes
// through history pulls. EventFanoutWorker is not a message broker.
//
// EventFanoutWorker is safe for concurrent use by multiple goroutines.
type EventFanoutWorker struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	events         chan event.DomainEvent
	sinkTimeout    time.Duration
}

func NewEventFanoutWorker(log *slog.Logger, permanentSinks []contract.EventSink,
	registry contract.IRegistry, events chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanoutWorker {
	return &EventFanoutWorker{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		events:         events,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel is closed")
				return nil
			}
			w.Fanout(evt)
		}
	}
}

// Fanout delivers one event to every current sink of its topic. Each sink
// gets its own goroutine and timeout so one stuck consumer cannot hold back
// the others or the fan-out loop itself.
func (w *EventFanoutWorker) Fanout(evt event.DomainEvent) {
	topicSinks := w.registry.GetSinksForTopic(evt.EventTopic())
	sinks := make([]contract.EventSink, 0, len(w.permanentSinks)+len(topicSinks))
	sinks = append(sinks, w.permanentSinks...)
	sinks = append(sinks, topicSinks...)
	for _, sink := range sinks {
		go func(sink contract.EventSink) {
			ctx, cancel := context.WithTimeout(context.Background(), w.sinkTimeout)
			defer cancel()
			if err := sink.Consume(ctx, evt); err != nil {
				w.log.Debug("Sink dropped event", "topic", evt.EventTopic(), "error", err)
			}
		}(sink)
	}
}
