package workers

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/event"
	"context"
	"log/slog"
	"time"
)

// EventFanout broadcasts engine events to every registered sink, then hands
// them over to telemetry.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. A slow sink is cut off by sinkTimeout.
type EventFanout struct {
	log           *slog.Logger
	events        chan event.Event
	telemetryChan chan event.Event
	sinks         []contract.EventSink
	sinkTimeout   time.Duration
}

func NewEventFanout(log *slog.Logger,
	events, telemetryChan chan event.Event,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:           log,
		events:        events,
		telemetryChan: telemetryChan,
		sinkTimeout:   sinkTimeout,
	}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
			select {
			case w.telemetryChan <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout One sink for each event
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "type", evt.Type, "error", err)
		}
		cancel()
	}
}
