package workers

import (
	"chat-dispatch/domain/event"
	"context"
	"log/slog"
	"time"
)

// TelemetryWorker feeds every telemetry event to the handlers and, on each
// tick, logs the running counters.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	telemetryChan  chan event.Event
	handlers       []event.Handler
	counter        *event.Counter
}

func NewTelemetryWorker(log *slog.Logger,
	metricInterval time.Duration,
	telemetryChan chan event.Event,
	counter *event.Counter,
	handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		telemetryChan:  telemetryChan,
		handlers:       handlers,
		counter:        counter,
	}
}

func (w TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case evt := <-w.telemetryChan:
			w.handle(evt)
		case <-ticker.C:
			if w.counter == nil {
				continue
			}
			if snapshot := w.counter.Snapshot(); len(snapshot) > 0 {
				w.log.Info("Chat counters", "counters", snapshot)
			}
		}
	}
}

func (w TelemetryWorker) handle(event event.Event) {
	for _, h := range w.handlers {
		h.Handle(event)
	}
}
