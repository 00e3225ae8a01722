package event

import (
	"log/slog"
	"time"
)

// LatencyHandler warns when a request took too long between reception and delivery.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	payload, ok := e.Payload.(MessageDelivered)
	if !ok || payload.ReceivedAt.IsZero() {
		return
	}
	leadTime := e.CreatedAt.Sub(payload.ReceivedAt)

	h.log.Debug("telemetry: dispatch latency",
		"sender", payload.Sender,
		"category", payload.Category.String(),
		"recipients", payload.Recipients,
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high dispatch latency detected", "lead_time", leadTime, "category", payload.Category.String())
	}
}
