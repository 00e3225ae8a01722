package event

import (
	"chat-dispatch/errors"
	"log/slog"
)

// WorkerRestartedAfterPanicHandler counts supervisor restarts per worker.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, counter *Counter) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{log: log, counter: counter}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	if event.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := event.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	key := string(RestartedAfterPanicType) + ":" + payload.WorkerName
	h.counter.Increment(key)
	h.log.Warn("worker restarted after panic", "worker", payload.WorkerName, "total", h.counter.Get(key))
}
