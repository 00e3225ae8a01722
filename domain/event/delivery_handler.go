package event

import (
	"chat-dispatch/errors"
	"log/slog"
)

// DeliveryHandler counts dispatched, rejected and failed messages per category.
// Useful for observability of the dispatch pipeline.
type DeliveryHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewDeliveryHandler(log *slog.Logger, counter *Counter) *DeliveryHandler {
	return &DeliveryHandler{log: log, counter: counter}
}

func (h *DeliveryHandler) Handle(event Event) {
	switch event.Type {
	case MessageDeliveredType:
		payload, ok := event.Payload.(MessageDelivered)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(string(MessageDeliveredType) + ":" + payload.Category.String())
	case RequestRejectedType:
		payload, ok := event.Payload.(RequestRejected)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(string(RequestRejectedType) + ":" + payload.Reason)
	case DeliveryFailedType, SessionKickedType, FloodMutedType:
		h.counter.Increment(string(event.Type))
	}
}
