package event

import (
	"chat-dispatch/errors"
	"log/slog"
)

// ChannelCapacityHandler warns when a dispatch queue is close to full,
// since a full queue drops requests.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, lowCapacityThreshold: lowCapacityThreshold}
}

func (h ChannelCapacityHandler) Handle(event Event) {
	if event.Type != ChannelCapacityType {
		return
	}
	payload, ok := event.Payload.(ChannelCapacity)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	if payload.Capacity <= 0 {
		// unbuffered
		return
	}
	capacityLeft := payload.Capacity - payload.Length
	if capacityLeft <= h.lowCapacityThreshold {
		h.log.Warn("dispatch queue almost full",
			"queue", payload.ChannelName, "length", payload.Length, "capacity", payload.Capacity)
	}
}
