package event

import (
	"chat-dispatch/domain/chat"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessageDeliveredType    Type = "MESSAGE_DELIVERED"
	RequestRejectedType     Type = "REQUEST_REJECTED"
	DeliveryFailedType      Type = "DELIVERY_FAILED"
	SessionKickedType       Type = "SESSION_KICKED"
	FloodMutedType          Type = "FLOOD_MUTED"
	CensorshipHitType       Type = "CENSORSHIP_HIT"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
)

// Event is the envelope of everything the engine reports to telemetry and sinks.
type Event struct {
	ID        uuid.UUID
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{ID: uuid.New(), Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

// MessageDelivered is emitted once per dispatched request.
type MessageDelivered struct {
	Sender     chat.GUID
	Category   chat.Category
	Language   chat.Language
	Recipients int
	Detected   string
	ReceivedAt time.Time
}

// RequestRejected is emitted when validation or resolution stops a request.
// Silent rejections produced no notice to the sender.
type RequestRejected struct {
	Sender   chat.GUID
	Category chat.Category
	Reason   string
	Silent   bool
}

type DeliveryFailed struct {
	Sender    chat.GUID
	Recipient chat.GUID
	Reason    string
}

type SessionKicked struct {
	Sender chat.GUID
	Reason string
}

// FloodMuted is emitted when the flood counter mutes a sender.
type FloodMuted struct {
	Sender chat.GUID
	Until  time.Time
}

type Censored struct {
	Sender chat.GUID
	Words  []string
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}
