package event

import (
	"chat-dispatch/domain/chat"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDeliveryHandler_CountsPerCategoryAndReason(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewDeliveryHandler(logs.GetLoggerFromLevel(slog.LevelDebug), counter)

	// Given a mixed stream of events
	handler.Handle(New(MessageDeliveredType, MessageDelivered{Sender: 1, Category: chat.Say}))
	handler.Handle(New(MessageDeliveredType, MessageDelivered{Sender: 1, Category: chat.Say}))
	handler.Handle(New(MessageDeliveredType, MessageDelivered{Sender: 2, Category: chat.Guild}))
	handler.Handle(New(RequestRejectedType, RequestRejected{Sender: 1, Reason: "muted"}))
	handler.Handle(New(FloodMutedType, FloodMuted{Sender: 1}))
	handler.Handle(New(MessageDeliveredType, "not a payload"))
	handler.Handle(New(ChannelCapacityType, ChannelCapacity{}))

	// Then counts are split by category and reason
	req.Equal(map[string]uint64{
		"MESSAGE_DELIVERED:say":   2,
		"MESSAGE_DELIVERED:guild": 1,
		"REQUEST_REJECTED:muted":  1,
		"FLOOD_MUTED":             1,
	}, counter.Snapshot())
}

func TestCensoredHandler(t *testing.T) {
	req := require.New(t)
	handler := NewCensoredHandler(logs.GetLoggerFromLevel(slog.LevelDebug))

	handler.Handle(New(CensorshipHitType, Censored{Sender: 1, Words: []string{"merde", "murloc"}}))
	handler.Handle(New(CensorshipHitType, Censored{Sender: 2, Words: []string{"merde"}}))
	handler.Handle(New(CensorshipHitType, "broken"))
	handler.Handle(New(FloodMutedType, FloodMuted{Sender: 1}))

	req.Equal(uint64(2), handler.Hits("merde"))
	req.Equal(uint64(1), handler.Hits("murloc"))
	req.Zero(handler.Hits("kobold"))
	req.Equal(uint64(2), handler.Total())
}

func TestWorkerRestartedAfterPanicHandler(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewWorkerRestartedAfterPanicHandler(logs.GetLoggerFromLevel(slog.LevelDebug), counter)

	handler.Handle(New(RestartedAfterPanicType, WorkerRestartedAfterPanic{WorkerName: "PoolUnitWorker"}))
	handler.Handle(New(RestartedAfterPanicType, WorkerRestartedAfterPanic{WorkerName: "PoolUnitWorker"}))
	handler.Handle(New(MessageDeliveredType, MessageDelivered{}))

	req.Equal(uint64(2), counter.Get("WORKER_RESTARTED_AFTER_PANIC:PoolUnitWorker"))
}

func TestLatencyAndCapacityHandlers_IgnoreForeignEvents(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	latency := NewLatencyHandler(log, time.Millisecond)
	capacity := NewChannelCapacityHandler(log, 2)

	require.NotPanics(t, func() {
		latency.Handle(New(FloodMutedType, FloodMuted{}))
		latency.Handle(New(MessageDeliveredType, MessageDelivered{ReceivedAt: time.Now().Add(-time.Second)}))
		capacity.Handle(New(ChannelCapacityType, "broken"))
		capacity.Handle(New(ChannelCapacityType, ChannelCapacity{ChannelName: "shard-0", Capacity: 0}))
		capacity.Handle(New(ChannelCapacityType, ChannelCapacity{ChannelName: "shard-0", Capacity: 4, Length: 3}))
	})
}

func TestEvent_New(t *testing.T) {
	req := require.New(t)

	a := New(SessionKickedType, SessionKicked{Sender: 1, Reason: "invalid link"})
	b := New(SessionKickedType, SessionKicked{Sender: 1, Reason: "invalid link"})

	req.NotEqual(a.ID, b.ID)
	req.Equal(time.UTC, a.CreatedAt.Location())
}
