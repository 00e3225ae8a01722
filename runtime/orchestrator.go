// Package runtime handles request sharding, event propagation and session bookkeeping.
// It orchestrates the system without containing business logic or chat rules.
package runtime

import (
	"chat-dispatch/contract"
	"chat-dispatch/dispatch"
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"chat-dispatch/errors"
	"chat-dispatch/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	engine          *dispatch.Engine
	registry        *Registry
	shards          []chan dispatch.Job
	events          chan event.Event
	telemetryEvents chan event.Event
	sinks           []contract.EventSink
	handlers        []event.Handler
	extraWorkers    []contract.Worker
	counter         *event.Counter
	metricInterval  time.Duration
	sinkTimeout     time.Duration
}

// NewOrchestrator builds numWorkers dispatch shards of bufferSize each.
// events is the channel the engine publishes to, telemetryEvents the one
// telemetry handlers read from.
func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	engine *dispatch.Engine, registry *Registry,
	events, telemetryEvents chan event.Event,
	numWorkers, bufferSize int, metricInterval, sinkTimeout time.Duration) *Orchestrator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	shards := make([]chan dispatch.Job, numWorkers)
	for i := range shards {
		shards[i] = make(chan dispatch.Job, bufferSize)
	}
	return &Orchestrator{
		log:             log,
		supervisor:      supervisor,
		engine:          engine,
		registry:        registry,
		shards:          shards,
		events:          events,
		telemetryEvents: telemetryEvents,
		counter:         event.NewCounter(),
		metricInterval:  metricInterval,
		sinkTimeout:     sinkTimeout,
	}
}

// AddSinks registers sinks receiving every engine event. Must be called before Start.
func (o *Orchestrator) AddSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// AddHandlers registers telemetry handlers. Must be called before Start.
func (o *Orchestrator) AddHandlers(handlers ...event.Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, handlers...)
}

// AddWorkers supervises extra workers next to the dispatch pipeline. Must be called before Start.
func (o *Orchestrator) AddWorkers(workers ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extraWorkers = append(o.extraWorkers, workers...)
}

// Counter exposes the running counters fed by the delivery handler.
func (o *Orchestrator) Counter() *event.Counter { return o.counter }

// Submit queues a job on the shard owning its sender. It never blocks:
// a full shard drops the job and returns ErrShardFull.
func (o *Orchestrator) Submit(job dispatch.Job) error {
	shard := o.shardOf(job.SenderGUID())
	select {
	case o.shards[shard] <- job:
		return nil
	default:
		o.log.Warn(fmt.Sprintf("Dispatch shard %d full, dropping request", shard), "sender", job.SenderGUID())
		return errors.ErrShardFull
	}
}

func (o *Orchestrator) shardOf(sender chat.GUID) int {
	return int(uint64(sender) % uint64(len(o.shards)))
}

// RegisterSession attaches a live connection to a player.
func (o *Orchestrator) RegisterSession(guid chat.GUID, tier chat.Security, session contract.Session) {
	o.registry.Subscribe(guid, tier, session)
}

// UnregisterSession detaches a player's connection without closing it.
func (o *Orchestrator) UnregisterSession(guid chat.GUID, session contract.Session) {
	o.registry.Unsubscribe(guid, session)
}

// Start prepares every worker (dispatch shards, event pipeline, telemetry)
// and then runs the supervisor until ctx is done. It uses a preparation
// pattern to minimize mutex locking time.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	poolWorkers := o.preparePoolWorkers()
	capacityWorker := o.prepareCapacityWorker()

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	fanoutWorker := workers.NewEventFanout(o.log, o.events, o.telemetryEvents, o.sinkTimeout).
		Add(o.sinks...)
	handlers := append([]event.Handler{event.NewDeliveryHandler(o.log, o.counter)}, o.handlers...)
	telemetryWorker := workers.NewTelemetryWorker(o.log, o.metricInterval, o.telemetryEvents, o.counter, handlers)

	o.supervisor.Add(fanoutWorker, telemetryWorker, capacityWorker)
	o.supervisor.Add(poolWorkers...)
	o.supervisor.Add(o.extraWorkers...)
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers", "shards", len(o.shards))
	o.supervisor.Run(ctx)
	return nil
}

// preparePoolWorkers creates one worker per dispatch shard.
func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	res := make([]contract.Worker, 0, len(o.shards))
	for i, shard := range o.shards {
		res = append(res, workers.NewPoolUnitWorker(i, o.engine, shard, o.log))
	}
	return res
}

func (o *Orchestrator) prepareCapacityWorker() contract.Worker {
	channels := make([]workers.NamedChannel, 0, len(o.shards)+1)
	for i, shard := range o.shards {
		channels = append(channels, workers.NamedChannel{Name: fmt.Sprintf("shard-%d", i), Channel: shard})
	}
	channels = append(channels, workers.NamedChannel{Name: "events", Channel: o.events})
	return workers.NewChannelCapacityWorker(o.log, channels, o.telemetryEvents, o.metricInterval)
}

// Stop initiates a graceful shutdown of the orchestrator.
// It cancels the supervision context to signal workers to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
