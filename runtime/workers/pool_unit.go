package workers

import (
	"chat-dispatch/contract"
	"chat-dispatch/dispatch"
	"context"
	"log/slog"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PoolUnitWorker)(nil)

// PoolUnitWorker drains one dispatch shard. A sender always lands on the same
// shard, so its requests are applied one after the other, in arrival order.
type PoolUnitWorker struct {
	shard  int
	engine *dispatch.Engine
	jobs   chan dispatch.Job
	log    *slog.Logger
}

func NewPoolUnitWorker(
	shard int,
	engine *dispatch.Engine,
	jobs chan dispatch.Job,
	log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{
		shard:  shard,
		engine: engine,
		jobs:   jobs,
		log:    log,
	}
}

func (w *PoolUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker", "shard", w.shard)
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Channel is closed", "shard", w.shard)
				return nil
			}
			job.Apply(ctx, w.engine)
		}
	}
}
