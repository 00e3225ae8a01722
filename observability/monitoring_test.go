package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fixedSessions int

func (f fixedSessions) Len() int { return int(f) }

func TestProcessMonitor_SamplesItself(t *testing.T) {
	req := require.New(t)
	monitor := NewProcessMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), 10*time.Millisecond, fixedSessions(3))
	req.True(monitor.Latest().SampledAt.IsZero())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- monitor.Run(ctx) }()

	req.Eventually(func() bool { return !monitor.Latest().SampledAt.IsZero() }, time.Second, 5*time.Millisecond)
	stats := monitor.Latest()
	req.Equal(3, stats.Sessions)
	req.Positive(stats.Goroutines)

	cancel()
	req.NoError(<-done)
}
