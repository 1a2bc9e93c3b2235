package registry

import (
	"context"
	"log/slog"
	"time"
)

// DefaultReapInterval is how often the reaper sweeps the registry.
const DefaultReapInterval = 10 * time.Minute

// Reaper periodically evicts expired finished tasks from a registry.
type Reaper struct {
	registry *Registry
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReaper creates a reaper. interval <= 0 selects DefaultReapInterval.
func NewReaper(registry *Registry, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	return &Reaper{
		registry: registry,
		interval: interval,
	}
}

// Start launches the background sweep loop.
func (r *Reaper) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Task reaper started", "interval", r.interval, "ttl", r.registry.ttl)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Task reaper stopped")
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.registry.Reap(time.Now()); evicted > 0 {
				slog.Info("Task reaper evicted expired tasks", "count", evicted)
			}
		}
	}
}
