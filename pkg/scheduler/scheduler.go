// Package scheduler dispatches a preset pipeline on a fixed cadence with
// bounded jitter. A tick is skipped when the previously scheduled pipeline is
// still running, so one schedule never has two pipelines in flight.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// Dispatcher is the orchestrator surface the scheduler submits through.
type Dispatcher interface {
	Submit(req models.PipelineRequest) (models.Task, error)
	Snapshot(id string) (models.PipelineSnapshot, bool)
}

// Config tunes the scheduler.
type Config struct {
	// Interval is the base cadence between dispatches.
	Interval time.Duration

	// JitterFrac spreads each delay uniformly over
	// [Interval*(1-f), Interval*(1+f)]. Must be in [0, 0.5].
	JitterFrac float64

	// Preset is the request submitted at each tick.
	Preset models.PipelineRequest
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", c.Interval)
	}
	if c.JitterFrac < 0 || c.JitterFrac > 0.5 {
		return fmt.Errorf("scheduler jitter_frac must be in [0, 0.5], got %g", c.JitterFrac)
	}
	return nil
}

// Scheduler periodically submits the preset pipeline.
type Scheduler struct {
	dispatcher Dispatcher
	preset     models.PipelineRequest
	jitterFrac float64

	mu       sync.Mutex
	interval time.Duration
	paused   bool
	lastID   string

	reschedule chan struct{}
	cancel     context.CancelFunc
	done       chan struct{}

	ticks     atomic.Int64
	skips     atomic.Int64
	submitted atomic.Int64
}

// New creates a scheduler.
func New(dispatcher Dispatcher, cfg Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{
		dispatcher: dispatcher,
		preset:     cfg.Preset,
		jitterFrac: cfg.JitterFrac,
		interval:   cfg.Interval,
		reschedule: make(chan struct{}, 1),
	}, nil
}

// Start launches the dispatch loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Scheduler started",
		"interval", s.Interval(),
		"jitter_frac", s.jitterFrac,
		"subreddit", s.preset.SourceParams.Subreddit)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Scheduler stopped")
}

// Pause suspends dispatching; ticks still fire but submit nothing.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
	slog.Info("Scheduler paused")
}

// Resume re-enables dispatching.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	slog.Info("Scheduler resumed")
}

// Paused reports whether dispatching is suspended.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Reschedule changes the cadence at runtime and restarts the current wait.
func (s *Scheduler) Reschedule(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", interval)
	}
	s.mu.Lock()
	s.interval = interval
	s.mu.Unlock()

	select {
	case s.reschedule <- struct{}{}:
	default:
	}
	slog.Info("Scheduler rescheduled", "interval", interval)
	return nil
}

// Interval returns the current base cadence.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Stats returns tick, skip, and submission counts.
func (s *Scheduler) Stats() (ticks, skips, submitted int64) {
	return s.ticks.Load(), s.skips.Load(), s.submitted.Load()
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(s.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.reschedule:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.nextDelay())
		case <-timer.C:
			s.tick()
			timer.Reset(s.nextDelay())
		}
	}
}

// tick submits the preset pipeline unless paused or the previous scheduled
// pipeline is still in flight.
func (s *Scheduler) tick() {
	s.ticks.Add(1)

	s.mu.Lock()
	paused := s.paused
	lastID := s.lastID
	s.mu.Unlock()

	if paused {
		return
	}

	if lastID != "" {
		if snap, ok := s.dispatcher.Snapshot(lastID); ok && !snap.State.Terminal() {
			s.skips.Add(1)
			slog.Info("Scheduler tick skipped, previous pipeline still running",
				"pipeline_id", lastID, "state", string(snap.State))
			return
		}
	}

	task, err := s.dispatcher.Submit(s.preset)
	if err != nil {
		slog.Error("Scheduler failed to submit pipeline", "error", err)
		return
	}
	s.submitted.Add(1)

	s.mu.Lock()
	s.lastID = task.ID
	s.mu.Unlock()

	slog.Info("Scheduler dispatched pipeline", "pipeline_id", task.ID)
}

// nextDelay returns the base interval spread by the jitter fraction.
func (s *Scheduler) nextDelay() time.Duration {
	interval := s.Interval()
	if s.jitterFrac <= 0 {
		return interval
	}
	jitter := time.Duration(float64(interval) * s.jitterFrac)
	// Range: [interval - jitter, interval + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return interval - jitter + offset
}
