package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// fakeDispatcher tracks submissions; pipelines stay running until finished.
type fakeDispatcher struct {
	mu        sync.Mutex
	nextID    int
	running   map[string]bool
	submitted []string
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{running: make(map[string]bool)}
}

func (d *fakeDispatcher) Submit(_ models.PipelineRequest) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := fmt.Sprintf("pipeline-%d", d.nextID)
	d.running[id] = true
	d.submitted = append(d.submitted, id)
	return models.Task{ID: id, Type: models.TaskTypePipeline, State: models.TaskStateRunning}, nil
}

func (d *fakeDispatcher) Snapshot(id string) (models.PipelineSnapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	running, ok := d.running[id]
	if !ok {
		return models.PipelineSnapshot{}, false
	}
	state := models.TaskStateSucceeded
	if running {
		state = models.TaskStateRunning
	}
	return models.PipelineSnapshot{Task: models.Task{ID: id, State: state}}, true
}

func (d *fakeDispatcher) finish(id string) {
	d.mu.Lock()
	d.running[id] = false
	d.mu.Unlock()
}

func (d *fakeDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.submitted)
}

func (d *fakeDispatcher) first() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitted[0]
}

func testConfig(interval time.Duration) Config {
	return Config{
		Interval: interval,
		Preset: models.PipelineRequest{
			SourceParams: models.SourceParams{Subreddit: "ucla", PostLimit: 10},
			EnableAlerts: true,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, Config{Interval: 0}.Validate())
	assert.Error(t, Config{Interval: time.Second, JitterFrac: -0.1}.Validate())
	assert.Error(t, Config{Interval: time.Second, JitterFrac: 0.6}.Validate())
	assert.NoError(t, Config{Interval: time.Second, JitterFrac: 0.5}.Validate())
}

func TestSchedulerSkipsWhileRunning(t *testing.T) {
	d := newFakeDispatcher()
	s, err := New(d, testConfig(10*time.Millisecond))
	require.NoError(t, err)

	s.Start(context.Background())
	defer s.Stop()

	// The first submitted pipeline is pinned as running, so every later tick
	// must skip.
	require.Eventually(t, func() bool { return d.count() == 1 }, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		_, skips, _ := s.Stats()
		return skips >= 3
	}, time.Second, time.Millisecond)
	assert.Equal(t, 1, d.count(), "no overlapping pipeline for one schedule")

	// Once the pipeline finishes, the next tick dispatches again.
	d.finish(d.first())
	require.Eventually(t, func() bool { return d.count() == 2 }, time.Second, time.Millisecond)
}

func TestSchedulerPauseResume(t *testing.T) {
	d := newFakeDispatcher()
	s, err := New(d, testConfig(5*time.Millisecond))
	require.NoError(t, err)

	s.Pause()
	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, d.count(), "paused scheduler must not submit")
	assert.True(t, s.Paused())

	s.Resume()
	require.Eventually(t, func() bool { return d.count() == 1 }, time.Second, time.Millisecond)
}

func TestSchedulerReschedule(t *testing.T) {
	d := newFakeDispatcher()
	s, err := New(d, testConfig(time.Hour))
	require.NoError(t, err)

	s.Start(context.Background())
	defer s.Stop()

	// Nothing fires on the hour-long cadence; rescheduling takes effect
	// immediately.
	require.NoError(t, s.Reschedule(5*time.Millisecond))
	require.Eventually(t, func() bool { return d.count() >= 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, s.Interval())

	assert.Error(t, s.Reschedule(0))
}

func TestSchedulerStopTerminatesLoop(t *testing.T) {
	d := newFakeDispatcher()
	s, err := New(d, testConfig(5*time.Millisecond))
	require.NoError(t, err)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return d.count() >= 1 }, time.Second, time.Millisecond)
	s.Stop()

	n := d.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, d.count(), "no submissions after Stop")
}

func TestJitteredDelayStaysInBounds(t *testing.T) {
	d := newFakeDispatcher()
	s, err := New(d, Config{Interval: 100 * time.Millisecond, JitterFrac: 0.25, Preset: testConfig(time.Second).Preset})
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		delay := s.nextDelay()
		assert.GreaterOrEqual(t, delay, 75*time.Millisecond)
		assert.Less(t, delay, 125*time.Millisecond)
	}
}
