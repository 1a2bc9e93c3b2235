package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/ent"
	"github.com/ohsono/sentiwatch/pkg/alerts"
	"github.com/ohsono/sentiwatch/pkg/models"
	"github.com/ohsono/sentiwatch/pkg/registry"
	"github.com/ohsono/sentiwatch/pkg/source"
)

// replaySource replays scripted items as a feed, optionally slowed per item.
type replaySource struct {
	items []models.RawItem
	err   error
	delay time.Duration
}

func (s *replaySource) Fetch(ctx context.Context, _ models.SourceParams) *source.Feed {
	feed := source.NewFeed(1)
	go func() {
		defer feed.Close()
		for _, item := range s.items {
			if s.delay > 0 {
				select {
				case <-time.After(s.delay):
				case <-ctx.Done():
					feed.Fail(ctx.Err())
					return
				}
			}
			if !feed.Emit(ctx, item) {
				feed.Fail(ctx.Err())
				return
			}
		}
		if s.err != nil {
			feed.Fail(s.err)
		}
	}()
	return feed
}

// fakePredictor always answers with a fixed negative verdict.
type fakePredictor struct {
	calls   atomic.Int64
	verdict models.SentimentVerdict
}

func (p *fakePredictor) Predict(_ context.Context, _, _ string) models.SentimentVerdict {
	p.calls.Add(1)
	return p.verdict
}

// fakeClassStore stores rows in memory, deduplicating on text hash.
type fakeClassStore struct {
	mu      sync.Mutex
	rows    map[string]*ent.Classification
	failAll bool
}

func newFakeClassStore() *fakeClassStore {
	return &fakeClassStore{rows: make(map[string]*ent.Classification)}
}

func (s *fakeClassStore) StoreClassification(_ context.Context, item models.NormalizedItem, _ models.SentimentVerdict) (*ent.Classification, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, false, errors.New("store unreachable")
	}
	if row, ok := s.rows[item.TextHash]; ok {
		return row, false, nil
	}
	row := &ent.Classification{ID: uuid.New().String(), TextHash: item.TextHash, Text: item.Text}
	s.rows[item.TextHash] = row
	return row, true, nil
}

func (s *fakeClassStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// fakeAlertStore records stored alerts.
type fakeAlertStore struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func (s *fakeAlertStore) StoreAlert(_ context.Context, a models.Alert) (*ent.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	return &ent.Alert{ID: a.ID}, nil
}

func (s *fakeAlertStore) snapshot() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Alert(nil), s.alerts...)
}

func testEvaluator(t *testing.T) *alerts.Evaluator {
	rules, err := alerts.LoadRules("")
	require.NoError(t, err)
	e, err := alerts.NewEvaluator(rules)
	require.NoError(t, err)
	return e
}

func post(id, body string) models.RawItem {
	return models.RawItem{
		ID:        id,
		Kind:      models.ItemKindPost,
		Subreddit: "ucla",
		CreatedAt: time.Now().UTC(),
		Body:      body,
	}
}

type fixture struct {
	orch       *Orchestrator
	source     *replaySource
	predictor  *fakePredictor
	classStore *fakeClassStore
	alertStore *fakeAlertStore
	registry   *registry.Registry
}

func newFixture(t *testing.T, src *replaySource, cfg Config) *fixture {
	cfg.ScratchDir = t.TempDir()
	f := &fixture{
		source: src,
		predictor: &fakePredictor{verdict: models.SentimentVerdict{
			Label:      models.LabelNegative,
			Confidence: 0.9,
			Compound:   -0.9,
			Model:      models.LexiconModelName,
			Source:     models.SourceFallback,
		}},
		classStore: newFakeClassStore(),
		alertStore: &fakeAlertStore{},
		registry:   registry.New(0),
	}
	f.orch = New(src, f.predictor, f.classStore, f.alertStore, testEvaluator(t), f.registry, nil, cfg)
	t.Cleanup(f.orch.Stop)
	return f
}

func defaultRequest() models.PipelineRequest {
	return models.PipelineRequest{
		SourceParams: models.SourceParams{Subreddit: "ucla", PostLimit: 100},
		EnableAlerts: true,
	}
}

func waitTerminal(t *testing.T, f *fixture, id string) models.PipelineSnapshot {
	t.Helper()
	var snap models.PipelineSnapshot
	require.Eventually(t, func() bool {
		var ok bool
		snap, ok = f.orch.Snapshot(id)
		return ok && snap.State.Terminal()
	}, 5*time.Second, 5*time.Millisecond)
	return snap
}

func TestPipelineHappyPath(t *testing.T) {
	src := &replaySource{items: []models.RawItem{
		post("a", "great lecture today"),
		post("b", "terrible parking situation"),
		post("c", "the quarter system moves fast"),
	}}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	snap := waitTerminal(t, f, task.ID)
	assert.Equal(t, models.TaskStateSucceeded, snap.State)
	assert.Equal(t, 100, snap.Progress)
	require.Len(t, snap.Stages, 4)

	wantOrder := []models.TaskType{models.TaskTypeScrape, models.TaskTypeProcess, models.TaskTypeClean, models.TaskTypePersist}
	for i, stage := range snap.Stages {
		assert.Equal(t, wantOrder[i], stage.Type)
		assert.Equal(t, models.TaskStateSucceeded, stage.State)
		assert.Equal(t, 100, stage.Progress)
	}

	assert.Equal(t, 3, f.classStore.count())
	assert.EqualValues(t, 3, f.predictor.calls.Load())
}

func TestPipelineDedupsIdenticalText(t *testing.T) {
	src := &replaySource{items: []models.RawItem{
		post("a", "same exact text"),
		post("b", "same exact text"),
	}}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	snap := waitTerminal(t, f, task.ID)
	assert.Equal(t, models.TaskStateSucceeded, snap.State)
	assert.Equal(t, 1, f.classStore.count())
}

func TestPipelineEmitsAlerts(t *testing.T) {
	src := &replaySource{items: []models.RawItem{
		post("a", "I feel hopeless and worthless"),
	}}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)
	waitTerminal(t, f, task.ID)

	emitted := f.alertStore.snapshot()
	require.Len(t, emitted, 1)
	assert.Equal(t, models.AlertKindMentalHealth, emitted[0].Kind)
	assert.Equal(t, models.SeverityHigh, emitted[0].Severity)
	assert.Subset(t, emitted[0].KeywordsMatched, []string{"hopeless", "worthless"})
	assert.NotEmpty(t, emitted[0].ContentID)
}

func TestPipelineSkipsAlertsWhenDisabled(t *testing.T) {
	src := &replaySource{items: []models.RawItem{
		post("a", "I feel hopeless and worthless"),
	}}
	f := newFixture(t, src, Config{})

	req := defaultRequest()
	req.EnableAlerts = false
	task, err := f.orch.Submit(req)
	require.NoError(t, err)
	waitTerminal(t, f, task.ID)

	assert.Empty(t, f.alertStore.snapshot())
	assert.Equal(t, 1, f.classStore.count())
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t, &replaySource{}, Config{})

	_, err := f.orch.Submit(models.PipelineRequest{})
	assert.Error(t, err, "subreddit required when scraping")

	_, err = f.orch.Submit(models.PipelineRequest{
		SourceParams: models.SourceParams{Subreddit: "ucla"},
		Stages:       []models.TaskType{"compress"},
	})
	assert.Error(t, err)

	_, err = f.orch.Submit(models.PipelineRequest{
		SourceParams: models.SourceParams{Subreddit: "ucla"},
		Stages:       []models.TaskType{models.TaskTypePersist, models.TaskTypeScrape},
	})
	assert.Error(t, err, "stages must be in canonical order")
}

func TestScrapeTerminalFailureFailsPipeline(t *testing.T) {
	src := &replaySource{err: errors.New("listing unavailable")}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	snap := waitTerminal(t, f, task.ID)
	assert.Equal(t, models.TaskStateFailed, snap.State)
	require.Len(t, snap.Stages, 4)
	assert.Equal(t, models.TaskStateFailed, snap.Stages[0].State)
	assert.Contains(t, snap.Stages[0].Error, "listing unavailable")
	// Downstream stages never ran.
	for _, stage := range snap.Stages[1:] {
		assert.Equal(t, models.TaskStateCancelled, stage.State)
	}
}

func TestPersistFailsAfterConsecutiveStoreErrors(t *testing.T) {
	var items []models.RawItem
	for i := 0; i < 30; i++ {
		items = append(items, post(fmt.Sprintf("p%d", i), fmt.Sprintf("unique text %d", i)))
	}
	src := &replaySource{items: items}
	f := newFixture(t, src, Config{})
	f.classStore.failAll = true

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	snap := waitTerminal(t, f, task.ID)
	assert.Equal(t, models.TaskStateFailed, snap.State)
	assert.Contains(t, snap.Error, "store unavailable")
}

func TestCancellationReachesTerminalQuickly(t *testing.T) {
	var items []models.RawItem
	for i := 0; i < 1000; i++ {
		items = append(items, post(fmt.Sprintf("p%d", i), fmt.Sprintf("post number %d", i)))
	}
	src := &replaySource{items: items, delay: 5 * time.Millisecond}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	// Let the scrape get going, then cancel.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, f.orch.Cancel(task.ID))

	snap := waitTerminal(t, f, task.ID)
	assert.Equal(t, models.TaskStateCancelled, snap.State)

	// Idempotent: cancelling again still reports true.
	assert.True(t, f.orch.Cancel(task.ID))

	// Nothing moves after cancellation.
	stored := f.classStore.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stored, f.classStore.count())
}

func TestCancelUnknownPipeline(t *testing.T) {
	f := newFixture(t, &replaySource{}, Config{})
	assert.False(t, f.orch.Cancel("nope"))
}

func TestProgressIsMonotonic(t *testing.T) {
	var items []models.RawItem
	for i := 0; i < 50; i++ {
		items = append(items, post(fmt.Sprintf("p%d", i), fmt.Sprintf("post number %d", i)))
	}
	src := &replaySource{items: items, delay: time.Millisecond}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	prev := -1
	require.Eventually(t, func() bool {
		snap, ok := f.orch.Snapshot(task.ID)
		require.True(t, ok)
		require.GreaterOrEqual(t, snap.Progress, prev, "progress must never decrease")
		prev = snap.Progress
		return snap.State.Terminal()
	}, 5*time.Second, 2*time.Millisecond)
	assert.Equal(t, 100, prev)
}

func TestActiveAndHistory(t *testing.T) {
	var items []models.RawItem
	for i := 0; i < 40; i++ {
		items = append(items, post(fmt.Sprintf("p%d", i), fmt.Sprintf("post number %d", i)))
	}
	src := &replaySource{items: items, delay: 2 * time.Millisecond}
	f := newFixture(t, src, Config{})

	task, err := f.orch.Submit(defaultRequest())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(f.orch.Active()) == 1
	}, 2*time.Second, 2*time.Millisecond)

	waitTerminal(t, f, task.ID)
	assert.Empty(t, f.orch.Active())

	history := f.orch.History(time.Time{})
	require.Len(t, history, 1)
	assert.Equal(t, task.ID, history[0].ID)

	assert.Empty(t, f.orch.History(time.Now().Add(time.Hour)))
}

func TestGlobalParallelismBound(t *testing.T) {
	src := &replaySource{
		items: []models.RawItem{post("a", "steady stream of posts")},
		delay: 30 * time.Millisecond,
	}
	f := newFixture(t, src, Config{MaxParallel: 1})

	var ids []string
	for i := 0; i < 3; i++ {
		task, err := f.orch.Submit(defaultRequest())
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		running := f.orch.Active()
		assert.LessOrEqual(t, len(running), 1, "at most one pipeline may run")
		done := 0
		for _, id := range ids {
			if snap, ok := f.orch.Snapshot(id); ok && snap.State.Terminal() {
				done++
			}
		}
		if done == len(ids) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("pipelines did not finish in time")
}
