// Package pipeline executes pipeline requests as a linear sequence of stages
// (scrape, process, clean, persist), tracked in the task registry. Stages
// within one pipeline run sequentially; pipelines run in parallel up to a
// global semaphore.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ohsono/sentiwatch/ent"
	"github.com/ohsono/sentiwatch/pkg/alerts"
	"github.com/ohsono/sentiwatch/pkg/metrics"
	"github.com/ohsono/sentiwatch/pkg/models"
	"github.com/ohsono/sentiwatch/pkg/registry"
	"github.com/ohsono/sentiwatch/pkg/source"
	"github.com/ohsono/sentiwatch/pkg/store"
)

// Defaults for the orchestrator knobs.
const (
	DefaultMaxParallel           = 4
	DefaultPersistFanout         = 8
	DefaultPostLimit             = 25
	DefaultStoreFailureThreshold = 10
)

// Config tunes the orchestrator.
type Config struct {
	// MaxParallel bounds concurrently running pipelines.
	MaxParallel int64

	// PersistFanout bounds concurrent classify+store calls within one
	// pipeline's persist stage.
	PersistFanout int

	// ScratchDir receives the scrape stage's batch files. Empty selects the
	// OS temp dir.
	ScratchDir string

	// StoreFailureThreshold fails the persist stage after this many
	// consecutive store errors.
	StoreFailureThreshold int

	// DefaultModel is passed to the dispatcher for pipeline items.
	DefaultModel string
}

func (c Config) withDefaults() Config {
	if c.MaxParallel <= 0 {
		c.MaxParallel = DefaultMaxParallel
	}
	if c.PersistFanout <= 0 {
		c.PersistFanout = DefaultPersistFanout
	}
	if c.StoreFailureThreshold <= 0 {
		c.StoreFailureThreshold = DefaultStoreFailureThreshold
	}
	return c
}

// Predictor is the failsafe surface the persist stage classifies through.
type Predictor interface {
	Predict(ctx context.Context, text, modelName string) models.SentimentVerdict
}

// ClassificationWriter persists classified items.
type ClassificationWriter interface {
	StoreClassification(ctx context.Context, item models.NormalizedItem, verdict models.SentimentVerdict) (*ent.Classification, bool, error)
}

// AlertWriter persists emitted alerts.
type AlertWriter interface {
	StoreAlert(ctx context.Context, a models.Alert) (*ent.Alert, error)
}

// Orchestrator submits, runs, and cancels pipelines.
type Orchestrator struct {
	source          source.Source
	predictor       Predictor
	classifications ClassificationWriter
	alertStore      AlertWriter
	evaluator       *alerts.Evaluator
	registry        *registry.Registry
	metrics         *metrics.Metrics
	cfg             Config

	sem *semaphore.Weighted

	// Cancel registry: pipeline_id → cancel function for running pipelines.
	mu     sync.RWMutex
	active map[string]context.CancelFunc

	wg sync.WaitGroup
}

// New creates an orchestrator. m may be nil to disable Prometheus counters.
func New(
	src source.Source,
	predictor Predictor,
	classifications ClassificationWriter,
	alertStore AlertWriter,
	evaluator *alerts.Evaluator,
	reg *registry.Registry,
	m *metrics.Metrics,
	cfg Config,
) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		source:          src,
		predictor:       predictor,
		classifications: classifications,
		alertStore:      alertStore,
		evaluator:       evaluator,
		registry:        reg,
		metrics:         m,
		cfg:             cfg,
		sem:             semaphore.NewWeighted(cfg.MaxParallel),
		active:          make(map[string]context.CancelFunc),
	}
}

// Submit validates the request, records the pipeline and its stage tasks, and
// dispatches execution asynchronously. The returned task is the pipeline in
// pending state.
func (o *Orchestrator) Submit(req models.PipelineRequest) (models.Task, error) {
	stages, err := resolveStages(req.Stages)
	if err != nil {
		return models.Task{}, err
	}
	if stagesContain(stages, models.TaskTypeScrape) {
		if req.SourceParams.Subreddit == "" {
			return models.Task{}, store.NewValidationError("source_params.subreddit", "required")
		}
		if req.SourceParams.PostLimit <= 0 {
			req.SourceParams.PostLimit = DefaultPostLimit
		}
		if req.SourceParams.Sort == "" {
			req.SourceParams.Sort = models.SortHot
		}
	}

	pipeline := o.registry.Create(models.TaskTypePipeline, "")
	stageIDs := make(map[models.TaskType]string, len(stages))
	for _, st := range stages {
		task := o.registry.Create(st, pipeline.ID)
		stageIDs[st] = task.ID
	}

	ctx, cancel := context.WithCancel(context.Background())
	o.mu.Lock()
	o.active[pipeline.ID] = cancel
	o.mu.Unlock()

	o.wg.Add(1)
	go o.run(ctx, pipeline.ID, req, stages, stageIDs)

	slog.Info("Pipeline submitted",
		"pipeline_id", pipeline.ID,
		"subreddit", req.SourceParams.Subreddit,
		"stages", len(stages),
		"enable_alerts", req.EnableAlerts)
	return pipeline, nil
}

// Cancel fires the pipeline's cancellation signal. Idempotent: cancelling an
// already-cancelled pipeline reports true, cancelling a pipeline that reached
// another terminal state reports false.
func (o *Orchestrator) Cancel(id string) bool {
	o.mu.RLock()
	cancel, running := o.active[id]
	o.mu.RUnlock()
	if running {
		cancel()
		return true
	}

	task, ok := o.registry.Get(id)
	return ok && task.State == models.TaskStateCancelled
}

// Snapshot returns the pipeline with its stage tasks in execution order.
func (o *Orchestrator) Snapshot(id string) (models.PipelineSnapshot, bool) {
	task, ok := o.registry.Get(id)
	if !ok || task.Type != models.TaskTypePipeline {
		return models.PipelineSnapshot{}, false
	}
	return o.snapshotOf(task), true
}

// Active returns snapshots of running pipelines.
func (o *Orchestrator) Active() []models.PipelineSnapshot {
	running := o.registry.List(models.TaskFilter{
		Type:  models.TaskTypePipeline,
		State: models.TaskStateRunning,
	})
	out := make([]models.PipelineSnapshot, 0, len(running))
	for _, task := range running {
		out = append(out, o.snapshotOf(task))
	}
	return out
}

// History returns snapshots of all pipelines created at or after since,
// newest first. A zero since returns everything still in the registry.
func (o *Orchestrator) History(since time.Time) []models.PipelineSnapshot {
	tasks := o.registry.List(models.TaskFilter{
		Type:  models.TaskTypePipeline,
		Since: since,
	})
	out := make([]models.PipelineSnapshot, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, o.snapshotOf(task))
	}
	return out
}

// ActiveCount returns the number of pipelines holding a cancel registration.
func (o *Orchestrator) ActiveCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.active)
}

// Stop cancels all running pipelines and waits for them to finish.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	for id, cancel := range o.active {
		slog.Info("Cancelling pipeline for shutdown", "pipeline_id", id)
		cancel()
	}
	o.mu.Unlock()
	o.wg.Wait()
}

func (o *Orchestrator) snapshotOf(task models.Task) models.PipelineSnapshot {
	children := o.registry.List(models.TaskFilter{ParentID: task.ID})
	byType := make(map[models.TaskType]models.Task, len(children))
	for _, child := range children {
		byType[child.Type] = child
	}

	// Stage order is always a subset of the canonical sequence.
	stages := make([]models.Task, 0, len(children))
	for _, st := range models.DefaultStages {
		if child, ok := byType[st]; ok {
			stages = append(stages, child)
		}
	}
	return models.PipelineSnapshot{Task: task, Stages: stages}
}

// resolveStages validates the requested stage list and applies the default
// sequence when empty. Stages must be unique and in canonical order.
func resolveStages(requested []models.TaskType) ([]models.TaskType, error) {
	if len(requested) == 0 {
		return models.DefaultStages, nil
	}

	pos := make(map[models.TaskType]int, len(models.DefaultStages))
	for i, st := range models.DefaultStages {
		pos[st] = i
	}

	prev := -1
	for _, st := range requested {
		p, ok := pos[st]
		if !ok {
			return nil, store.NewValidationError("stages", fmt.Sprintf("unknown stage '%s'", st))
		}
		if p <= prev {
			return nil, store.NewValidationError("stages", "stages must be unique and ordered scrape, process, clean, persist")
		}
		prev = p
	}
	return requested, nil
}

func stagesContain(stages []models.TaskType, st models.TaskType) bool {
	for _, s := range stages {
		if s == st {
			return true
		}
	}
	return false
}
