package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ohsono/sentiwatch/pkg/models"
	"github.com/ohsono/sentiwatch/pkg/store"
)

// run executes the pipeline's stages sequentially and drives the registry
// records to a terminal state.
func (o *Orchestrator) run(ctx context.Context, pipelineID string, req models.PipelineRequest, stages []models.TaskType, stageIDs map[models.TaskType]string) {
	defer o.wg.Done()
	defer func() {
		o.mu.Lock()
		if cancel, ok := o.active[pipelineID]; ok {
			cancel()
			delete(o.active, pipelineID)
		}
		o.mu.Unlock()
	}()

	log := slog.With("pipeline_id", pipelineID)

	if err := o.sem.Acquire(ctx, 1); err != nil {
		log.Info("Pipeline cancelled while queued")
		o.markStagesCancelled(stages, stageIDs)
		o.finishPipeline(pipelineID, models.TaskStateCancelled, "cancelled while queued")
		return
	}
	defer o.sem.Release(1)

	if o.metrics != nil {
		o.metrics.ActivePipelines.Inc()
		defer o.metrics.ActivePipelines.Dec()
	}

	started := time.Now().UTC()
	o.registry.Update(pipelineID, func(t *models.Task) {
		t.State = models.TaskStateRunning
		t.StartedAt = &started
	})

	batchPath := filepath.Join(o.scratchDir(), "sentiwatch-batch-"+pipelineID+".jsonl")
	defer os.Remove(batchPath)

	var (
		raw       []models.RawItem
		items     []models.NormalizedItem
		stageErr  error
		cancelled bool
	)

	for i, st := range stages {
		if ctx.Err() != nil {
			cancelled = true
			o.markStagesCancelled(stages[i:], stageIDs)
			break
		}

		stageID := stageIDs[st]
		o.startStage(stageID)

		var err error
		switch st {
		case models.TaskTypeScrape:
			raw, err = o.runScrape(ctx, stageID, req.SourceParams, batchPath)
		case models.TaskTypeProcess:
			items, err = o.runProcess(ctx, stageID, raw)
		case models.TaskTypeClean:
			items = o.runClean(stageID, items)
		case models.TaskTypePersist:
			err = o.runPersist(ctx, stageID, items, req.EnableAlerts)
		}

		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				cancelled = true
				o.finishStage(stageID, models.TaskStateCancelled, "")
				o.markStagesCancelled(stages[i+1:], stageIDs)
			} else {
				stageErr = err
				log.Error("Pipeline stage failed", "stage", string(st), "error", err)
				o.finishStage(stageID, models.TaskStateFailed, err.Error())
				o.markStagesCancelled(stages[i+1:], stageIDs)
			}
			break
		}

		o.finishStage(stageID, models.TaskStateSucceeded, "")
		o.bumpPipelineProgress(pipelineID)
	}
	if !cancelled && ctx.Err() != nil {
		cancelled = true
	}

	switch {
	case cancelled:
		o.finishPipeline(pipelineID, models.TaskStateCancelled, "")
		log.Info("Pipeline cancelled")
	case stageErr != nil:
		o.finishPipeline(pipelineID, models.TaskStateFailed, stageErr.Error())
		log.Warn("Pipeline failed", "error", stageErr)
	default:
		o.finishPipeline(pipelineID, models.TaskStateSucceeded, "")
		log.Info("Pipeline succeeded", "items", len(items))
	}
}

// runScrape drains the content-source feed, buffering every item to the
// batch file. A terminal feed error fails the stage.
func (o *Orchestrator) runScrape(ctx context.Context, stageID string, params models.SourceParams, batchPath string) ([]models.RawItem, error) {
	file, err := os.Create(batchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch file: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)

	// Known work for progress: every post plus its comment allowance.
	expected := params.PostLimit * (1 + params.CommentLimitPerPost)

	feed := o.source.Fetch(ctx, params)
	var items []models.RawItem
	for {
		item, ok := feed.Next()
		if !ok {
			break
		}
		if err := enc.Encode(item); err != nil {
			return nil, fmt.Errorf("failed to buffer item: %w", err)
		}
		items = append(items, item)
		if o.metrics != nil {
			o.metrics.ItemsScraped.Inc()
		}
		o.setStageProgress(stageID, scaled(len(items), expected))

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if err := feed.Err(); err != nil {
		return nil, fmt.Errorf("source failed after %d items: %w", len(items), err)
	}
	return items, nil
}

// runProcess normalizes raw items. Per-item errors are skipped and counted;
// the stage succeeds if at least one item comes out.
func (o *Orchestrator) runProcess(ctx context.Context, stageID string, raw []models.RawItem) ([]models.NormalizedItem, error) {
	out := make([]models.NormalizedItem, 0, len(raw))
	skipped := 0
	for i, item := range raw {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		normalized, err := Normalize(item)
		if err != nil {
			skipped++
			slog.Debug("Skipping item during normalization", "item_id", item.ID, "error", err)
			continue
		}
		out = append(out, normalized)
		o.setStageProgress(stageID, scaled(i+1, len(raw)))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no items produced (%d skipped)", skipped)
	}
	if skipped > 0 {
		slog.Info("Normalization skipped items", "skipped", skipped, "kept", len(out))
	}
	return out, nil
}

// runClean drops duplicate text hashes within the batch. Never fails.
func (o *Orchestrator) runClean(stageID string, items []models.NormalizedItem) []models.NormalizedItem {
	out := dedupe(items)
	if dropped := len(items) - len(out); dropped > 0 {
		slog.Info("Batch dedup dropped items", "dropped", dropped, "kept", len(out))
	}
	o.setStageProgress(stageID, 100)
	return out
}

// runPersist classifies and stores items with bounded fan-out. Per-item
// errors are skipped; the stage fails only after StoreFailureThreshold
// consecutive store errors.
func (o *Orchestrator) runPersist(ctx context.Context, stageID string, items []models.NormalizedItem, enableAlerts bool) error {
	var (
		consecutiveFailures atomic.Int64
		processed           atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.PersistFanout)

	for _, item := range items {
		item := item
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			verdict := o.predictor.Predict(gctx, item.Text, o.cfg.DefaultModel)

			row, inserted, err := o.classifications.StoreClassification(gctx, item, verdict)
			if err != nil {
				n := consecutiveFailures.Add(1)
				if int(n) >= o.cfg.StoreFailureThreshold {
					return fmt.Errorf("store unavailable: %d consecutive write failures: %w", n, err)
				}
				slog.Warn("Skipping item after store error", "item_id", item.ID, "error", err)
				return nil
			}
			consecutiveFailures.Store(0)

			if o.metrics != nil {
				if inserted {
					o.metrics.ItemsPersisted.Inc()
				} else {
					o.metrics.ItemsDeduped.Inc()
				}
			}
			if inserted && enableAlerts {
				o.emitAlerts(gctx, row.ID, item, verdict)
			}

			o.setStageProgress(stageID, scaled(int(processed.Add(1)), len(items)))
			return nil
		})
	}
	return g.Wait()
}

// emitAlerts evaluates the rule set and stores one alert per finding. Alert
// store errors never fail the item.
func (o *Orchestrator) emitAlerts(ctx context.Context, contentID string, item models.NormalizedItem, verdict models.SentimentVerdict) {
	for _, finding := range o.evaluator.Evaluate(item.Text, verdict) {
		alert := models.Alert{
			ID:              uuid.New().String(),
			ContentID:       contentID,
			Kind:            finding.Kind,
			Severity:        finding.Severity,
			KeywordsMatched: finding.Keywords,
		}
		if _, err := o.alertStore.StoreAlert(ctx, alert); err != nil {
			if !errors.Is(err, store.ErrAlreadyExists) {
				slog.Warn("Failed to store alert",
					"content_id", contentID, "kind", string(finding.Kind), "error", err)
			}
			continue
		}
		slog.Info("Alert emitted",
			"content_id", contentID,
			"kind", string(finding.Kind),
			"severity", string(finding.Severity),
			"keywords", finding.Keywords)
		if o.metrics != nil {
			o.metrics.AlertsEmitted.WithLabelValues(string(finding.Kind), string(finding.Severity)).Inc()
		}
	}
}

func (o *Orchestrator) scratchDir() string {
	if o.cfg.ScratchDir != "" {
		return o.cfg.ScratchDir
	}
	return os.TempDir()
}

func (o *Orchestrator) startStage(stageID string) {
	now := time.Now().UTC()
	o.registry.Update(stageID, func(t *models.Task) {
		t.State = models.TaskStateRunning
		t.StartedAt = &now
	})
}

func (o *Orchestrator) finishStage(stageID string, state models.TaskState, errMsg string) {
	now := time.Now().UTC()
	o.registry.Update(stageID, func(t *models.Task) {
		t.State = state
		t.FinishedAt = &now
		t.Error = errMsg
		if state == models.TaskStateSucceeded {
			t.Progress = 100
		}
	})
}

func (o *Orchestrator) markStagesCancelled(stages []models.TaskType, stageIDs map[models.TaskType]string) {
	now := time.Now().UTC()
	for _, st := range stages {
		o.registry.Update(stageIDs[st], func(t *models.Task) {
			if t.State.Terminal() {
				return
			}
			t.State = models.TaskStateCancelled
			t.FinishedAt = &now
		})
	}
}

func (o *Orchestrator) finishPipeline(pipelineID string, state models.TaskState, errMsg string) {
	now := time.Now().UTC()
	o.registry.Update(pipelineID, func(t *models.Task) {
		t.State = state
		t.FinishedAt = &now
		if errMsg != "" {
			t.Error = errMsg
		}
		if state == models.TaskStateSucceeded {
			t.Progress = 100
		}
	})
	if o.metrics != nil {
		o.metrics.PipelinesTotal.WithLabelValues(string(state)).Inc()
	}
}

// setStageProgress raises the stage's progress (never lowers it) and pulls
// the parent pipeline's progress up to the stage mean.
func (o *Orchestrator) setStageProgress(stageID string, progress int) {
	task, ok := o.registry.Update(stageID, func(t *models.Task) {
		if progress > t.Progress {
			t.Progress = progress
		}
	})
	if ok && task.ParentID != "" {
		o.bumpPipelineProgress(task.ParentID)
	}
}

// bumpPipelineProgress recomputes the mean of stage progresses and applies it
// if higher than the current pipeline progress.
func (o *Orchestrator) bumpPipelineProgress(pipelineID string) {
	children := o.registry.List(models.TaskFilter{ParentID: pipelineID})
	if len(children) == 0 {
		return
	}
	sum := 0
	for _, child := range children {
		sum += child.Progress
	}
	mean := sum / len(children)

	o.registry.Update(pipelineID, func(t *models.Task) {
		if mean > t.Progress {
			t.Progress = mean
		}
	})
}

// scaled maps done-of-total onto 0..99; 100 is reserved for stage completion.
func scaled(done, total int) int {
	if total <= 0 {
		return 99
	}
	p := done * 100 / total
	if p > 99 {
		p = 99
	}
	return p
}
