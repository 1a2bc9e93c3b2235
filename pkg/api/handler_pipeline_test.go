package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/ent"
	"github.com/ohsono/sentiwatch/pkg/alerts"
	"github.com/ohsono/sentiwatch/pkg/failsafe"
	"github.com/ohsono/sentiwatch/pkg/lexicon"
	"github.com/ohsono/sentiwatch/pkg/models"
	"github.com/ohsono/sentiwatch/pkg/pipeline"
	"github.com/ohsono/sentiwatch/pkg/registry"
	"github.com/ohsono/sentiwatch/pkg/source"
)

// stubSource emits a fixed number of generated items per fetch.
type stubSource struct {
	items int
}

func (s *stubSource) Fetch(ctx context.Context, params models.SourceParams) *source.Feed {
	feed := source.NewFeed(1)
	go func() {
		defer feed.Close()
		for i := 0; i < s.items; i++ {
			item := models.RawItem{
				ID:        fmt.Sprintf("t3_%d", i),
				Kind:      models.ItemKindPost,
				Subreddit: params.Subreddit,
				Body:      fmt.Sprintf("campus post number %d", i),
				CreatedAt: time.Now().UTC(),
			}
			if !feed.Emit(ctx, item) {
				feed.Fail(ctx.Err())
				return
			}
		}
	}()
	return feed
}

// memClassStore keeps classifications in memory, keyed by text hash.
type memClassStore struct {
	mu   sync.Mutex
	rows map[string]*ent.Classification
}

func (m *memClassStore) StoreClassification(_ context.Context, item models.NormalizedItem, verdict models.SentimentVerdict) (*ent.Classification, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = make(map[string]*ent.Classification)
	}
	if row, ok := m.rows[item.TextHash]; ok {
		return row, false, nil
	}
	row := &ent.Classification{
		ID:       uuid.New().String(),
		SourceID: item.ID,
		Text:     item.Text,
		TextHash: item.TextHash,
	}
	m.rows[item.TextHash] = row
	return row, true, nil
}

func (m *memClassStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memAlertStore struct {
	mu     sync.Mutex
	stored []models.Alert
}

func (m *memAlertStore) StoreAlert(_ context.Context, a models.Alert) (*ent.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = append(m.stored, a)
	return &ent.Alert{ID: a.ID}, nil
}

// newPipelineServer wires a server around an in-memory orchestrator.
func newPipelineServer(t *testing.T, items int) (*Server, *memClassStore) {
	t.Helper()

	rules, err := alerts.LoadRules("")
	require.NoError(t, err)
	evaluator, err := alerts.NewEvaluator(rules)
	require.NoError(t, err)

	dispatcher := failsafe.New(&scriptedInferrer{err: netErr()}, lexicon.New(), failsafe.DefaultConfig(), nil)
	classStore := &memClassStore{}

	orch := pipeline.New(
		&stubSource{items: items},
		dispatcher,
		classStore,
		&memAlertStore{},
		evaluator,
		registry.New(0),
		nil,
		pipeline.Config{ScratchDir: t.TempDir()},
	)
	t.Cleanup(orch.Stop)

	return NewServer(nil, dispatcher, orch, nil, nil, nil), classStore
}

func submitPipeline(t *testing.T, s *Server, body string) string {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/pipeline/run", body)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp RunAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.PipelineID)
	return resp.PipelineID
}

func getSnapshot(t *testing.T, s *Server, id string) models.PipelineSnapshot {
	t.Helper()
	rec := doJSON(t, s, http.MethodGet, "/pipeline/"+id+"/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.PipelineSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	return snap
}

func TestPipelineRunLifecycle(t *testing.T) {
	s, classStore := newPipelineServer(t, 3)

	id := submitPipeline(t, s, `{"source_params": {"subreddit": "ucla", "post_limit": 3}}`)

	require.Eventually(t, func() bool {
		return getSnapshot(t, s, id).State.Terminal()
	}, 5*time.Second, 10*time.Millisecond)

	snap := getSnapshot(t, s, id)
	assert.Equal(t, models.TaskStateSucceeded, snap.State)
	assert.Equal(t, 100, snap.Progress)
	require.Len(t, snap.Stages, 4)
	for _, stage := range snap.Stages {
		assert.Equal(t, models.TaskStateSucceeded, stage.State, string(stage.Type))
	}
	assert.Equal(t, 3, classStore.count())
}

func TestPipelineRunRejectsBadRequest(t *testing.T) {
	s, _ := newPipelineServer(t, 1)

	rec := doJSON(t, s, http.MethodPost, "/pipeline/run", `{"source_params": {"post_limit": 3}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/pipeline/run",
		`{"source_params": {"subreddit": "ucla"}, "stages": ["compress"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPipelineRunInfoDoesNotSubmit(t *testing.T) {
	s, _ := newPipelineServer(t, 1)

	rec := doJSON(t, s, http.MethodGet, "/pipeline/run", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info PipelineInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, http.MethodPost, info.Method)
	assert.Equal(t, models.DefaultStages, info.DefaultStages)

	rec = doJSON(t, s, http.MethodGet, "/pipeline/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestPipelineStatusUnknownID(t *testing.T) {
	s, _ := newPipelineServer(t, 1)

	rec := doJSON(t, s, http.MethodGet, "/pipeline/nope/status", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/pipeline/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPipelineCancelFinishedReportsFalse(t *testing.T) {
	s, _ := newPipelineServer(t, 1)

	id := submitPipeline(t, s, `{"source_params": {"subreddit": "ucla", "post_limit": 1}}`)
	require.Eventually(t, func() bool {
		return getSnapshot(t, s, id).State == models.TaskStateSucceeded
	}, 5*time.Second, 10*time.Millisecond)

	rec := doJSON(t, s, http.MethodDelete, "/pipeline/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Cancelled)
}

func TestPipelineHistory(t *testing.T) {
	s, _ := newPipelineServer(t, 1)

	id := submitPipeline(t, s, `{"source_params": {"subreddit": "ucla", "post_limit": 1}}`)
	require.Eventually(t, func() bool {
		return getSnapshot(t, s, id).State.Terminal()
	}, 5*time.Second, 10*time.Millisecond)

	rec := doJSON(t, s, http.MethodGet, "/pipeline/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []models.PipelineSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, id, history[0].ID)

	rec = doJSON(t, s, http.MethodGet, "/pipeline/history?since=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
