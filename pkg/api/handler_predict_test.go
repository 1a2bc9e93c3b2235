package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/failsafe"
	"github.com/ohsono/sentiwatch/pkg/lexicon"
	"github.com/ohsono/sentiwatch/pkg/model"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// scriptedInferrer simulates the model client for handler tests.
type scriptedInferrer struct {
	mu      sync.Mutex
	verdict models.SentimentVerdict
	err     error
}

func (f *scriptedInferrer) Infer(_ context.Context, _, _ string) (models.SentimentVerdict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.SentimentVerdict{}, f.err
	}
	return f.verdict, nil
}

func (f *scriptedInferrer) Enabled() bool { return true }

func netErr() error {
	return &model.InferError{Kind: model.ErrKindNetwork, Err: errors.New("connection refused")}
}

func newPredictServer(inferrer *scriptedInferrer) *Server {
	dispatcher := failsafe.New(inferrer, lexicon.New(), failsafe.DefaultConfig(), nil)
	return NewServer(nil, dispatcher, nil, nil, nil, nil)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestPredictReturnsModelVerdict(t *testing.T) {
	inferrer := &scriptedInferrer{verdict: models.SentimentVerdict{
		Label:      models.LabelPositive,
		Confidence: 0.92,
		Compound:   0.92,
		Model:      "distilbert",
		Source:     models.SourceModel,
	}}
	s := newPredictServer(inferrer)

	rec := doJSON(t, s, http.MethodPost, "/predict", `{"text": "great lecture today"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.SentimentVerdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.Equal(t, models.LabelPositive, verdict.Label)
	assert.Equal(t, models.SourceModel, verdict.Source)
}

func TestPredictRequiresText(t *testing.T) {
	s := newPredictServer(&scriptedInferrer{})

	rec := doJSON(t, s, http.MethodPost, "/predict", `{"text": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictDegradesToFallbackAndTripsCircuit(t *testing.T) {
	inferrer := &scriptedInferrer{err: netErr()}
	s := newPredictServer(inferrer)

	// First three requests attempt the model, fail, and fall back.
	for i := 0; i < 3; i++ {
		rec := doJSON(t, s, http.MethodPost, "/predict", `{"text": "neutral statement"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var verdict models.SentimentVerdict
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
		assert.Equal(t, models.SourceFallback, verdict.Source)
	}

	rec := doJSON(t, s, http.MethodGet, "/failsafe/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status failsafe.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, failsafe.PhaseOpen, status.Phase)
	assert.Equal(t, int64(3), status.ConsecutiveFailures)

	// The fourth request still gets a verdict, without a model attempt.
	rec = doJSON(t, s, http.MethodPost, "/predict", `{"text": "neutral statement"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.SentimentVerdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.Equal(t, models.SourceFallback, verdict.Source)
}

func TestFailsafeStatusNeverBlocks(t *testing.T) {
	s := newPredictServer(&scriptedInferrer{})

	rec := doJSON(t, s, http.MethodGet, "/failsafe/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status failsafe.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, failsafe.PhaseClosed, status.Phase)
	assert.Zero(t, status.TotalRequests)
}
