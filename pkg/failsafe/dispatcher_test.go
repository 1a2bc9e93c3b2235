package failsafe

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/lexicon"
	"github.com/ohsono/sentiwatch/pkg/metrics"
	"github.com/ohsono/sentiwatch/pkg/model"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// fakeInferrer scripts model-client behavior for circuit tests.
type fakeInferrer struct {
	mu      sync.Mutex
	calls   atomic.Int64
	err     error
	verdict models.SentimentVerdict
	block   chan struct{} // when set, Infer blocks until closed
}

func (f *fakeInferrer) Infer(ctx context.Context, text, modelName string) (models.SentimentVerdict, error) {
	f.calls.Add(1)
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return models.SentimentVerdict{}, &model.InferError{Kind: model.ErrKindTimeout, Err: ctx.Err()}
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.SentimentVerdict{}, f.err
	}
	return f.verdict, nil
}

func (f *fakeInferrer) Enabled() bool { return true }

func (f *fakeInferrer) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func modelVerdict() models.SentimentVerdict {
	return models.SentimentVerdict{
		Label:      models.LabelPositive,
		Confidence: 0.94,
		Compound:   0.94,
		Model:      "distilbert",
		Source:     models.SourceModel,
	}
}

func netErr() error {
	return &model.InferError{Kind: model.ErrKindNetwork, Err: errors.New("connection refused")}
}

func newDispatcher(f *fakeInferrer, cfg Config) *Dispatcher {
	return New(f, lexicon.New(), cfg, nil)
}

func TestPredictModelSuccess(t *testing.T) {
	f := &fakeInferrer{verdict: modelVerdict()}
	d := newDispatcher(f, DefaultConfig())

	v := d.Predict(context.Background(), "UCLA is amazing for AI research!", "")
	assert.Equal(t, models.SourceModel, v.Source)
	assert.Equal(t, "distilbert", v.Model)

	st := d.Status()
	assert.Equal(t, PhaseClosed, st.Phase)
	assert.EqualValues(t, 1, st.TotalRequests)
	assert.EqualValues(t, 1, st.ModelSuccesses)
	assert.EqualValues(t, 0, st.FallbackUses)
}

func TestPredictAlwaysReturnsVerdict(t *testing.T) {
	f := &fakeInferrer{err: netErr()}
	d := newDispatcher(f, DefaultConfig())

	for i := 0; i < 20; i++ {
		v := d.Predict(context.Background(), "neutral statement", "")
		assert.Equal(t, models.SourceFallback, v.Source)
		assert.Equal(t, models.LexiconModelName, v.Model)
	}
}

func TestCircuitOpensAfterMaxConsecutiveFailures(t *testing.T) {
	f := &fakeInferrer{err: netErr()}
	d := newDispatcher(f, DefaultConfig())

	// First three calls attempt the model and fail.
	for i := 0; i < 3; i++ {
		v := d.Predict(context.Background(), "neutral statement", "")
		assert.Equal(t, models.SourceFallback, v.Source)
	}
	require.EqualValues(t, 3, f.calls.Load())

	st := d.Status()
	assert.Equal(t, PhaseOpen, st.Phase)
	assert.EqualValues(t, 3, st.ConsecutiveFailures)
	require.NotNil(t, st.OpenedAt)

	// Fourth call must not touch the model client.
	v := d.Predict(context.Background(), "neutral statement", "")
	assert.Equal(t, models.SourceFallback, v.Source)
	assert.EqualValues(t, 3, f.calls.Load())
}

func TestHalfOpenProbeRecovery(t *testing.T) {
	f := &fakeInferrer{err: netErr()}
	d := newDispatcher(f, Config{MaxFailures: 3, Window: 5 * time.Minute, Cooldown: 10 * time.Millisecond})

	for i := 0; i < 3; i++ {
		d.Predict(context.Background(), "x", "")
	}
	require.Equal(t, PhaseOpen, d.Phase())

	time.Sleep(20 * time.Millisecond)
	f.setErr(nil)
	f.mu.Lock()
	f.verdict = modelVerdict()
	f.mu.Unlock()

	v := d.Predict(context.Background(), "x", "")
	assert.Equal(t, models.SourceModel, v.Source)
	assert.Equal(t, PhaseClosed, d.Phase())
	assert.EqualValues(t, 0, d.Status().ConsecutiveFailures)
}

func TestHalfOpenProbeFailureReopens(t *testing.T) {
	f := &fakeInferrer{err: netErr()}
	d := newDispatcher(f, Config{MaxFailures: 3, Window: 5 * time.Minute, Cooldown: 10 * time.Millisecond})

	for i := 0; i < 3; i++ {
		d.Predict(context.Background(), "x", "")
	}
	require.Equal(t, PhaseOpen, d.Phase())
	calls := f.calls.Load()

	time.Sleep(20 * time.Millisecond)

	// Probe runs, fails, and the circuit reopens with a fresh cooldown.
	d.Predict(context.Background(), "x", "")
	assert.Equal(t, PhaseOpen, d.Phase())
	assert.EqualValues(t, calls+1, f.calls.Load())

	// Immediately after the failed probe, no further model calls.
	d.Predict(context.Background(), "x", "")
	assert.EqualValues(t, calls+1, f.calls.Load())
}

func TestHalfOpenAdmitsSingleProbe(t *testing.T) {
	block := make(chan struct{})
	f := &fakeInferrer{err: netErr()}
	d := newDispatcher(f, Config{MaxFailures: 3, Window: 5 * time.Minute, Cooldown: 5 * time.Millisecond})

	for i := 0; i < 3; i++ {
		d.Predict(context.Background(), "x", "")
	}
	require.Equal(t, PhaseOpen, d.Phase())
	time.Sleep(10 * time.Millisecond)

	// Make the probe hang so concurrent callers hit half_open with a probe
	// already in flight.
	f.setErr(nil)
	f.mu.Lock()
	f.verdict = modelVerdict()
	f.block = block
	f.mu.Unlock()
	callsBefore := f.calls.Load()

	var wg sync.WaitGroup
	results := make([]models.VerdictSource, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Predict(context.Background(), "x", "").Source
		}(i)
	}

	// Give the goroutines time to enter, then release the probe.
	time.Sleep(50 * time.Millisecond)
	close(block)
	wg.Wait()

	modelCount := 0
	for _, src := range results {
		if src == models.SourceModel {
			modelCount++
		}
	}
	assert.Equal(t, 1, modelCount, "exactly one half-open probe may reach the model")
	assert.EqualValues(t, callsBefore+1, f.calls.Load())
	assert.Equal(t, PhaseClosed, d.Phase())
}

func TestCircuitOpensOnWindowedFailures(t *testing.T) {
	f := &fakeInferrer{verdict: modelVerdict()}
	d := newDispatcher(f, DefaultConfig())

	// Intermittent failures: fail, succeed, fail, succeed, fail. Successes
	// reset the consecutive streak but not the window, so the third windowed
	// failure opens the circuit.
	for i := 0; i < 2; i++ {
		f.setErr(netErr())
		d.Predict(context.Background(), "x", "")
		require.Equal(t, PhaseClosed, d.Phase())

		f.setErr(nil)
		d.Predict(context.Background(), "x", "")
		require.EqualValues(t, 0, d.Status().ConsecutiveFailures)
	}

	f.setErr(netErr())
	d.Predict(context.Background(), "x", "")

	st := d.Status()
	assert.Equal(t, PhaseOpen, st.Phase)
	assert.EqualValues(t, 3, st.ModelFailures)
}

func TestClosedPhaseSuccessKeepsWindow(t *testing.T) {
	f := &fakeInferrer{verdict: modelVerdict()}
	d := newDispatcher(f, DefaultConfig())

	f.setErr(netErr())
	d.Predict(context.Background(), "x", "")
	f.setErr(nil)

	// A long run of successes must not be derailed by the earlier failure.
	for i := 0; i < 5; i++ {
		v := d.Predict(context.Background(), "x", "")
		assert.Equal(t, models.SourceModel, v.Source)
	}
	assert.Equal(t, PhaseClosed, d.Phase())
	assert.EqualValues(t, 0, d.Status().ConsecutiveFailures)
}

func TestPermanent4xxDoesNotCountAgainstCircuit(t *testing.T) {
	f := &fakeInferrer{err: &model.InferError{Kind: model.ErrKindService, Status: 404, Err: errors.New("not found")}}
	d := newDispatcher(f, DefaultConfig())

	for i := 0; i < 5; i++ {
		v := d.Predict(context.Background(), "x", "")
		assert.Equal(t, models.SourceFallback, v.Source)
	}

	st := d.Status()
	assert.Equal(t, PhaseClosed, st.Phase)
	assert.EqualValues(t, 0, st.ConsecutiveFailures)
	assert.EqualValues(t, 0, st.ModelFailures)
}

func TestValidationErrorDoesNotCountAgainstCircuit(t *testing.T) {
	f := &fakeInferrer{err: &model.InferError{Kind: model.ErrKindValidation, Err: errors.New("unsupported model")}}
	d := newDispatcher(f, DefaultConfig())

	for i := 0; i < 5; i++ {
		v := d.Predict(context.Background(), "x", "bogus")
		assert.Equal(t, models.SourceFallback, v.Source)
	}

	st := d.Status()
	assert.Equal(t, PhaseClosed, st.Phase)
	assert.EqualValues(t, 0, st.ConsecutiveFailures)
}

func TestDeadlineExpiryCountsAsFailure(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	f := &fakeInferrer{verdict: modelVerdict(), block: block}
	d := newDispatcher(f, DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	v := d.Predict(ctx, "x", "")
	assert.Equal(t, models.SourceFallback, v.Source)
	assert.EqualValues(t, 1, d.Status().ModelFailures)
	assert.EqualValues(t, 1, d.Status().ConsecutiveFailures)
}

// offInferrer reports a disabled client regardless of scripted behavior.
type offInferrer struct{ fakeInferrer }

func (o *offInferrer) Enabled() bool { return false }

func TestDisabledClientNeverHoldsProbeSlot(t *testing.T) {
	f := &offInferrer{}
	d := New(f, lexicon.New(), DefaultConfig(), nil)

	// Open phase with an elapsed cooldown is the one path that could hand a
	// probe slot to a caller that then skips the model entirely.
	d.mu.Lock()
	d.openedAt = time.Now().Add(-time.Minute)
	d.setPhase(PhaseOpen)
	d.mu.Unlock()

	v := d.Predict(context.Background(), "x", "")
	assert.Equal(t, models.SourceFallback, v.Source)
	assert.EqualValues(t, 0, f.calls.Load())

	d.mu.Lock()
	leaked := d.probeInFlight
	d.mu.Unlock()
	assert.False(t, leaked, "disabled client must not reserve the half-open probe")
}

func TestPredictObservesLatency(t *testing.T) {
	m := metrics.New()
	f := &fakeInferrer{verdict: modelVerdict()}
	d := New(f, lexicon.New(), DefaultConfig(), m)

	d.Predict(context.Background(), "x", "")
	f.setErr(netErr())
	d.Predict(context.Background(), "x", "")

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "sentiwatch_predict_latency_seconds" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.EqualValues(t, 2, samples, "every Predict call records one latency sample")
}

func TestStatusCountersMonotonic(t *testing.T) {
	f := &fakeInferrer{verdict: modelVerdict()}
	d := newDispatcher(f, DefaultConfig())

	var prev int64
	for i := 0; i < 10; i++ {
		d.Predict(context.Background(), "x", "")
		st := d.Status()
		assert.GreaterOrEqual(t, st.TotalRequests, prev)
		prev = st.TotalRequests
	}
	assert.EqualValues(t, 10, d.Status().TotalRequests)
}
