// Package failsafe fronts the model service with a circuit breaker and falls
// back to the lexicon classifier whenever the model path is unavailable.
// Predict never returns an error: callers always receive a verdict, and the
// per-verdict Source field is the only signal that degradation occurred.
package failsafe

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ohsono/sentiwatch/pkg/lexicon"
	"github.com/ohsono/sentiwatch/pkg/metrics"
	"github.com/ohsono/sentiwatch/pkg/model"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// Phase is the circuit state.
type Phase string

// Circuit phases.
const (
	PhaseClosed   Phase = "closed"
	PhaseOpen     Phase = "open"
	PhaseHalfOpen Phase = "half_open"
)

const (
	phaseClosedCode int32 = iota
	phaseOpenCode
	phaseHalfOpenCode
)

func phaseFromCode(code int32) Phase {
	switch code {
	case phaseOpenCode:
		return PhaseOpen
	case phaseHalfOpenCode:
		return PhaseHalfOpen
	default:
		return PhaseClosed
	}
}

// Config tunes the circuit breaker.
type Config struct {
	// MaxFailures opens the circuit when reached, either consecutively or
	// within Window.
	MaxFailures int

	// Window is the sliding window for failure counting.
	Window time.Duration

	// Cooldown is how long the circuit stays open before a half-open probe.
	Cooldown time.Duration
}

// DefaultConfig returns the built-in circuit defaults.
func DefaultConfig() Config {
	return Config{
		MaxFailures: 3,
		Window:      5 * time.Minute,
		Cooldown:    60 * time.Second,
	}
}

// Inferrer is the model-client surface the dispatcher depends on.
type Inferrer interface {
	Infer(ctx context.Context, text, modelName string) (models.SentimentVerdict, error)
	Enabled() bool
}

// Dispatcher routes predictions between the model client and the lexicon
// classifier according to the circuit state. Safe for concurrent use; the
// mutex covers only state transitions, never the model call itself.
type Dispatcher struct {
	client  Inferrer
	lexicon *lexicon.Classifier
	cfg     Config
	metrics *metrics.Metrics

	mu            sync.Mutex
	windowFails   []time.Time
	openedAt      time.Time
	probeInFlight bool

	// Monotonic counters, readable without the mutex.
	totalRequests   atomic.Int64
	modelSuccesses  atomic.Int64
	modelFailures   atomic.Int64
	fallbackUses    atomic.Int64
	consecutive     atomic.Int64
	lastFailureUnix atomic.Int64
	openedAtUnix    atomic.Int64
	phaseCode       atomic.Int32
}

// New creates a dispatcher. m may be nil to disable Prometheus counters
// (atomic counters are always maintained).
func New(client Inferrer, lex *lexicon.Classifier, cfg Config, m *metrics.Metrics) *Dispatcher {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = DefaultConfig().MaxFailures
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultConfig().Cooldown
	}
	return &Dispatcher{
		client:  client,
		lexicon: lex,
		cfg:     cfg,
		metrics: m,
	}
}

// Predict classifies text, preferring the model service when the circuit
// allows it and falling back to the lexicon otherwise. The caller's context
// deadline bounds the model call; expiry counts as a circuit failure.
func (d *Dispatcher) Predict(ctx context.Context, text, modelName string) models.SentimentVerdict {
	d.totalRequests.Add(1)
	start := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.PredictLatency.Observe(time.Since(start).Seconds())
		}
	}()

	// A disabled client is checked before touching circuit state so it can
	// never hold the half-open probe slot.
	if !d.client.Enabled() {
		return d.fallback(text)
	}
	allowed, probe := d.beginAttempt(start)
	if !allowed {
		return d.fallback(text)
	}

	verdict, err := d.client.Infer(ctx, text, modelName)
	if err == nil {
		d.recordSuccess(probe)
		d.modelSuccesses.Add(1)
		if d.metrics != nil {
			d.metrics.PredictTotal.WithLabelValues("model").Inc()
		}
		return verdict
	}

	var ie *model.InferError
	if errors.As(err, &ie) && ie.Permanent() {
		// Client-side problem (bad input or a 4xx), not a service health
		// signal: do not count it against the circuit.
		d.clearProbe(probe)
		slog.Warn("Model request rejected before dispatch", "error", err)
		return d.fallback(text)
	}

	d.recordFailure(probe, time.Now())
	d.modelFailures.Add(1)
	slog.Warn("Model inference failed, serving fallback",
		"error", err,
		"phase", string(d.Phase()),
		"consecutive_failures", d.consecutive.Load())
	return d.fallback(text)
}

// fallback serves a lexicon verdict and accounts for it.
func (d *Dispatcher) fallback(text string) models.SentimentVerdict {
	d.fallbackUses.Add(1)
	if d.metrics != nil {
		d.metrics.PredictTotal.WithLabelValues("fallback").Inc()
	}
	return d.lexicon.Classify(text)
}

// beginAttempt decides whether the model may be called. In half_open state
// only one probe is admitted; concurrent callers are sent to the fallback
// without affecting the circuit.
func (d *Dispatcher) beginAttempt(now time.Time) (allowed, probe bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch phaseFromCode(d.phaseCode.Load()) {
	case PhaseOpen:
		if now.Sub(d.openedAt) < d.cfg.Cooldown {
			return false, false
		}
		d.setPhase(PhaseHalfOpen)
		d.probeInFlight = true
		return true, true

	case PhaseHalfOpen:
		if d.probeInFlight {
			return false, false
		}
		d.probeInFlight = true
		return true, true

	default:
		return true, false
	}
}

// recordSuccess resets the consecutive-failure streak. Only a successful
// half-open probe clears the sliding window and closes the circuit; a success
// in the closed phase keeps windowed failures so that intermittent failures
// inside the window still accumulate toward the threshold.
func (d *Dispatcher) recordSuccess(probe bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.consecutive.Store(0)
	if probe {
		d.probeInFlight = false
		d.windowFails = d.windowFails[:0]
		d.setPhase(PhaseClosed)
		slog.Info("Model service recovered, circuit closed")
	}
}

// recordFailure counts a failure and opens the circuit when either threshold
// is crossed. A failed half-open probe reopens immediately.
func (d *Dispatcher) recordFailure(probe bool, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastFailureUnix.Store(now.Unix())

	if probe {
		d.probeInFlight = false
		d.open(now)
		return
	}

	n := d.consecutive.Add(1)
	d.windowFails = append(d.windowFails, now)
	d.pruneWindow(now)

	if int(n) >= d.cfg.MaxFailures || len(d.windowFails) >= d.cfg.MaxFailures {
		d.open(now)
	}
}

// clearProbe releases the half-open probe slot without recording an outcome.
func (d *Dispatcher) clearProbe(probe bool) {
	if !probe {
		return
	}
	d.mu.Lock()
	d.probeInFlight = false
	d.mu.Unlock()
}

// open transitions to the open phase. Caller holds the mutex.
func (d *Dispatcher) open(now time.Time) {
	if phaseFromCode(d.phaseCode.Load()) != PhaseOpen {
		slog.Warn("Circuit opened, model calls suppressed",
			"cooldown", d.cfg.Cooldown,
			"consecutive_failures", d.consecutive.Load())
		if d.metrics != nil {
			d.metrics.CircuitOpens.Inc()
		}
	}
	d.openedAt = now
	d.openedAtUnix.Store(now.Unix())
	d.setPhase(PhaseOpen)
}

// setPhase updates the phase. Caller holds the mutex.
func (d *Dispatcher) setPhase(p Phase) {
	switch p {
	case PhaseOpen:
		d.phaseCode.Store(phaseOpenCode)
	case PhaseHalfOpen:
		d.phaseCode.Store(phaseHalfOpenCode)
	default:
		d.phaseCode.Store(phaseClosedCode)
	}
}

// pruneWindow drops window entries older than cfg.Window. Caller holds the
// mutex.
func (d *Dispatcher) pruneWindow(now time.Time) {
	cutoff := now.Add(-d.cfg.Window)
	kept := d.windowFails[:0]
	for _, t := range d.windowFails {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	d.windowFails = kept
}

// Phase returns the current circuit phase without blocking predictions.
func (d *Dispatcher) Phase() Phase {
	return phaseFromCode(d.phaseCode.Load())
}

// Status is a point-in-time snapshot of the circuit and its counters.
// Counters are read individually from atomics; torn-but-monotonic reads are
// acceptable.
type Status struct {
	Phase               Phase      `json:"phase"`
	TotalRequests       int64      `json:"total_requests"`
	ModelSuccesses      int64      `json:"model_successes"`
	ModelFailures       int64      `json:"model_failures"`
	FallbackUses        int64      `json:"fallback_uses"`
	ConsecutiveFailures int64      `json:"consecutive_failures"`
	OpenedAt            *time.Time `json:"opened_at,omitempty"`
	LastFailureAt       *time.Time `json:"last_failure_at,omitempty"`
}

// Status returns a lock-free snapshot of circuit state and counters.
func (d *Dispatcher) Status() Status {
	s := Status{
		Phase:               d.Phase(),
		TotalRequests:       d.totalRequests.Load(),
		ModelSuccesses:      d.modelSuccesses.Load(),
		ModelFailures:       d.modelFailures.Load(),
		FallbackUses:        d.fallbackUses.Load(),
		ConsecutiveFailures: d.consecutive.Load(),
	}
	if ts := d.openedAtUnix.Load(); ts != 0 {
		t := time.Unix(ts, 0).UTC()
		s.OpenedAt = &t
	}
	if ts := d.lastFailureUnix.Load(); ts != 0 {
		t := time.Unix(ts, 0).UTC()
		s.LastFailureAt = &t
	}
	return s
}
