// Package config resolves the process configuration from environment
// variables. Every knob has a default; Load fails only on values that do not
// parse or that violate a documented bound, and a Load failure is fatal at
// startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ohsono/sentiwatch/pkg/database"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// Config is the umbrella configuration assembled by Load and handed to main
// for wiring. Subsystem structs are plain values; packages receive only the
// slice they need.
type Config struct {
	HTTP      HTTPConfig
	Model     ModelConfig
	Circuit   CircuitConfig
	Source    SourceConfig
	Scheduler SchedulerConfig
	Pipeline  PipelineConfig
	Registry  RegistryConfig
	Database  database.Config

	// AlertRulesPath points at a YAML rule file; empty selects the embedded
	// default rule set.
	AlertRulesPath string
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Port int
}

// ModelConfig configures the learned-model HTTP client. An empty BaseURL
// disables the client entirely; every prediction then uses the lexicon.
type ModelConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CircuitConfig configures the failsafe circuit breaker.
type CircuitConfig struct {
	MaxFailures int
	Window      time.Duration
	Cooldown    time.Duration
}

// SourceConfig configures the content-source client. Credentials are
// forwarded opaquely to the upstream API.
type SourceConfig struct {
	BaseURL      string
	UserAgent    string
	PageTimeout  time.Duration
	ClientID     string
	ClientSecret string
}

// SchedulerConfig configures the periodic pipeline dispatch.
type SchedulerConfig struct {
	Enabled    bool
	Interval   time.Duration
	JitterFrac float64

	// Preset is the pipeline request submitted on each tick.
	Preset models.PipelineRequest
}

// PipelineConfig configures the orchestrator.
type PipelineConfig struct {
	MaxParallel           int64
	PersistFanout         int
	ScratchDir            string
	StoreFailureThreshold int
	DefaultModel          string
}

// RegistryConfig configures the in-memory task registry.
type RegistryConfig struct {
	TTL time.Duration
}

// Load resolves the full configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		AlertRulesPath: os.Getenv("ALERT_RULES_PATH"),
	}

	var err error
	if cfg.HTTP, err = loadHTTP(); err != nil {
		return nil, err
	}
	if cfg.Model, err = loadModel(); err != nil {
		return nil, err
	}
	if cfg.Circuit, err = loadCircuit(); err != nil {
		return nil, err
	}
	if cfg.Source, err = loadSource(); err != nil {
		return nil, err
	}
	if cfg.Scheduler, err = loadScheduler(); err != nil {
		return nil, err
	}
	if cfg.Pipeline, err = loadPipeline(); err != nil {
		return nil, err
	}
	if cfg.Registry, err = loadRegistry(); err != nil {
		return nil, err
	}
	if cfg.Database, err = database.LoadConfigFromEnv(); err != nil {
		return nil, fmt.Errorf("database configuration: %w", err)
	}
	return cfg, nil
}

func loadHTTP() (HTTPConfig, error) {
	port, err := envInt("HTTP_PORT", 8080)
	if err != nil {
		return HTTPConfig{}, err
	}
	if port < 1 || port > 65535 {
		return HTTPConfig{}, fmt.Errorf("HTTP_PORT must be in 1..65535, got %d", port)
	}
	return HTTPConfig{Port: port}, nil
}

func loadModel() (ModelConfig, error) {
	timeoutSecs, err := envInt("MODEL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return ModelConfig{}, err
	}
	if timeoutSecs <= 0 {
		return ModelConfig{}, fmt.Errorf("MODEL_TIMEOUT_SECONDS must be positive, got %d", timeoutSecs)
	}
	return ModelConfig{
		BaseURL: os.Getenv("MODEL_SERVICE_URL"),
		Timeout: time.Duration(timeoutSecs) * time.Second,
	}, nil
}

func loadCircuit() (CircuitConfig, error) {
	maxFailures, err := envInt("CIRCUIT_MAX_FAILURES", 3)
	if err != nil {
		return CircuitConfig{}, err
	}
	windowSecs, err := envInt("CIRCUIT_WINDOW_SECONDS", 300)
	if err != nil {
		return CircuitConfig{}, err
	}
	cooldownSecs, err := envInt("CIRCUIT_COOLDOWN_SECONDS", 60)
	if err != nil {
		return CircuitConfig{}, err
	}
	if maxFailures <= 0 || windowSecs <= 0 || cooldownSecs <= 0 {
		return CircuitConfig{}, fmt.Errorf("circuit settings must be positive (max_failures=%d window=%ds cooldown=%ds)",
			maxFailures, windowSecs, cooldownSecs)
	}
	return CircuitConfig{
		MaxFailures: maxFailures,
		Window:      time.Duration(windowSecs) * time.Second,
		Cooldown:    time.Duration(cooldownSecs) * time.Second,
	}, nil
}

func loadSource() (SourceConfig, error) {
	pageTimeoutSecs, err := envInt("SOURCE_PAGE_TIMEOUT_SECONDS", 15)
	if err != nil {
		return SourceConfig{}, err
	}
	if pageTimeoutSecs <= 0 {
		return SourceConfig{}, fmt.Errorf("SOURCE_PAGE_TIMEOUT_SECONDS must be positive, got %d", pageTimeoutSecs)
	}
	return SourceConfig{
		BaseURL:      getEnvOrDefault("SOURCE_BASE_URL", "https://www.reddit.com"),
		UserAgent:    getEnvOrDefault("SOURCE_USER_AGENT", "sentiwatch/1.0"),
		PageTimeout:  time.Duration(pageTimeoutSecs) * time.Second,
		ClientID:     os.Getenv("SOURCE_CLIENT_ID"),
		ClientSecret: os.Getenv("SOURCE_CLIENT_SECRET"),
	}, nil
}

func loadScheduler() (SchedulerConfig, error) {
	intervalMins, err := envInt("SCRAPING_INTERVAL_MINUTES", 30)
	if err != nil {
		return SchedulerConfig{}, err
	}
	if intervalMins <= 0 {
		return SchedulerConfig{}, fmt.Errorf("SCRAPING_INTERVAL_MINUTES must be positive, got %d", intervalMins)
	}
	jitterFrac, err := envFloat("SCRAPING_JITTER_FRAC", 0.1)
	if err != nil {
		return SchedulerConfig{}, err
	}
	if jitterFrac < 0 || jitterFrac > 0.5 {
		return SchedulerConfig{}, fmt.Errorf("SCRAPING_JITTER_FRAC must be in [0, 0.5], got %g", jitterFrac)
	}
	postLimit, err := envInt("SCRAPING_POST_LIMIT", 25)
	if err != nil {
		return SchedulerConfig{}, err
	}
	commentLimit, err := envInt("SCRAPING_COMMENT_LIMIT", 0)
	if err != nil {
		return SchedulerConfig{}, err
	}

	return SchedulerConfig{
		Enabled:    envBool("SCHEDULER_ENABLED", false),
		Interval:   time.Duration(intervalMins) * time.Minute,
		JitterFrac: jitterFrac,
		Preset: models.PipelineRequest{
			SourceParams: models.SourceParams{
				Subreddit:           os.Getenv("SCRAPING_SUBREDDIT"),
				PostLimit:           postLimit,
				CommentLimitPerPost: commentLimit,
				Sort:                models.SortOrder(getEnvOrDefault("SCRAPING_SORT", string(models.SortNew))),
			},
			EnableAlerts: envBool("SCRAPING_ENABLE_ALERTS", true),
		},
	}, nil
}

func loadPipeline() (PipelineConfig, error) {
	maxParallel, err := envInt("PIPELINE_MAX_PARALLEL", 4)
	if err != nil {
		return PipelineConfig{}, err
	}
	fanout, err := envInt("PIPELINE_PERSIST_FANOUT", 8)
	if err != nil {
		return PipelineConfig{}, err
	}
	if maxParallel <= 0 || fanout <= 0 {
		return PipelineConfig{}, fmt.Errorf("pipeline limits must be positive (max_parallel=%d persist_fanout=%d)",
			maxParallel, fanout)
	}
	return PipelineConfig{
		MaxParallel:           int64(maxParallel),
		PersistFanout:         fanout,
		ScratchDir:            os.Getenv("PIPELINE_SCRATCH_DIR"),
		StoreFailureThreshold: 10,
		DefaultModel:          getEnvOrDefault("DEFAULT_MODEL", "distilbert"),
	}, nil
}

func loadRegistry() (RegistryConfig, error) {
	ttlHours, err := envInt("TASK_TTL_HOURS", 24)
	if err != nil {
		return RegistryConfig{}, err
	}
	if ttlHours <= 0 {
		return RegistryConfig{}, fmt.Errorf("TASK_TTL_HOURS must be positive, got %d", ttlHours)
	}
	return RegistryConfig{TTL: time.Duration(ttlHours) * time.Hour}, nil
}

// Validate applies cross-subsystem checks that Load cannot express per-field.
func (c *Config) Validate() error {
	if c.Scheduler.Enabled && c.Scheduler.Preset.SourceParams.Subreddit == "" {
		return fmt.Errorf("SCRAPING_SUBREDDIT is required when SCHEDULER_ENABLED is true")
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database configuration: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func envFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func envBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
