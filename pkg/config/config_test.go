package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// clearEnv unsets every variable Load reads so host state never leaks in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT",
		"MODEL_SERVICE_URL", "MODEL_TIMEOUT_SECONDS",
		"CIRCUIT_MAX_FAILURES", "CIRCUIT_WINDOW_SECONDS", "CIRCUIT_COOLDOWN_SECONDS",
		"SOURCE_BASE_URL", "SOURCE_USER_AGENT", "SOURCE_PAGE_TIMEOUT_SECONDS",
		"SOURCE_CLIENT_ID", "SOURCE_CLIENT_SECRET",
		"SCHEDULER_ENABLED", "SCRAPING_INTERVAL_MINUTES", "SCRAPING_JITTER_FRAC",
		"SCRAPING_SUBREDDIT", "SCRAPING_POST_LIMIT", "SCRAPING_COMMENT_LIMIT",
		"SCRAPING_SORT", "SCRAPING_ENABLE_ALERTS",
		"PIPELINE_MAX_PARALLEL", "PIPELINE_PERSIST_FANOUT", "PIPELINE_SCRATCH_DIR",
		"DEFAULT_MODEL", "TASK_TTL_HOURS", "ALERT_RULES_PATH",
		"STORE_DSN", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Empty(t, cfg.Model.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Model.Timeout)

	assert.Equal(t, 3, cfg.Circuit.MaxFailures)
	assert.Equal(t, 5*time.Minute, cfg.Circuit.Window)
	assert.Equal(t, 60*time.Second, cfg.Circuit.Cooldown)

	assert.Equal(t, "https://www.reddit.com", cfg.Source.BaseURL)
	assert.Equal(t, "sentiwatch/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 15*time.Second, cfg.Source.PageTimeout)

	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.Interval)
	assert.InDelta(t, 0.1, cfg.Scheduler.JitterFrac, 1e-9)
	assert.Equal(t, 25, cfg.Scheduler.Preset.SourceParams.PostLimit)
	assert.Equal(t, models.SortNew, cfg.Scheduler.Preset.SourceParams.Sort)
	assert.True(t, cfg.Scheduler.Preset.EnableAlerts)

	assert.Equal(t, int64(4), cfg.Pipeline.MaxParallel)
	assert.Equal(t, 8, cfg.Pipeline.PersistFanout)
	assert.Equal(t, 10, cfg.Pipeline.StoreFailureThreshold)
	assert.Equal(t, "distilbert", cfg.Pipeline.DefaultModel)

	assert.Equal(t, 24*time.Hour, cfg.Registry.TTL)
	assert.Empty(t, cfg.AlertRulesPath)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9091")
	t.Setenv("MODEL_SERVICE_URL", "http://model:5000")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "3")
	t.Setenv("CIRCUIT_MAX_FAILURES", "5")
	t.Setenv("CIRCUIT_WINDOW_SECONDS", "120")
	t.Setenv("CIRCUIT_COOLDOWN_SECONDS", "30")
	t.Setenv("SCHEDULER_ENABLED", "true")
	t.Setenv("SCRAPING_INTERVAL_MINUTES", "5")
	t.Setenv("SCRAPING_JITTER_FRAC", "0.25")
	t.Setenv("SCRAPING_SUBREDDIT", "ucla")
	t.Setenv("PIPELINE_MAX_PARALLEL", "2")
	t.Setenv("TASK_TTL_HOURS", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.HTTP.Port)
	assert.Equal(t, "http://model:5000", cfg.Model.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Model.Timeout)
	assert.Equal(t, 5, cfg.Circuit.MaxFailures)
	assert.Equal(t, 2*time.Minute, cfg.Circuit.Window)
	assert.Equal(t, 30*time.Second, cfg.Circuit.Cooldown)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.Interval)
	assert.InDelta(t, 0.25, cfg.Scheduler.JitterFrac, 1e-9)
	assert.Equal(t, "ucla", cfg.Scheduler.Preset.SourceParams.Subreddit)
	assert.Equal(t, int64(2), cfg.Pipeline.MaxParallel)
	assert.Equal(t, 6*time.Hour, cfg.Registry.TTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "HTTP_PORT", "eighty"},
		{"port out of range", "HTTP_PORT", "70000"},
		{"zero model timeout", "MODEL_TIMEOUT_SECONDS", "0"},
		{"negative circuit failures", "CIRCUIT_MAX_FAILURES", "-1"},
		{"jitter above bound", "SCRAPING_JITTER_FRAC", "0.75"},
		{"non-numeric jitter", "SCRAPING_JITTER_FRAC", "lots"},
		{"zero interval", "SCRAPING_INTERVAL_MINUTES", "0"},
		{"zero page timeout", "SOURCE_PAGE_TIMEOUT_SECONDS", "0"},
		{"zero fanout", "PIPELINE_PERSIST_FANOUT", "0"},
		{"zero ttl", "TASK_TTL_HOURS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateRequiresSubredditWhenScheduled(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCHEDULER_ENABLED", "true")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "SCRAPING_SUBREDDIT")

	t.Setenv("SCRAPING_SUBREDDIT", "ucla")
	cfg, err = Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
