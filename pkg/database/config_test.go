package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "sentiwatch", cfg.User)
				assert.Equal(t, "sentiwatch", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "DSN alone is sufficient",
			envVars: map[string]string{
				"STORE_DSN": "postgres://u:p@db:5432/sentiwatch?sslmode=disable",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://u:p@db:5432/sentiwatch?sslmode=disable", cfg.connString())
			},
		},
		{
			name: "custom values override defaults",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Contains(t, cfg.connString(), "sslmode=require")
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password without DSN",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"STORE_DSN",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	dsnOnly := Config{DSN: "postgres://u:p@localhost/db", MaxOpenConns: 10}
	assert.NoError(t, dsnOnly.Validate())

	idleExceedsOpen := valid
	idleExceedsOpen.MaxOpenConns = 5
	idleExceedsOpen.MaxIdleConns = 10
	assert.Error(t, idleExceedsOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())

	negativeIdle := valid
	negativeIdle.MaxIdleConns = -1
	assert.Error(t, negativeIdle.Validate())
}

func TestConnString(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Password: "p",
		Database: "d",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=d sslmode=disable", cfg.connString())
}
