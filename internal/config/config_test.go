package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellersage/listing-grader/pkg/grader"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://openapi.etsy.com/v3/application", cfg.Etsy.BaseURL)
				assert.Equal(t, 50, cfg.Etsy.MaxCallsPerCycle)
				assert.Equal(t, 5.0, cfg.Etsy.RateLimit.PerSecond)
				assert.Equal(t, int64(5000), cfg.Etsy.RateLimit.DailyLimit)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.RefreshInterval)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.BenchmarkInterval)
				assert.Equal(t, 30*time.Second, cfg.Schedule.StaggerOffset)
				assert.Equal(t, 10, cfg.Alerts.GradeDropThreshold)
				assert.Equal(t, 24*time.Hour, cfg.Alerts.ReAlertsCooldown)
				assert.False(t, cfg.Alerts.ReAlertsEnabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
etsy:
  api_key: "${TEST_ETSY_KEY}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_ETSY_KEY":    "etsy-key-456",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "etsy-key-456", cfg.Etsy.APIKey)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "grading weights must sum to 1",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
grading:
  weights:
    title: 0.50
    description: 0.50
    tags: 0.50
    images: 0.10
    pricing: 0.10
    engagement: 0.10
`,
			wantErr: "grading.weights",
		},
		{
			name: "discord enabled without webhook url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "webhook enabled without url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  webhook:
    enabled: true
`,
			wantErr: "notifications.webhook.url is required when webhook is enabled",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: grader_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
etsy:
  api_key: my-api-key
  shared_secret: my-secret
  max_calls_per_cycle: 100
  rate_limit:
    per_second: 2
    burst: 5
    daily_limit: 10000
grading:
  weights:
    title: 0.25
    description: 0.25
    tags: 0.20
    images: 0.10
    pricing: 0.10
    engagement: 0.10
schedule:
  refresh_interval: 30m
  benchmark_interval: 12h
  stagger_offset: 1m
alerts:
  grade_drop_threshold: 15
  re_alerts_enabled: true
  re_alerts_cooldown: 12h
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
  webhook:
    enabled: false
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "my-api-key", cfg.Etsy.APIKey)
				assert.Equal(t, 100, cfg.Etsy.MaxCallsPerCycle)
				assert.Equal(t, 2.0, cfg.Etsy.RateLimit.PerSecond)
				assert.Equal(t, int64(10000), cfg.Etsy.RateLimit.DailyLimit)
				assert.Equal(t, 0.25, cfg.Grading.Weights.Title)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.RefreshInterval)
				assert.Equal(t, 15, cfg.Alerts.GradeDropThreshold)
				assert.True(t, cfg.Alerts.ReAlertsEnabled)
				assert.Equal(t, 12*time.Hour, cfg.Alerts.ReAlertsCooldown)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "https://discord.com/api/webhooks/123", cfg.Notifications.Discord.WebhookURL)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "grader",
		User:     "grader",
		Password: "s3cret",
		SSLMode:  "disable",
	}
	assert.Equal(
		t,
		"host=localhost port=5432 dbname=grader user=grader password=s3cret sslmode=disable",
		cfg.DSN(),
	)
}

func TestGradingConfig_GraderWeights(t *testing.T) {
	t.Parallel()

	t.Run("zero weights fall back to defaults", func(t *testing.T) {
		t.Parallel()
		var g GradingConfig
		assert.Equal(t, grader.DefaultWeights(), g.GraderWeights())
	})

	t.Run("configured weights pass through", func(t *testing.T) {
		t.Parallel()
		g := GradingConfig{Weights: GradingWeights{
			Title:       0.25,
			Description: 0.25,
			Tags:        0.20,
			Images:      0.10,
			Pricing:     0.10,
			Engagement:  0.10,
		}}
		w := g.GraderWeights()
		assert.Equal(t, 0.25, w.Title)
		require.NoError(t, w.Validate())
	})
}
