// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sellersage/listing-grader/pkg/grader"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Etsy          EtsyConfig          `yaml:"etsy"`
	Grading       GradingConfig       `yaml:"grading"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EtsyConfig defines Etsy Open API settings.
type EtsyConfig struct {
	APIKey           string          `yaml:"api_key"`
	SharedSecret     string          `yaml:"shared_secret"`
	TokenURL         string          `yaml:"token_url"`
	BaseURL          string          `yaml:"base_url"`
	MaxCallsPerCycle int             `yaml:"max_calls_per_cycle"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Etsy API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// GradingConfig defines grading weight overrides. Zero-valued weights
// fall back to the grader defaults.
type GradingConfig struct {
	Weights GradingWeights `yaml:"weights"`
}

// GradingWeights defines the relative weight of each grading dimension.
type GradingWeights struct {
	Title       float64 `yaml:"title"`
	Description float64 `yaml:"description"`
	Tags        float64 `yaml:"tags"`
	Images      float64 `yaml:"images"`
	Pricing     float64 `yaml:"pricing"`
	Engagement  float64 `yaml:"engagement"`
}

// IsZero reports whether no weight override was configured.
func (w GradingWeights) IsZero() bool {
	return w.Title == 0 && w.Description == 0 && w.Tags == 0 &&
		w.Images == 0 && w.Pricing == 0 && w.Engagement == 0
}

// GraderWeights converts the configured weights into grader weights,
// falling back to the defaults when no override is set.
func (g GradingConfig) GraderWeights() grader.Weights {
	if g.Weights.IsZero() {
		return grader.DefaultWeights()
	}
	return grader.Weights{
		Title:       g.Weights.Title,
		Description: g.Weights.Description,
		Tags:        g.Weights.Tags,
		Images:      g.Weights.Images,
		Pricing:     g.Weights.Pricing,
		Engagement:  g.Weights.Engagement,
	}
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
	BenchmarkInterval time.Duration `yaml:"benchmark_interval"`
	StaggerOffset     time.Duration `yaml:"stagger_offset"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// AlertsConfig defines grade-drop alert behavior.
type AlertsConfig struct {
	GradeDropThreshold int           `yaml:"grade_drop_threshold"` // default: 10 points
	ReAlertsEnabled    bool          `yaml:"re_alerts_enabled"`    // default: false
	ReAlertsCooldown   time.Duration `yaml:"re_alerts_cooldown"`   // default: 24h
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEtsyDefaults(&cfg.Etsy)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEtsyDefaults(e *EtsyConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.etsy.com/v3/public/oauth/token"
	}
	if e.BaseURL == "" {
		e.BaseURL = "https://openapi.etsy.com/v3/application"
	}
	if e.MaxCallsPerCycle == 0 {
		e.MaxCallsPerCycle = 50
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RefreshInterval == 0 {
		s.RefreshInterval = 6 * time.Hour
	}
	if s.BenchmarkInterval == 0 {
		s.BenchmarkInterval = 24 * time.Hour
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.GradeDropThreshold == 0 {
		a.GradeDropThreshold = 10
	}
	if a.ReAlertsCooldown == 0 {
		a.ReAlertsCooldown = 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if !cfg.Grading.Weights.IsZero() {
		if err := cfg.Grading.GraderWeights().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("grading.weights: %w", err))
		}
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}
	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.URL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.webhook.url is required when webhook is enabled"),
		)
	}

	return errors.Join(errs...)
}
