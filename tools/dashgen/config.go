package main

import "errors"

// KnownMetrics is the set of metric names exported by the listing grader
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"lg_http_request_duration_seconds": true,
	"lg_http_requests_total":           true,

	// Health metrics.
	"lg_healthz_up": true,
	"lg_readyz_up":  true,

	// Grading metrics.
	"lg_grading_total":            true,
	"lg_grading_failures_total":   true,
	"lg_grading_distribution":     true,
	"lg_grading_duration_seconds": true,
	"lg_shop_comparisons_total":   true,

	// Etsy API metrics.
	"lg_etsy_api_calls_total":        true,
	"lg_etsy_api_errors_total":       true,
	"lg_etsy_daily_usage":            true,
	"lg_etsy_daily_limit_hits_total": true,

	// Alert and scheduler metrics.
	"lg_alerts_fired_total":          true,
	"lg_notification_failures_total": true,
	"lg_job_duration_seconds":        true,

	// Recording rules.
	"lg:http_requests:rate5m":    true,
	"lg:http_errors:rate5m":      true,
	"lg:grading:rate5m":          true,
	"lg:grading_failures:rate5m": true,
	"lg:etsy_api_calls:rate5m":   true,
	"lg:etsy_api_errors:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
