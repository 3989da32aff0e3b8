package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// listing grader operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lg-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lg-alerts",
					Rules: []Rule{
						{
							Alert: "LgDown",
							Expr:  `absent(up{job="listing-grader"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Grader is down",
								"description": "The listing-grader job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "LgReadinessDown",
							Expr:  `lg_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Grader readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "LgHighErrorRate",
							Expr:  `lg:http_errors:rate5m / lg:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Listing Grader",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "LgGradingFailures",
							Expr:  `lg:grading_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Grading failures detected",
								"description": "The grading pipeline has been producing failures for more than 5 minutes.",
							},
						},
						{
							Alert: "LgEtsyAPIErrors",
							Expr:  `lg:etsy_api_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Etsy API failure rate is elevated",
								"description": "Etsy API calls are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "LgEtsyQuotaHigh",
							Expr:  `lg_etsy_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Etsy API daily usage is above 80% of the quota",
								"description": "Daily Etsy API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "LgEtsyLimitReached",
							Expr:  `increase(lg_etsy_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Etsy API daily limit has been reached",
								"description": "The Etsy Open API daily quota has been exhausted. Tracked refresh is paused until reset.",
							},
						},
						{
							Alert: "LgNotificationFailures",
							Expr:  `increase(lg_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more grade-drop alert notifications have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
