package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lg-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lg-recording",
					Rules: []Rule{
						{
							Record: "lg:http_requests:rate5m",
							Expr:   `sum(rate(lg_http_requests_total[5m]))`,
						},
						{
							Record: "lg:http_errors:rate5m",
							Expr:   `sum(rate(lg_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "lg:grading:rate5m",
							Expr:   `rate(lg_grading_total[5m])`,
						},
						{
							Record: "lg:grading_failures:rate5m",
							Expr:   `rate(lg_grading_failures_total[5m])`,
						},
						{
							Record: "lg:etsy_api_calls:rate5m",
							Expr:   `rate(lg_etsy_api_calls_total[5m])`,
						},
						{
							Record: "lg:etsy_api_errors:rate5m",
							Expr:   `rate(lg_etsy_api_errors_total[5m])`,
						},
					},
				},
			},
		},
	}
}
