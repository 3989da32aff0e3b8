// Package validate parses every PromQL expression in a generated dashboard
// and checks the referenced metric names against the set of metrics the
// service exports. It catches dashboards going stale when metrics are
// renamed or removed.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	grafanaprom "github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation errors and warnings for one dashboard.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates all panel queries in dash against the known metric
// names. Unknown metrics are errors; selectors without a metric name are
// warnings.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			validatePanel(*p.Panel, known, &result)
		case p.RowPanel != nil:
			for _, inner := range p.RowPanel.Panels {
				validatePanel(inner, known, &result)
			}
		}
	}

	return result
}

func validatePanel(p dashboard.Panel, known map[string]bool, result *Result) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}

	for _, target := range p.Targets {
		expr := exprOf(target)
		if expr == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("panel %q: target with no expression", title))
			continue
		}

		node, err := parser.ParseExpr(expr)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("panel %q: invalid PromQL %q: %v", title, expr, err))
			continue
		}

		parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
			vs, ok := n.(*parser.VectorSelector)
			if !ok {
				return nil
			}
			if vs.Name == "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("panel %q: selector without metric name in %q", title, expr))
				return nil
			}
			if !known[baseMetric(vs.Name)] {
				result.Errors = append(result.Errors,
					fmt.Sprintf("panel %q: unknown metric %q in %q", title, vs.Name, expr))
			}
			return nil
		})
	}
}

func exprOf(target any) string {
	switch q := target.(type) {
	case grafanaprom.Dataquery:
		return q.Expr
	case *grafanaprom.Dataquery:
		return q.Expr
	default:
		return ""
	}
}

// baseMetric strips histogram sample suffixes so that
// lg_grading_duration_seconds_bucket resolves to the registered
// histogram name.
func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
