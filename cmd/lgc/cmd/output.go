package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/sellersage/listing-grader/internal/api/client"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.ListingData) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tETSY ID\tTITLE\tPRICE\tSCORE\tCATEGORY\n")
	for i := range listings {
		score := "-"
		if listings[i].Score != nil {
			score = fmt.Sprintf("%d", *listings[i].Score)
		}
		tw.writef("%s\t%s\t%s\t$%.2f\t%s\t%s\n",
			listings[i].ID,
			listings[i].EtsyListingID,
			truncate(listings[i].Title, 40),
			listings[i].Price,
			score,
			listings[i].Category,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.ListingData) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Etsy ID:\t%s\n", l.EtsyListingID)
	tw.writef("Shop:\t%s\n", l.ShopID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t$%.2f %s\n", l.Price, l.Currency)
	tw.writef("Category:\t%s\n", l.Category)
	tw.writef("Tags:\t%d\n", len(l.Tags))
	tw.writef("Images:\t%d\n", len(l.Images))
	tw.writef("Reviews:\t%d (%.1f avg)\n", l.Reviews.Count, l.Reviews.Average)
	tw.writef("Favorites:\t%d\n", l.Favorites)
	tw.writef("Views:\t%d\n", l.Views)
	if l.Score != nil {
		tw.writef("Score:\t%d/100\n", *l.Score)
	}
	return tw.finish()
}

func printGrade(g *domain.SEOGrade) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Overall:\t%s (%d/100)\n", g.Overall, g.Score)
	tw.writef("\nDIMENSION\tGRADE\tSCORE\tFEEDBACK\n")
	for _, row := range []struct {
		name string
		b    domain.GradeBreakdown
	}{
		{"title", g.Breakdown.Title},
		{"description", g.Breakdown.Description},
		{"tags", g.Breakdown.Tags},
		{"images", g.Breakdown.Images},
		{"pricing", g.Breakdown.Pricing},
		{"engagement", g.Breakdown.Engagement},
	} {
		tw.writef("%s\t%s\t%d/%d\t%s\n",
			row.name, row.b.Grade, row.b.Score, row.b.MaxScore, truncate(row.b.Feedback, 60))
	}

	if len(g.Issues) > 0 {
		tw.writef("\nISSUES\n")
		for i := range g.Issues {
			tw.writef("[%s]\t%s:\t%s\n",
				g.Issues[i].Severity, g.Issues[i].Category, g.Issues[i].Issue)
		}
	}

	if len(g.Improvements) > 0 {
		tw.writef("\nIMPROVEMENTS\n")
		for i := range g.Improvements {
			tw.writef("[%s]\t%s:\t%s\n",
				g.Improvements[i].Priority,
				g.Improvements[i].Category,
				g.Improvements[i].Suggestion,
			)
		}
	}

	return tw.finish()
}

func printGradeHistoryTable(records []domain.GradeRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("GRADED\tSCORE\tGRADE\n")
	for i := range records {
		tw.writef("%s\t%d\t%s\n",
			records[i].GradedAt.Format("2006-01-02 15:04:05"),
			records[i].Score,
			records[i].Overall,
		)
	}
	return tw.finish()
}

func printTrackedTable(tracked []domain.TrackedListing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tETSY ID\tTHRESHOLD\tENABLED\tLAST GRADED\n")
	for i := range tracked {
		lastGraded := "-"
		if tracked[i].LastGradedAt != nil {
			lastGraded = tracked[i].LastGradedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%d\t%v\t%s\n",
			tracked[i].ID,
			tracked[i].Name,
			tracked[i].EtsyListingID,
			tracked[i].ScoreThreshold,
			tracked[i].Enabled,
			lastGraded,
		)
	}
	return tw.finish()
}

func printTrackedDetail(t *domain.TrackedListing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", t.ID)
	tw.writef("Name:\t%s\n", t.Name)
	tw.writef("Etsy ID:\t%s\n", t.EtsyListingID)
	tw.writef("Threshold:\t%d\n", t.ScoreThreshold)
	tw.writef("Enabled:\t%v\n", t.Enabled)
	if t.LastGradedAt != nil {
		tw.writef("Last Graded:\t%s\n", t.LastGradedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printAlertsTable(alerts []domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CREATED\tSCORE\tNOTIFIED\n")
	for i := range alerts {
		tw.writef("%s\t%d\t%v\n",
			alerts[i].CreatedAt.Format("2006-01-02 15:04:05"),
			alerts[i].Score,
			alerts[i].Notified,
		)
	}
	return tw.finish()
}

func printShopHealth(h *domain.ShopHealth) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Shop:\t%s\n", h.ShopID)
	tw.writef("Overall:\t%s (%d/100)\n", h.Overall, h.Score)

	if len(h.Issues) > 0 {
		tw.writef("\nISSUES\n")
		for i := range h.Issues {
			tw.writef("[%s]\t%s\n", h.Issues[i].Severity, h.Issues[i].Issue)
		}
	}

	if len(h.Recommendations) > 0 {
		tw.writef("\nRECOMMENDATIONS\n")
		for i := range h.Recommendations {
			tw.writef("[%s]\t%s:\t%s\n",
				h.Recommendations[i].Priority,
				h.Recommendations[i].Metric,
				h.Recommendations[i].Suggestion,
			)
		}
	}

	return tw.finish()
}

func printComparison(c *domain.ShopComparison) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Shop:\t%s (%s)\n", c.ShopID, c.Category)
	tw.writef("Competitors:\t%d\n", c.CompetitorCount)
	tw.writef("\nPERCENTILE RANKINGS\n")
	tw.writef("Sales:\tp%.0f\n", c.Rankings.Sales)
	tw.writef("Revenue:\tp%.0f\n", c.Rankings.Revenue)
	tw.writef("Conversion:\tp%.0f\n", c.Rankings.Conversion)
	tw.writef("SEO Score:\tp%.0f\n", c.Rankings.SEOScore)
	tw.writef("Rating:\tp%.0f\n", c.Rankings.Rating)

	if len(c.Gaps) > 0 {
		tw.writef("\nGAPS VS COMPETITORS\n")
		tw.writef("METRIC\tYOURS\tCOMPETITOR AVG\tSHORTFALL\n")
		for i := range c.Gaps {
			tw.writef("%s\t%.2f\t%.2f\t%.0f%%\n",
				c.Gaps[i].Metric,
				c.Gaps[i].Subject,
				c.Gaps[i].CompetitorAvg,
				c.Gaps[i].ShortfallPct,
			)
		}
	}

	return tw.finish()
}

func printShopsTable(shops []domain.ShopMetrics) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SHOP ID\tNAME\tCATEGORY\tLISTINGS\tSALES/MO\tRATING\n")
	for i := range shops {
		tw.writef("%s\t%s\t%s\t%d\t%d\t%.1f\n",
			shops[i].ShopID,
			shops[i].Name,
			shops[i].Category,
			shops[i].ActiveListings,
			shops[i].MonthlySales,
			shops[i].AvgRating,
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		errText := truncate(r.ErrorText, 40)
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			errText,
		)
	}
	return tw.finish()
}

func printQuota(q *apiclient.QuotaResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printSystemState(s *domain.SystemState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Listings:\t%d (%d ungraded)\n", s.ListingsTotal, s.ListingsUngraded)
	tw.writef("Grades:\t%d\n", s.GradesTotal)
	tw.writef("Tracked:\t%d (%d enabled)\n", s.TrackedTotal, s.TrackedEnabled)
	tw.writef("Pending Alerts:\t%d\n", s.AlertsPending)
	tw.writef("Avg Score:\t%.1f\n", s.AvgScore)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
