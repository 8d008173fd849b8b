// Package report renders the aggregated stats as a plain-text table and
// computes summary figures over the result rows.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/orgstats/org-stats/internal/domain"
)

const (
	rowFormat      = "%-20s %-15d %-15d\n"
	headerFormat   = "%-20s %-15s %-15s\n"
	separatorWidth = 50
)

// Render writes the report table: header, one row per label in the given
// order, a separator, and a TOTAL row summing all rows element-wise.
func Render(w io.Writer, rows []domain.Row) {
	fmt.Fprintf(w, headerFormat, "Organization", "Repositories", "Total Stars")
	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))

	var total domain.Stats
	for _, row := range rows {
		fmt.Fprintf(w, rowFormat, row.Label, row.Repos, row.Stars)
		total.Add(row.Stats)
	}

	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
	fmt.Fprintf(w, rowFormat, "TOTAL", total.Repos, total.Stars)
}

// Summary describes the star distribution across report rows.
type Summary struct {
	MeanStars   float64
	MedianStars float64
	MaxStars    float64
}

// Summarize computes the star distribution over the given rows.
// An empty row set yields a zero summary.
func Summarize(rows []domain.Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	starCounts := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		starCounts = append(starCounts, float64(row.Stars))
	}
	mean, _ := stats.Mean(starCounts)
	median, _ := stats.Median(starCounts)
	max, _ := stats.Max(starCounts)
	return Summary{MeanStars: mean, MedianStars: median, MaxStars: max}
}
