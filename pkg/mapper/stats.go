package mapper

import (
	"fmt"
	"sort"

	"github.com/dkoosis/svgstats/internal/stats"
	"github.com/dkoosis/svgstats/pkg/pattern"
)

const (
	kindSuccess = "success"
	kindWarning = "warning"
	kindInfo    = "info"
)

// FromStats converts a run report into patterns: a run summary, a
// leaderboard of renderers by pass count, and the per-group table.
// renderers are the display names of the result slots.
func FromStats(report *stats.Report, renderers []string) []pattern.Pattern {
	tally := report.Tally
	return []pattern.Pattern{
		runSummary(report),
		leaderboard(tally, renderers),
		groupTable(tally, renderers),
	}
}

func runSummary(report *stats.Report) *pattern.Summary {
	tally := report.Tally
	kind := pattern.SummaryKindRun
	label := fmt.Sprintf("STATS: %d tests", tally.Total)
	if report.Subset {
		kind = pattern.SummaryKindSubset
		label += " (SVG 2 subset)"
	}

	metrics := []pattern.SummaryItem{
		{Label: "Rows read", Value: fmt.Sprintf("%d", report.Rows), Kind: kindInfo},
		{Label: "Considered", Value: fmt.Sprintf("%d", tally.Total), Kind: kindSuccess},
		{Label: "Unknown", Value: fmt.Sprintf("%d", tally.Skipped), Kind: kindInfo},
	}
	if report.Subset {
		metrics = append(metrics,
			pattern.SummaryItem{Label: "Subset documents", Value: fmt.Sprintf("%d", report.FilterSize), Kind: kindInfo},
			pattern.SummaryItem{Label: "Filtered out", Value: fmt.Sprintf("%d", tally.Filtered), Kind: kindInfo},
		)
	}
	metrics = append(metrics,
		pattern.SummaryItem{Label: "Chart", Value: report.ChartPath, Kind: kindSuccess},
		pattern.SummaryItem{Label: "Groups", Value: report.GroupsPath, Kind: kindSuccess},
	)
	if report.ImageWritten {
		metrics = append(metrics, pattern.SummaryItem{Label: "Image", Value: report.ImagePath, Kind: kindSuccess})
	} else {
		metrics = append(metrics, pattern.SummaryItem{Label: "Image", Value: "not rendered", Kind: kindWarning})
	}

	return &pattern.Summary{Label: label, Kind: kind, Metrics: metrics}
}

func leaderboard(tally *stats.Tally, renderers []string) *pattern.Leaderboard {
	items := make([]pattern.LeaderboardItem, 0, len(renderers))
	for slot, name := range renderers {
		passed := tally.Overall[slot]
		item := pattern.LeaderboardItem{
			Name:   name,
			Metric: fmt.Sprintf("%d/%d", passed, tally.Total),
			Value:  float64(passed),
		}
		if tally.Total > 0 {
			item.Context = fmt.Sprintf("%.1f%%", 100*float64(passed)/float64(tally.Total))
		}
		items = append(items, item)
	}
	// Stable: equal counts keep column order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})
	for i := range items {
		items[i].Rank = i + 1
	}

	return &pattern.Leaderboard{
		Label:      "Tests passed",
		MetricName: "Passed",
		Items:      items,
		TotalCount: tally.Total,
		ShowRank:   true,
	}
}

func groupTable(tally *stats.Tally, renderers []string) *pattern.GroupTable {
	names := tally.Groups.Names()
	rows := make([]pattern.GroupTableRow, 0, len(names))
	for _, name := range names {
		counts := tally.Groups.Get(name)
		values := make([]int, len(renderers))
		copy(values, counts[:])
		rows = append(rows, pattern.GroupTableRow{Name: name, Values: values})
	}
	return &pattern.GroupTable{
		Label:   "Passed by group",
		Columns: append([]string(nil), renderers...),
		Rows:    rows,
	}
}
