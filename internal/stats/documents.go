package stats

import (
	"github.com/dkoosis/svgstats/internal/config"
	"github.com/dkoosis/svgstats/pkg/chart"
)

// ChartDocument builds the barh descriptor for the overall counts. The
// axis maximum is the number of rows considered.
func ChartDocument(cfg config.Config, t *Tally) (*chart.Barh, error) {
	style := chart.Style{
		FontFamily:      cfg.Chart.FontFamily,
		FontSize:        cfg.Chart.FontSize,
		AxisTitle:       cfg.Chart.AxisTitle,
		Width:           cfg.Chart.Width,
		RoundTickValues: cfg.Chart.RoundTickValues,
	}
	return chart.NewBarh(style, cfg.Renderers, t.Overall.Values(), t.Total)
}

// GroupsDocument builds the per-group document: one object per group, in
// first-seen order, mapping renderer names to pass counts.
func GroupsDocument(cfg config.Config, t *Tally) chart.Groups {
	names := t.Groups.Names()
	groups := make(chart.Groups, 0, len(names))
	for _, name := range names {
		counts := t.Groups.Get(name)
		obj := make(chart.Object, len(cfg.Renderers))
		for slot, renderer := range cfg.Renderers {
			obj[slot] = chart.Item{Name: renderer, Value: counts[slot]}
		}
		groups = append(groups, chart.Group{Name: name, Counts: obj})
	}
	return groups
}
