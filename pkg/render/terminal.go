package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/svgstats/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.GroupTable:
		return t.renderGroupTable(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Heading.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if l.Label != "" {
		sb.WriteString(t.theme.Heading.Render(l.Label))
		sb.WriteString("\n")
	}

	maxName, maxMetric := 0, 0
	for _, item := range l.Items {
		maxName = max(maxName, runewidth.StringWidth(item.Name))
		maxMetric = max(maxMetric, runewidth.StringWidth(item.Metric))
	}
	maxName = min(maxName, 40)

	// rank + name + metric + context + gaps
	barWidth := t.width - maxName - maxMetric - 20
	barWidth = max(min(barWidth, 40), 0)

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Dim.Render(fmt.Sprintf("%d. ", item.Rank)))
		}
		sb.WriteString(t.theme.Subject.Render(padRight(runewidth.Truncate(item.Name, maxName, "..."), maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Count.Render(padLeft(item.Metric, maxMetric)))
		rate := l.Fraction(item)
		if barWidth > 0 {
			sb.WriteString("  ")
			sb.WriteString(t.bar(rate, barWidth))
		}
		if item.Context != "" {
			sb.WriteString(" ")
			sb.WriteString(t.theme.RateStyle(rate).Render(item.Context))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) bar(fraction float64, width int) string {
	fraction = max(min(fraction, 1), 0)
	filled := int(fraction*float64(width) + 0.5)
	return t.theme.RateStyle(fraction).Render(strings.Repeat(t.theme.Glyphs.Bar, filled)) +
		t.theme.Dim.Render(strings.Repeat(t.theme.Glyphs.Track, width-filled))
}

func (t *Terminal) renderGroupTable(g *pattern.GroupTable) string {
	if len(g.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	if g.Label != "" {
		sb.WriteString(t.theme.Heading.Render(g.Label))
		sb.WriteString("\n")
	}

	nameWidth := runewidth.StringWidth("total")
	for _, row := range g.Rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(row.Name))
	}
	colWidths := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		colWidths[i] = runewidth.StringWidth(col)
	}

	sb.WriteString("  " + padRight("", nameWidth))
	for i, col := range g.Columns {
		sb.WriteString("  " + t.theme.Subject.Render(padLeft(col, colWidths[i])))
	}
	sb.WriteString("\n")

	for _, row := range g.Rows {
		sb.WriteString("  " + t.theme.Subject.Render(padRight(row.Name, nameWidth)))
		for i, v := range row.Values {
			if i >= len(colWidths) {
				break
			}
			cell := padLeft(fmt.Sprintf("%d", v), colWidths[i])
			if v == 0 {
				cell = t.theme.Dim.Render(cell)
			}
			sb.WriteString("  " + cell)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  " + t.theme.Heading.Render(padRight("total", nameWidth)))
	for i, v := range g.Totals() {
		sb.WriteString("  " + t.theme.Heading.Render(padLeft(fmt.Sprintf("%d", v), colWidths[i])))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Glyphs.Ok, t.theme.Good
	case "error":
		return t.theme.Glyphs.Fail, t.theme.Poor
	case "warning":
		return t.theme.Glyphs.Warn, t.theme.Fair
	default:
		return t.theme.Glyphs.Note, t.theme.Subject
	}
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
