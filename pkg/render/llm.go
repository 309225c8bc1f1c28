package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/svgstats/pkg/pattern"
)

// LLM renders patterns as terse plain text for logs, pipes and AI
// consumption. Zero ANSI codes; tab-separated tables.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		case *pattern.GroupTable:
			l.renderGroupTable(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	for _, m := range s.Metrics {
		prefix := "  "
		if m.Kind == "warning" {
			prefix = "  WARN "
		}
		sb.WriteString(prefix + m.Label + ": " + m.Value + "\n")
	}
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	if len(lb.Items) == 0 {
		return
	}
	sb.WriteString("\n## " + lb.Label + "\n")
	for _, item := range lb.Items {
		line := fmt.Sprintf("  %d. %s %s", item.Rank, item.Name, item.Metric)
		if item.Context != "" {
			line += " (" + item.Context + ")"
		}
		sb.WriteString(line + "\n")
	}
}

func (l *LLM) renderGroupTable(sb *strings.Builder, g *pattern.GroupTable) {
	if len(g.Rows) == 0 {
		return
	}
	sb.WriteString("\n## " + g.Label + "\n")
	sb.WriteString("group\t" + strings.Join(g.Columns, "\t") + "\n")
	for _, row := range g.Rows {
		sb.WriteString(row.Name)
		for _, v := range row.Values {
			sb.WriteString(fmt.Sprintf("\t%d", v))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("total")
	for _, v := range g.Totals() {
		sb.WriteString(fmt.Sprintf("\t%d", v))
	}
	sb.WriteString("\n")
}
