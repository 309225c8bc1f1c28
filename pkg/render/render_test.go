package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/svgstats/pkg/pattern"
)

func samplePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label: "STATS: 2 tests",
			Kind:  pattern.SummaryKindRun,
			Metrics: []pattern.SummaryItem{
				{Label: "Considered", Value: "2", Kind: "success"},
				{Label: "Image", Value: "not rendered", Kind: "warning"},
			},
		},
		&pattern.Leaderboard{
			Label:      "Tests passed",
			MetricName: "Passed",
			TotalCount: 2,
			ShowRank:   true,
			Items: []pattern.LeaderboardItem{
				{Name: "EchoSVG 1.2.2", Metric: "2/2", Value: 2, Rank: 1, Context: "100.0%"},
				{Name: "Batik 1.17", Metric: "1/2", Value: 1, Rank: 2, Context: "50.0%"},
			},
		},
		&pattern.GroupTable{
			Label:   "Passed by group",
			Columns: []string{"Batik 1.17", "EchoSVG 1.2.2"},
			Rows: []pattern.GroupTableRow{
				{Name: "a", Values: []int{1, 1}},
				{Name: "b", Values: []int{0, 1}},
			},
		},
	}
}

func TestTerminal_RenderStatsPatterns(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(samplePatterns())

	for _, want := range []string{"STATS: 2 tests", "! Image: not rendered", "1. EchoSVG 1.2.2", "100.0%", "Passed by group", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "##########") {
		t.Errorf("expected full bar for 2/2:\n%s", out)
	}
}

func TestTerminal_GroupTableAlignsColumns(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(samplePatterns()[2:])
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected label, header, 2 rows, total; got %d lines:\n%s", len(lines), out)
	}
	header, rowB := lines[1], lines[3]
	if got, want := len(rowB), len(header); got != want {
		t.Errorf("row width %d != header width %d:\n%s", got, want, out)
	}
	if !strings.HasSuffix(lines[4], "1"+strings.Repeat(" ", 14)+"2") {
		t.Errorf("unexpected totals line %q", lines[4])
	}
}

func TestTerminal_NarrowWidthDropsBars(t *testing.T) {
	out := NewTerminal(MonoTheme(), 20).Render(samplePatterns()[1:2])
	if strings.Contains(out, "#") {
		t.Errorf("expected no bars at width 20:\n%s", out)
	}
}

func TestTerminal_EmptyPatternsRenderNothing(t *testing.T) {
	out := NewTerminal(DefaultTheme(), 80).Render([]pattern.Pattern{
		&pattern.Leaderboard{Label: "empty"},
		&pattern.GroupTable{Label: "empty"},
	})
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestLLM_RenderStats(t *testing.T) {
	out := NewLLM().Render(samplePatterns())

	want := `SCOPE: STATS: 2 tests
  Considered: 2
  WARN Image: not rendered

## Tests passed
  1. EchoSVG 1.2.2 2/2 (100.0%)
  2. Batik 1.17 1/2 (50.0%)

## Passed by group
group	Batik 1.17	EchoSVG 1.2.2
a	1	1
b	0	1
total	1	2
`
	if out != want {
		t.Errorf("LLM output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
	if strings.Contains(out, "\033[") {
		t.Error("LLM output contains ANSI escape codes")
	}
}

func TestJSON_RenderStats(t *testing.T) {
	out := NewJSON().Render(samplePatterns())

	var decoded struct {
		Version  string `json:"version"`
		Tool     string `json:"tool"`
		Patterns []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"patterns"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if !strings.HasPrefix(decoded.Tool, "svgstats ") {
		t.Errorf("unexpected tool %q", decoded.Tool)
	}
	if len(decoded.Patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(decoded.Patterns))
	}
	if decoded.Patterns[2].Type != "group-table" {
		t.Errorf("expected group-table, got %q", decoded.Patterns[2].Type)
	}
	var table pattern.GroupTable
	if err := json.Unmarshal(decoded.Patterns[2].Data, &table); err != nil {
		t.Fatalf("group table: %v", err)
	}
	if len(table.Rows) != 2 || table.Rows[1].Name != "b" || table.Rows[1].Values[1] != 1 {
		t.Errorf("unexpected group rows %+v", table.Rows)
	}
}

func TestThemeByName(t *testing.T) {
	for name, want := range map[string]string{"orca": "orca", "mono": "mono", "": "default", "other": "default"} {
		if got := ThemeByName(name).Name; got != want {
			t.Errorf("ThemeByName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestThemeNames(t *testing.T) {
	got := strings.Join(ThemeNames(), ",")
	if got != "default,mono,orca" {
		t.Errorf("ThemeNames() = %q", got)
	}
}

func TestTheme_RateStyleBands(t *testing.T) {
	theme := DefaultTheme()
	tests := []struct {
		rate float64
		want lipgloss.Style
	}{
		{1, theme.Good},
		{GoodRate, theme.Good},
		{0.89, theme.Fair},
		{FairRate, theme.Fair},
		{0.49, theme.Poor},
		{0, theme.Poor},
	}
	for _, tt := range tests {
		got := theme.RateStyle(tt.rate).GetForeground()
		if got != tt.want.GetForeground() {
			t.Errorf("RateStyle(%v) foreground = %v, want %v", tt.rate, got, tt.want.GetForeground())
		}
	}
}
