package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Pass rates at or above these bounds are drawn in the Good and Fair
// styles; anything lower is Poor.
const (
	GoodRate = 0.9
	FairRate = 0.5
)

// Theme styles the terminal summary of a stats run.
type Theme struct {
	Name string
	// Heading styles pattern labels and the total row of the group table.
	Heading lipgloss.Style
	// Subject styles renderer and group names.
	Subject lipgloss.Style
	// Count styles pass counts such as "12/40".
	Count lipgloss.Style
	// Dim styles ranks, percentages, zero cells and the empty bar track.
	Dim lipgloss.Style
	// Good, Fair and Poor color pass-rate bars and summary metrics.
	Good lipgloss.Style
	Fair lipgloss.Style
	Poor lipgloss.Style
	Glyphs Glyphs
}

// Glyphs are the characters a theme draws with.
type Glyphs struct {
	Ok    string
	Warn  string
	Fail  string
	Note  string
	Bar   string
	Track string
}

// RateStyle returns the style for a pass rate in [0, 1].
func (t Theme) RateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= GoodRate:
		return t.Good
	case rate >= FairRate:
		return t.Fair
	default:
		return t.Poor
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"orca":    OrcaTheme,
	"mono":    MonoTheme,
}

// DefaultTheme uses the 256-color palette with block bars.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Heading: lipgloss.NewStyle().Bold(true),
		Subject: fg("39"),
		Count:   fg("214"),
		Dim:     fg("242"),
		Good:    fg("34"),
		Fair:    fg("214"),
		Poor:    fg("196"),
		Glyphs:  Glyphs{Ok: "✓", Warn: "⚠", Fail: "✗", Note: "●", Bar: "█", Track: "░"},
	}
}

// OrcaTheme is a muted palette for light and dark backgrounds.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Heading: lipgloss.NewStyle().Bold(true),
		Subject: fg("75"),
		Count:   fg("179"),
		Dim:     fg("245"),
		Good:    fg("108"),
		Fair:    fg("179"),
		Poor:    fg("167"),
		Glyphs:  Glyphs{Ok: "✓", Warn: "!", Fail: "✗", Note: "·", Bar: "▇", Track: " "},
	}
}

// MonoTheme draws ASCII only and applies no color. It is selected when
// NO_COLOR is set.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Heading: lipgloss.NewStyle().Bold(true),
		Subject: plain,
		Count:   plain,
		Dim:     plain,
		Good:    plain,
		Fair:    plain,
		Poor:    plain,
		Glyphs:  Glyphs{Ok: "+", Warn: "!", Fail: "x", Note: "*", Bar: "#", Track: "."},
	}
}

// ThemeByName returns the named theme, or DefaultTheme for unknown names.
func ThemeByName(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme()
	}
	return DefaultTheme()
}

// ThemeNames lists the known theme names in lexical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
