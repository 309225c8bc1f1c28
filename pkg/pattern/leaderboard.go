package pattern

// Leaderboard represents a ranked list of items by metric.
type Leaderboard struct {
	Label      string
	MetricName string // e.g., "Passed"
	Items      []LeaderboardItem
	TotalCount int // denominator for Fraction, e.g. tests considered
	ShowRank   bool
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name    string  // display name
	Metric  string  // formatted value (e.g., "812/1500")
	Value   float64 // numeric value for sorting
	Rank    int
	Context string // optional extra context, e.g. "54.1%"
}

// Fraction returns Value relative to TotalCount, or 0 when there is no total.
func (l *Leaderboard) Fraction(item LeaderboardItem) float64 {
	if l.TotalCount <= 0 {
		return 0
	}
	return item.Value / float64(l.TotalCount)
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
