package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupTable_Totals(t *testing.T) {
	g := &GroupTable{
		Columns: []string{"a", "b"},
		Rows: []GroupTableRow{
			{Name: "x", Values: []int{1, 2}},
			{Name: "y", Values: []int{3, 4}},
			{Name: "short", Values: []int{5}},
		},
	}
	assert.Equal(t, []int{9, 6}, g.Totals())
}

func TestLeaderboard_Fraction(t *testing.T) {
	l := &Leaderboard{TotalCount: 4}
	assert.InDelta(t, 0.75, l.Fraction(LeaderboardItem{Value: 3}), 1e-9)

	empty := &Leaderboard{}
	assert.Zero(t, empty.Fraction(LeaderboardItem{Value: 3}))
}

func TestPatternTypes(t *testing.T) {
	patterns := []Pattern{&Summary{}, &Leaderboard{}, &GroupTable{}}
	want := []PatternType{PatternTypeSummary, PatternTypeLeaderboard, PatternTypeGroupTable}
	for i, p := range patterns {
		assert.Equal(t, want[i], p.Type())
	}
}
