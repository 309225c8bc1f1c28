// Package stats aggregates renderer results into pass counts.
package stats

import (
	"github.com/dkoosis/svgstats/internal/results"
)

// Counts holds one pass count per renderer slot.
type Counts [results.Slots]int

// Values returns the counts as a slice.
func (c Counts) Values() []int {
	return c[:]
}

// GroupTally maps group names to pass counts. A group that has not been
// touched reads as zero counts. Names iterates in first-seen order.
type GroupTally struct {
	order  []string
	counts map[string]*Counts
}

// NewGroupTally returns an empty tally.
func NewGroupTally() *GroupTally {
	return &GroupTally{counts: make(map[string]*Counts)}
}

// At returns the counts of group, creating a zeroed entry on first access.
func (g *GroupTally) At(group string) *Counts {
	c, ok := g.counts[group]
	if !ok {
		c = new(Counts)
		g.counts[group] = c
		g.order = append(g.order, group)
	}
	return c
}

// Get returns a copy of the counts of group without creating it.
func (g *GroupTally) Get(group string) Counts {
	if c, ok := g.counts[group]; ok {
		return *c
	}
	return Counts{}
}

// Names returns the group names in first-seen order.
func (g *GroupTally) Names() []string {
	return append([]string(nil), g.order...)
}

// Len returns the number of groups.
func (g *GroupTally) Len() int { return len(g.order) }

// Tally is the result of one aggregation.
type Tally struct {
	// Overall is the pass count per renderer across every considered row.
	Overall Counts
	// Total is the number of rows considered.
	Total int
	// Groups holds the same counts split by group.
	Groups *GroupTally
	// Skipped counts rows dropped because of an unknown first outcome.
	Skipped int
	// Filtered counts rows dropped by the subset filter.
	Filtered int
}

// Filter decides whether a row identifier takes part in the tally.
type Filter interface {
	Contains(id string) bool
}

// Aggregate tallies rows. With a non-nil filter, rows whose identifier is
// not in it are ignored. Rows whose first outcome is Unknown are ignored
// entirely; every other row adds to Total and, for each Passed slot, to
// the overall and group counts. A group appears only once one of its rows
// passes, so groups without passes are absent and Groups orders by first
// pass.
func Aggregate(rows []results.Row, filter Filter) *Tally {
	t := &Tally{Groups: NewGroupTally()}
	for _, row := range rows {
		if filter != nil && !filter.Contains(row.Name) {
			t.Filtered++
			continue
		}
		if row.Outcomes[0] == results.Unknown {
			t.Skipped++
			continue
		}
		t.Total++
		for slot, outcome := range row.Outcomes {
			if outcome == results.Passed {
				t.Overall[slot]++
				t.Groups.At(row.Group())[slot]++
			}
		}
	}
	return t
}
