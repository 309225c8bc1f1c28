package pattern

// GroupTable is a matrix of counts: one row per group, one column per
// renderer.
type GroupTable struct {
	Label   string
	Columns []string
	Rows    []GroupTableRow
}

// GroupTableRow holds one group's counts, aligned with GroupTable.Columns.
type GroupTableRow struct {
	Name   string
	Values []int
}

// Totals returns the column sums.
func (g *GroupTable) Totals() []int {
	totals := make([]int, len(g.Columns))
	for _, row := range g.Rows {
		for i, v := range row.Values {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

func (g *GroupTable) Type() PatternType { return PatternTypeGroupTable }
