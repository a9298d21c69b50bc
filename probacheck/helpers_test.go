package probacheck

import (
	"testing"

	"github.com/amp-labs/amp-proba/table"
)

// quantileTable builds the canonical valid quantile fixture: sorted index
// [0 1 2], columns (y, 0.1) and (y, 0.9), all numeric, no missing cells.
func quantileTable(t *testing.T) *table.Table {
	t.Helper()

	return table.MustNew(table.IntIndex{0, 1, 2},
		table.NewColumn(table.QuantileKey("y", 0.1), 1.0, 2.0, 3.0),
		table.NewColumn(table.QuantileKey("y", 0.9), 4.0, 5.0, 6.0))
}

// intervalTable builds the canonical valid interval fixture: sorted index
// [0 1 2], columns (y, 0.9, lower) and (y, 0.9, upper).
func intervalTable(t *testing.T) *table.Table {
	t.Helper()

	return table.MustNew(table.IntIndex{0, 1, 2},
		table.NewColumn(table.IntervalKey("y", 0.9, SideLower), 1.0, 2.0, 3.0),
		table.NewColumn(table.IntervalKey("y", 0.9, SideUpper), 4.0, 5.0, 6.0))
}
