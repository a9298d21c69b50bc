package probacheck

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-proba/table"
)

// commonChecks runs the layout-independent structural checks shared by both
// layouts, in order: the candidate is a table, column keys are unique, every
// column is numeric, and the row index is sorted non-decreasing. It returns
// the frame, the metadata accumulated so far, and the first failure message
// (empty on success).
//
// is_empty is computed here, before validity is established, because it does
// not gate validity: callers may learn a table is empty even if a later check
// rejects it. It is still only surfaced on success, since a rejection carries
// no metadata.
func commonChecks(obj any, req MetadataRequest, name string) (table.Frame, map[string]bool, string) {
	frame, ok := obj.(table.Frame)
	if !ok {
		return nil, nil, fmt.Sprintf("%s should be a table", name)
	}

	metadata := make(map[string]bool)
	if req.Needs(FieldIsEmpty) {
		metadata[FieldIsEmpty] = frame.NumRows() < 1 || frame.NumCols() < 1
	}

	keys := frame.Keys()
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[i].Equal(keys[j]) {
				return nil, nil, "column indices must be unique"
			}
		}
	}

	if offending := nonNumericColumns(frame); len(offending) > 0 {
		return nil, nil, fmt.Sprintf(
			"%s should only have numeric dtype columns, but found dtypes [%s]",
			name, strings.Join(offending, ", "))
	}

	index := frame.RowIndex()
	if !index.IsSortedNonDecreasing() {
		return nil, nil, fmt.Sprintf(
			"the (time) index of %s must be sorted monotonically increasing, but found: %s",
			name, index)
	}

	return frame, metadata, ""
}

// nonNumericColumns lists every offending column as "key: dtype", in column
// order, for the non-numeric rejection message.
func nonNumericColumns(frame table.Frame) []string {
	var offending []string

	for i := 0; i < frame.NumCols(); i++ {
		col := frame.ColumnAt(i)
		if !col.IsNumeric() {
			offending = append(offending, fmt.Sprintf("%s: %s", col.Key(), col.Dtype()))
		}
	}

	return offending
}

// levelInUnitInterval reports whether every value of the given key level is
// numeric and within [0, 1] inclusive.
func levelInUnitInterval(frame table.Frame, level int) bool {
	for _, value := range table.LevelValues(frame, level) {
		v, ok := table.NumericValue(value)
		if !ok {
			return false
		}

		if v < 0 || v > 1 {
			return false
		}
	}

	return true
}

// distinctLevelValues counts the distinct values of the given key level
// across all columns. Values are distinguished by dynamic type and printed
// form.
func distinctLevelValues(frame table.Frame, level int) int {
	seen := make(map[string]struct{})

	for _, value := range table.LevelValues(frame, level) {
		seen[fmt.Sprintf("%T:%v", value, value)] = struct{}{}
	}

	return len(seen)
}

// successMetadata computes the metadata fields that are only defined for
// valid tables: the whole-table NaN scan and the univariate flag, each only
// when requested.
func successMetadata(frame table.Frame, req MetadataRequest, metadata map[string]bool) map[string]bool {
	if req.Needs(FieldHasNaNs) {
		metadata[FieldHasNaNs] = table.HasNaNs(frame)
	}

	if req.Needs(FieldIsUnivariate) {
		metadata[FieldIsUnivariate] = distinctLevelValues(frame, 0) == 1
	}

	return metadata
}

// displayName falls back to DefaultName for an empty caller-supplied name.
func displayName(name string) string {
	if name == "" {
		return DefaultName
	}

	return name
}
