package table

import (
	"math"
)

// Column is a single labeled column: a composite key plus its cell values.
// Cells are held as opaque values so that non-numeric columns can be
// represented and rejected by the checkers.
type Column struct {
	key   Key
	cells []any
}

// NewColumn creates a column with the given key and cell values, in row order.
func NewColumn(key Key, cells ...any) Column {
	copied := make([]any, len(cells))
	copy(copied, cells)

	return Column{key: key, cells: copied}
}

// Key returns the column's composite key.
func (c Column) Key() Key {
	return c.key
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	return len(c.cells)
}

// Cell returns the value at the given row, or nil if out of range.
func (c Column) Cell(i int) any {
	if i < 0 || i >= len(c.cells) {
		return nil
	}

	return c.cells[i]
}

// IsNumeric reports whether every cell holds a numeric value. Missing cells
// (nil, or a float NaN) count as numeric-missing, matching the convention of
// numeric dataframes where NaN lives in float columns. An empty column is
// numeric.
func (c Column) IsNumeric() bool {
	for _, cell := range c.cells {
		if cell == nil {
			continue
		}

		if !isNumericValue(cell) {
			return false
		}
	}

	return true
}

// HasNaNs reports whether any cell is missing: nil, or a float NaN.
func (c Column) HasNaNs() bool {
	for _, cell := range c.cells {
		if cell == nil {
			return true
		}

		if f, ok := asFloat(cell); ok && math.IsNaN(f) {
			return true
		}
	}

	return false
}

// Dtype summarizes the cell types for error messages: "int64", "float64",
// "string", "bool", "mixed", or "empty". Missing cells are ignored; an
// all-missing or zero-length column reports "empty".
func (c Column) Dtype() string {
	dtype := ""

	for _, cell := range c.cells {
		if cell == nil {
			continue
		}

		kind := kindOf(cell)
		if dtype == "" {
			dtype = kind

			continue
		}

		if dtype != kind {
			// Int and float cells coexist as a numeric column.
			if (dtype == "int64" && kind == "float64") || (dtype == "float64" && kind == "int64") {
				dtype = "float64"

				continue
			}

			return "mixed"
		}
	}

	if dtype == "" {
		return "empty"
	}

	return dtype
}

// isNumericValue reports whether the value is of any integer or float kind.
func isNumericValue(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// NumericValue converts any integer or float value to float64. It reports
// false for nil and for non-numeric values.
func NumericValue(v any) (float64, bool) {
	return asFloat(v)
}

// asFloat converts any numeric value to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// kindOf buckets a cell value into a dtype family name.
func kindOf(v any) string {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int64"
	case float32, float64:
		return "float64"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "object"
	}
}
