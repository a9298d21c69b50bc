package table

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by New when a column's cell count does not
// match the row index length.
var ErrLengthMismatch = errors.New("column length does not match index length")

// Frame is the capability a candidate object must provide to be considered a
// two-dimensional labeled table at all. The checkers assert candidates against
// this interface instead of a concrete type, so callers may supply their own
// table implementations.
type Frame interface {
	// RowIndex returns the row index.
	RowIndex() Index

	// NumRows returns the number of rows.
	NumRows() int

	// NumCols returns the number of columns.
	NumCols() int

	// Keys returns the composite column keys, in column order.
	Keys() []Key

	// ColumnAt returns the column at the given position.
	ColumnAt(i int) Column
}

// Table is the concrete Frame used throughout this module. It is immutable
// after construction and therefore safe for concurrent readers.
type Table struct {
	index   Index
	columns []Column
}

var _ Frame = (*Table)(nil)

// New creates a table from a row index and columns. Every column must have
// exactly as many cells as the index has labels.
func New(index Index, columns ...Column) (*Table, error) {
	for _, col := range columns {
		if col.Len() != index.Len() {
			return nil, fmt.Errorf("%w: column %s has %d cells, index has %d labels",
				ErrLengthMismatch, col.Key(), col.Len(), index.Len())
		}
	}

	copied := make([]Column, len(columns))
	copy(copied, columns)

	return &Table{index: index, columns: copied}, nil
}

// MustNew is New for statically-known shapes, panicking on length mismatch.
// Intended for tests and fixtures.
func MustNew(index Index, columns ...Column) *Table {
	t, err := New(index, columns...)
	if err != nil {
		panic(err)
	}

	return t
}

// RowIndex returns the row index.
func (t *Table) RowIndex() Index {
	return t.index
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.index.Len()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// Keys returns the composite column keys, in column order.
func (t *Table) Keys() []Key {
	keys := make([]Key, len(t.columns))
	for i, col := range t.columns {
		keys[i] = col.Key()
	}

	return keys
}

// ColumnAt returns the column at the given position. Panics if out of range,
// like a slice access.
func (t *Table) ColumnAt(i int) Column {
	return t.columns[i]
}

// LevelValues projects the given key level across all columns, in column
// order. Columns whose key does not have the level contribute nil.
func LevelValues(f Frame, level int) []any {
	keys := f.Keys()
	values := make([]any, len(keys))

	for i, key := range keys {
		values[i] = key.Level(level)
	}

	return values
}

// HasNaNs reports whether any cell in the frame is missing.
func HasNaNs(f Frame) bool {
	for i := 0; i < f.NumCols(); i++ {
		if f.ColumnAt(i).HasNaNs() {
			return true
		}
	}

	return false
}
