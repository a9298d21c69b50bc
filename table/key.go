package table

import (
	"fmt"
	"strings"
)

// Key is a composite column key: an ordered sequence of levels with a fixed
// arity per table layout. The quantile layout uses two levels (variable name,
// alpha); the interval layout uses three (variable name, coverage, bound side).
//
// Levels are held as opaque values so that malformed keys (wrong arity,
// non-numeric numeric levels) can be represented and then rejected by the
// checkers, rather than being unrepresentable.
type Key struct {
	levels []any
}

// NewKey creates a composite key from the given levels, in order.
func NewKey(levels ...any) Key {
	copied := make([]any, len(levels))
	copy(copied, levels)

	return Key{levels: copied}
}

// QuantileKey creates a well-formed two-level key for the quantile layout.
func QuantileKey(variable string, alpha float64) Key {
	return NewKey(variable, alpha)
}

// IntervalKey creates a well-formed three-level key for the interval layout.
// The side should be "lower" or "upper"; other values are representable but
// will be rejected by the interval checker.
func IntervalKey(variable string, coverage float64, side string) Key {
	return NewKey(variable, coverage, side)
}

// Arity returns the number of levels in the key.
func (k Key) Arity() int {
	return len(k.levels)
}

// Level returns the value at the given level, or nil if the level does not
// exist. Levels are zero-based.
func (k Key) Level(i int) any {
	if i < 0 || i >= len(k.levels) {
		return nil
	}

	return k.levels[i]
}

// Equal reports whether two keys have the same arity and the same value,
// including its dynamic type, at every level.
func (k Key) Equal(other Key) bool {
	return k.canonical() == other.canonical()
}

// String renders the key as a parenthesized tuple, e.g. "(y, 0.1)".
func (k Key) String() string {
	parts := make([]string, len(k.levels))
	for i, level := range k.levels {
		parts[i] = fmt.Sprint(level)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// canonical returns a type-qualified encoding of the key, used for equality
// and uniqueness checks. Two keys collide only if every level has the same
// dynamic type and printed value.
func (k Key) canonical() string {
	var sb strings.Builder

	for i, level := range k.levels {
		if i > 0 {
			sb.WriteByte('\x1f')
		}

		fmt.Fprintf(&sb, "%T:%v", level, level)
	}

	return sb.String()
}
