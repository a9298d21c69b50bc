package table

import (
	"fmt"
	"time"
)

// Index is the capability a row index must provide for validation: a length,
// an ordering check, and a printable form for error messages. Concrete
// implementations are provided for the common time-like label types.
type Index interface {
	// Len returns the number of row labels.
	Len() int

	// IsSortedNonDecreasing reports whether the labels are sorted in
	// non-decreasing order. An index of length zero or one is sorted.
	IsSortedNonDecreasing() bool

	// Labels returns the row labels as opaque values, in order.
	Labels() []any

	// String renders the labels for inclusion in error messages.
	String() string
}

// IntIndex is a row index of integer labels, typically step counts.
type IntIndex []int64

var _ Index = IntIndex(nil)

func (ix IntIndex) Len() int {
	return len(ix)
}

func (ix IntIndex) IsSortedNonDecreasing() bool {
	for i := 1; i < len(ix); i++ {
		if ix[i-1] > ix[i] {
			return false
		}
	}

	return true
}

func (ix IntIndex) Labels() []any {
	return labelsOf(ix)
}

func (ix IntIndex) String() string {
	return fmt.Sprint([]int64(ix))
}

// FloatIndex is a row index of float labels. A NaN label breaks ordering,
// since NaN is not ordered with respect to any value.
type FloatIndex []float64

var _ Index = FloatIndex(nil)

func (ix FloatIndex) Len() int {
	return len(ix)
}

func (ix FloatIndex) IsSortedNonDecreasing() bool {
	for i := 1; i < len(ix); i++ {
		// NaN comparisons are false, so a NaN anywhere fails the check.
		if !(ix[i-1] <= ix[i]) {
			return false
		}
	}

	return true
}

func (ix FloatIndex) Labels() []any {
	return labelsOf(ix)
}

func (ix FloatIndex) String() string {
	return fmt.Sprint([]float64(ix))
}

// StringIndex is a row index of string labels, ordered lexicographically.
type StringIndex []string

var _ Index = StringIndex(nil)

func (ix StringIndex) Len() int {
	return len(ix)
}

func (ix StringIndex) IsSortedNonDecreasing() bool {
	for i := 1; i < len(ix); i++ {
		if ix[i-1] > ix[i] {
			return false
		}
	}

	return true
}

func (ix StringIndex) Labels() []any {
	return labelsOf(ix)
}

func (ix StringIndex) String() string {
	return fmt.Sprint([]string(ix))
}

// TimeIndex is a row index of timestamps.
type TimeIndex []time.Time

var _ Index = TimeIndex(nil)

func (ix TimeIndex) Len() int {
	return len(ix)
}

func (ix TimeIndex) IsSortedNonDecreasing() bool {
	for i := 1; i < len(ix); i++ {
		if ix[i-1].After(ix[i]) {
			return false
		}
	}

	return true
}

func (ix TimeIndex) Labels() []any {
	return labelsOf(ix)
}

func (ix TimeIndex) String() string {
	return fmt.Sprint([]time.Time(ix))
}

// labelsOf boxes a typed label slice into []any.
func labelsOf[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
