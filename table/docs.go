// Package table provides a minimal in-memory labeled two-dimensional table:
// rows are addressed by an ordered Index, columns by composite Keys with a
// fixed number of levels per layout.
//
// The package deliberately models only what the probabilistic-forecast
// checkers need to inspect: row ordering, column-key structure, cell dtypes,
// and missing values. It is not a general dataframe engine and performs no
// serialization or layout conversion.
//
// Candidate objects are treated as read-only. Nothing in this package mutates
// a Table after construction, so a Table may be shared freely across
// goroutines.
package table
