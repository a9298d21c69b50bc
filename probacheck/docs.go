// Package probacheck validates tabular probabilistic forecast representations.
//
// Two layouts are recognized. The quantile layout carries, per time step, a
// set of quantile forecasts: columns are two-level composite keys of
// (variable name, alpha), with alpha numeric in [0, 1]. The interval layout
// carries lower/upper bounds of prediction intervals: columns are three-level
// composite keys of (variable name, coverage, side), with coverage numeric in
// [0, 1] and side one of "lower" or "upper". Rows of both layouts are indexed
// by a monotonically non-decreasing time-like key.
//
// Each checker exposes two operations: Validate, which answers a bare yes/no,
// and ValidateWithReport, which additionally returns the first failing
// check's message and, on success, requested descriptive metadata
// (is_empty, is_univariate, has_nans). Invalid input is never an error:
// the checkers report, they do not raise. Checks run in a fixed order and
// short-circuit on the first failure, so a rejection carries exactly one
// message.
//
// Checkers are stateless and never mutate the candidate, so any number of
// checks may run concurrently, including on the same object.
package probacheck
