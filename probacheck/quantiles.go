package probacheck

import (
	"fmt"
	"time"
)

// MtypeQuantiles is the registered name of the predictive-quantile layout.
const MtypeQuantiles = "pred_quantiles"

// Quantiles validates the predictive-quantile layout: a table whose columns
// are two-level composite keys of (variable name, alpha), with alpha numeric
// in [0, 1], and whose rows are indexed by a sorted time-like key.
type Quantiles struct{}

var _ Checker = Quantiles{}

// Validate reports whether obj is a valid quantile table.
func (q Quantiles) Validate(obj any) bool {
	return q.ValidateWithReport(obj, MetadataNone(), DefaultName).Valid
}

// ValidateWithReport checks obj against the quantile layout and returns the
// full result, with metadata restricted to the fields selected by req.
func (q Quantiles) ValidateWithReport(obj any, req MetadataRequest, name string) Report {
	start := time.Now()
	report := q.check(obj, req, displayName(name))
	observeCheck(MtypeQuantiles, report.Valid, start)

	return report
}

func (Quantiles) check(obj any, req MetadataRequest, name string) Report {
	frame, metadata, msg := commonChecks(obj, req, name)
	if msg != "" {
		return invalidReport(msg)
	}

	// The three key-shape failures share one combined message describing the
	// required layout.
	shapeMsg := fmt.Sprintf(
		"columns of %s must be composite keys with two levels: "+
			"first level is the variable name, "+
			"second level are numeric alpha values between 0 and 1",
		name)

	for _, key := range frame.Keys() {
		if key.Arity() != 2 {
			return invalidReport(shapeMsg)
		}
	}

	if !levelInUnitInterval(frame, 1) {
		return invalidReport(shapeMsg)
	}

	return validReport(successMetadata(frame, req, metadata))
}
