package probacheck

import (
	"fmt"
	"time"

	"github.com/amp-labs/amp-proba/table"
)

// MtypeInterval is the registered name of the predictive-interval layout.
const MtypeInterval = "pred_interval"

// Interval bound-side labels: the only values permitted in the third level
// of an interval column key.
const (
	SideLower = "lower"
	SideUpper = "upper"
)

// Intervals validates the predictive-interval layout: a table whose columns
// are three-level composite keys of (variable name, coverage, side), with
// coverage numeric in [0, 1] and side one of "lower" or "upper", and whose
// rows are indexed by a sorted time-like key.
type Intervals struct{}

var _ Checker = Intervals{}

// Validate reports whether obj is a valid interval table.
func (i Intervals) Validate(obj any) bool {
	return i.ValidateWithReport(obj, MetadataNone(), DefaultName).Valid
}

// ValidateWithReport checks obj against the interval layout and returns the
// full result, with metadata restricted to the fields selected by req.
func (i Intervals) ValidateWithReport(obj any, req MetadataRequest, name string) Report {
	start := time.Now()
	report := i.check(obj, req, displayName(name))
	observeCheck(MtypeInterval, report.Valid, start)

	return report
}

func (Intervals) check(obj any, req MetadataRequest, name string) Report {
	frame, metadata, msg := commonChecks(obj, req, name)
	if msg != "" {
		return invalidReport(msg)
	}

	// Wrong arity, a bad coverage level, and a bad side label all share one
	// combined message describing the required layout.
	shapeMsg := fmt.Sprintf(
		"columns of %s must be composite keys with three levels: "+
			"first level is the variable name, "+
			"second level are numeric coverage values between 0 and 1, "+
			"third level is the string %q or %q for the lower/upper interval end",
		name, SideLower, SideUpper)

	for _, key := range frame.Keys() {
		if key.Arity() != 3 {
			return invalidReport(shapeMsg)
		}
	}

	if !levelInUnitInterval(frame, 1) {
		return invalidReport(shapeMsg)
	}

	for _, value := range table.LevelValues(frame, 2) {
		side, ok := value.(string)
		if !ok {
			return invalidReport(shapeMsg)
		}

		if side != SideLower && side != SideUpper {
			return invalidReport(shapeMsg)
		}
	}

	return validReport(successMetadata(frame, req, metadata))
}
