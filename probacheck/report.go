package probacheck

// Metadata field names, as they appear in a Report's metadata map.
const (
	// FieldIsEmpty is true iff the table has no rows or no columns.
	FieldIsEmpty = "is_empty"

	// FieldIsUnivariate is true iff the table covers exactly one variable.
	FieldIsUnivariate = "is_univariate"

	// FieldHasNaNs is true iff any cell of the table is missing.
	FieldHasNaNs = "has_nans"
)

// DefaultName is the display name substituted into error messages when the
// caller does not supply one.
const DefaultName = "obj"

// Report is the full result of a validation: whether the candidate conforms
// to the layout, the first failing check's message if it does not, and the
// requested metadata if it does.
//
// Message is empty exactly when Valid is true. Metadata is nil unless the
// check succeeded and at least one requested field was recognized; when
// present it contains exactly the recognized requested fields.
//
// Message shapes are part of the observable contract — callers may match on
// them — but they are not a versioned wire format.
type Report struct {
	Valid    bool
	Message  string
	Metadata map[string]bool
}

// invalidReport builds the rejection result for a failed check.
func invalidReport(msg string) Report {
	return Report{Valid: false, Message: msg}
}

// validReport builds the success result, dropping an empty metadata map so
// that "nothing requested" and "nothing recognized" both yield nil.
func validReport(metadata map[string]bool) Report {
	if len(metadata) == 0 {
		metadata = nil
	}

	return Report{Valid: true, Metadata: metadata}
}

// Checker is the shared contract of the layout validators. Implementations
// are stateless; both operations are pure functions of their input.
type Checker interface {
	// Validate reports whether obj conforms to the layout.
	Validate(obj any) bool

	// ValidateWithReport checks obj and returns the full result, computing
	// the metadata fields selected by req. The name is substituted into
	// error messages; if empty, DefaultName is used.
	ValidateWithReport(obj any, req MetadataRequest, name string) Report
}
