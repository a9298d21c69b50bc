package probacheck

import (
	"sort"
	"strings"
)

// requestKind discriminates the three shapes a metadata request can take.
type requestKind uint8

const (
	requestNone requestKind = iota
	requestAll
	requestSubset
)

// MetadataRequest selects which metadata fields a check should compute.
// It is a tagged variant of "nothing", "everything", or a subset of field
// names, resolved once at construction so the per-field gate is a cheap
// lookup rather than a type switch.
//
// The zero value requests nothing.
type MetadataRequest struct {
	kind   requestKind
	fields map[string]struct{}
}

// MetadataNone requests no metadata. Checks still run; only the metadata
// computation is skipped.
func MetadataNone() MetadataRequest {
	return MetadataRequest{kind: requestNone}
}

// MetadataAll requests every metadata field.
func MetadataAll() MetadataRequest {
	return MetadataRequest{kind: requestAll}
}

// MetadataFields requests only the named fields. Unknown names are carried
// but never computed, so requesting an unrecognized field is a no-op rather
// than an error. An empty name list is equivalent to MetadataNone.
func MetadataFields(names ...string) MetadataRequest {
	if len(names) == 0 {
		return MetadataNone()
	}

	fields := make(map[string]struct{}, len(names))
	for _, name := range names {
		fields[name] = struct{}{}
	}

	return MetadataRequest{kind: requestSubset, fields: fields}
}

// String renders the request for logs and cache keys: "all", "none", or
// "subset(a,b)" with field names sorted.
func (r MetadataRequest) String() string {
	switch r.kind {
	case requestAll:
		return "all"
	case requestSubset:
		names := make([]string, 0, len(r.fields))
		for name := range r.fields {
			names = append(names, name)
		}

		sort.Strings(names)

		return "subset(" + strings.Join(names, ",") + ")"
	default:
		return "none"
	}
}

// Needs reports whether the given field should be computed under this
// request. This is the gate that lets checks skip expensive scans (such as
// the whole-table NaN scan) the caller did not ask for.
func (r MetadataRequest) Needs(field string) bool {
	switch r.kind {
	case requestAll:
		return true
	case requestSubset:
		_, ok := r.fields[field]

		return ok
	default:
		return false
	}
}
