// Package memo caches validation reports for repeated checks of identical
// tables.
//
// A layout check is a pure function of the table's contents, the metadata
// request, and the display name, so its report can be reused for as long as
// an identical table keeps being checked — a common pattern when the same
// forecast output is gated at several points in a pipeline. The cache key is
// the table's content fingerprint, so two distinct Table values with equal
// contents share an entry.
package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/amp-labs/amp-proba/probacheck"
	"github.com/amp-labs/amp-proba/table"
)

// Checker wraps a layout checker with an LRU cache of reports. It implements
// probacheck.Checker and is safe for concurrent use.
//
// Only *table.Table candidates are cached, since only they carry a content
// fingerprint; any other candidate passes straight through to the wrapped
// checker.
type Checker struct {
	inner probacheck.Checker
	cache *lru.Cache[string, probacheck.Report]
}

var _ probacheck.Checker = (*Checker)(nil)

// New wraps the given checker with a report cache holding up to size entries.
func New(inner probacheck.Checker, size int) (*Checker, error) {
	cache, err := lru.New[string, probacheck.Report](size)
	if err != nil {
		return nil, fmt.Errorf("creating report cache: %w", err)
	}

	return &Checker{inner: inner, cache: cache}, nil
}

// Validate reports whether obj conforms to the wrapped checker's layout.
func (c *Checker) Validate(obj any) bool {
	return c.ValidateWithReport(obj, probacheck.MetadataNone(), probacheck.DefaultName).Valid
}

// ValidateWithReport checks obj, serving the report from cache when an
// identical table was checked before with the same request and name.
func (c *Checker) ValidateWithReport(
	obj any,
	req probacheck.MetadataRequest,
	name string,
) probacheck.Report {
	t, ok := obj.(*table.Table)
	if !ok {
		return c.inner.ValidateWithReport(obj, req, name)
	}

	key := fmt.Sprintf("%016x|%s|%s", t.Fingerprint(), req, name)

	if report, hit := c.cache.Get(key); hit {
		observeLookup(true)

		return cloneReport(report)
	}

	observeLookup(false)

	report := c.inner.ValidateWithReport(obj, req, name)
	c.cache.Add(key, report)

	return cloneReport(report)
}

// Purge drops every cached report.
func (c *Checker) Purge() {
	c.cache.Purge()
}

// cloneReport copies the metadata map so callers cannot mutate a cached
// entry through the returned report.
func cloneReport(report probacheck.Report) probacheck.Report {
	if report.Metadata == nil {
		return report
	}

	metadata := make(map[string]bool, len(report.Metadata))
	for k, v := range report.Metadata {
		metadata[k] = v
	}

	report.Metadata = metadata

	return report
}
