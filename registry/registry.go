// Package registry maps declared data type names to their checkers.
//
// The checkers themselves (package probacheck) are pure and self-contained;
// this package supplies the surrounding plumbing a framework needs to select
// one by name: registration with tag metadata, alias resolution, and a
// dispatcher that relays a check call to the right checker verbatim.
package registry

import (
	"fmt"
	"sync"

	"github.com/amp-labs/amp-proba/errors"
	"github.com/amp-labs/amp-proba/probacheck"
)

// entry pairs a registered checker with its descriptive tags.
type entry struct {
	tags    Tags
	checker probacheck.Checker
}

// Registry holds registered checkers keyed by canonical name, with alias
// resolution. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	aliases map[string]string
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]entry),
		aliases: make(map[string]string),
	}
}

// Builtin creates a registry pre-populated with the two supported layouts,
// "pred_quantiles" and "pred_interval".
func Builtin() *Registry {
	r := New()

	// Registration of the built-in records cannot fail: names are distinct
	// and the tags are statically well-formed.
	_ = r.Register(Tags{
		Scitype:      "Proba",
		Name:         probacheck.MtypeQuantiles,
		Description:  "table of predictive quantiles: columns (variable, alpha)",
		Dependencies: []string{"github.com/amp-labs/amp-proba/table"},
	}, probacheck.Quantiles{})

	_ = r.Register(Tags{
		Scitype:      "Proba",
		Name:         probacheck.MtypeInterval,
		Description:  "table of predictive intervals: columns (variable, coverage, side)",
		Dependencies: []string{"github.com/amp-labs/amp-proba/table"},
	}, probacheck.Intervals{})

	return r
}

// Register adds a checker under the tags' canonical name and aliases.
// Returns errors.ErrBadTags for an unusable record and errors.ErrDuplicateType
// if any name or alias is already taken.
func (r *Registry) Register(tags Tags, checker probacheck.Checker) error {
	if err := tags.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(tags.Name) {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateType, tags.Name)
	}

	for _, alias := range tags.Aliases {
		if r.taken(alias) {
			return fmt.Errorf("%w: alias %s", errors.ErrDuplicateType, alias)
		}
	}

	r.entries[tags.Name] = entry{tags: tags, checker: checker}
	r.order = append(r.order, tags.Name)

	for _, alias := range tags.Aliases {
		r.aliases[alias] = tags.Name
	}

	return nil
}

// taken reports whether a name is already in use as a canonical name or
// alias. Caller must hold the lock.
func (r *Registry) taken(name string) bool {
	if _, ok := r.entries[name]; ok {
		return true
	}

	_, ok := r.aliases[name]

	return ok
}

// Lookup resolves a canonical name or alias to its checker.
func (r *Registry) Lookup(name string) (probacheck.Checker, bool) { //nolint:ireturn
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[r.resolve(name)]
	if !ok {
		return nil, false
	}

	return e.checker, true
}

// TagsFor resolves a canonical name or alias to its tags record.
func (r *Registry) TagsFor(name string) (Tags, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[r.resolve(name)]
	if !ok {
		return Tags{}, false
	}

	return e.tags, true
}

// Names returns the canonical names of all registered types, in registration
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// resolve maps an alias to its canonical name, or returns the input
// unchanged. Caller must hold the lock.
func (r *Registry) resolve(name string) string {
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}

	return name
}
