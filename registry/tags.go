package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-proba/errors"
)

// Tags is the static descriptive record attached to a registered data type.
// It is consumed for lookup (name and aliases) and documentation; the
// validation logic itself never reads it.
type Tags struct {
	// Scitype is the broad semantic category, e.g. "Proba" for probabilistic
	// forecast representations.
	Scitype string `yaml:"scitype"`

	// Name is the canonical machine-type name, e.g. "pred_quantiles".
	Name string `yaml:"name"`

	// Aliases are alternative names the type can be looked up under.
	Aliases []string `yaml:"aliases,omitempty"`

	// Description is a one-line human-readable summary of the layout.
	Description string `yaml:"description,omitempty"`

	// Dependencies names the packages a consumer needs in order to construct
	// objects of this type. Informational only.
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// Validate checks that the record is usable for registration: the canonical
// name and scitype are required, and an alias may not repeat the name.
func (t Tags) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", errors.ErrBadTags)
	}

	if t.Scitype == "" {
		return fmt.Errorf("%w: scitype is required", errors.ErrBadTags)
	}

	for _, alias := range t.Aliases {
		if alias == t.Name {
			return fmt.Errorf("%w: alias %q repeats the canonical name", errors.ErrBadTags, alias)
		}
	}

	return nil
}

// DumpYAML writes the tags of every registered type to w as a YAML sequence,
// in registration order. Intended for generated documentation.
func (r *Registry) DumpYAML(w io.Writer) error {
	r.mu.RLock()
	records := make([]Tags, 0, len(r.order))

	for _, name := range r.order {
		records = append(records, r.entries[name].tags)
	}
	r.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding type tags: %w", err)
	}

	return enc.Close()
}
