package errors

import "errors"

var (
	// ErrUnknownType is returned by registry lookups for a name that no
	// checker was registered under, directly or via alias.
	ErrUnknownType = errors.New("unknown data type")

	// ErrDuplicateType is returned when registering a checker under a name
	// or alias that is already taken.
	ErrDuplicateType = errors.New("data type already registered")

	// ErrBadTags is returned when a tags record fails its own sanity checks
	// at registration time.
	ErrBadTags = errors.New("invalid type tags")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a
// single combined error. Use this when collecting errors from a batch of
// operations that should all be attempted before reporting.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
