// Package tests provides small helpers for carrying test metadata (test name,
// unique ID) through context.Context, so test code can correlate log output
// and uniquely name any per-test fixtures.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// contextKey is a private type used for storing test metadata in
// context.Context. Using a custom type instead of string prevents collisions
// with other packages that might use the same key names.
type contextKey string

const (
	// testIdKey is the context key for the unique test identifier: a UUID
	// prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey is the context key for the test name from testing.T.Name(),
	// including the full subtest path.
	testNameKey contextKey = "testName"
)

// GetUniqueContext creates a context derived from t.Context() carrying a
// unique test identifier and the test's name.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(t.Context(), testIdKey, "test-"+uuid.New().String())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestId retrieves the unique test identifier from the context.
func GetTestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(testIdKey).(string)

	return id, ok
}

// GetTestName retrieves the test name from the context.
func GetTestName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(testNameKey).(string)

	return name, ok
}
