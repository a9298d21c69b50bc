// Package batch validates many candidate objects concurrently.
//
// Layout checks are pure and never touch shared state, so candidates can be
// validated in parallel with no coordination. This package fans a slice of
// candidates out over a bounded worker pool and returns their reports in
// input order.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/amp-proba/errors"
	"github.com/amp-labs/amp-proba/probacheck"
)

// ValidateAll checks every candidate against the given layout checker,
// running up to GOMAXPROCS checks at a time. reports[i] corresponds to
// candidates[i], and each candidate's display name is suffixed with its
// position ("obj[3]") so rejection messages identify the candidate.
//
// A panicking check (possible only with a caller-supplied Checker or Frame
// implementation; the built-in checkers never panic) is contained by the
// pool: its slot reports invalid with the recovered message, and the joined
// panics are returned as the error. Context cancellation prevents unstarted
// checks from running; their slots report the cancellation.
func ValidateAll(
	ctx context.Context,
	checker probacheck.Checker,
	candidates []any,
	req probacheck.MetadataRequest,
	name string,
) ([]probacheck.Report, error) {
	if name == "" {
		name = probacheck.DefaultName
	}

	reports := make([]probacheck.Report, len(candidates))
	tasks := make([]pond.Task, len(candidates))

	pool := pond.NewPool(runtime.GOMAXPROCS(0), pond.WithContext(ctx))
	defer pool.StopAndWait()

	for i, candidate := range candidates {
		tasks[i] = pool.SubmitErr(func() error {
			reports[i] = checker.ValidateWithReport(
				candidate, req, fmt.Sprintf("%s[%d]", name, i))

			return nil
		})
	}

	var errs errors.Collection

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			reports[i] = probacheck.Report{Valid: false, Message: err.Error()}

			errs.Add(fmt.Errorf("candidate %d: %w", i, err))
		}
	}

	return reports, errs.GetError()
}
