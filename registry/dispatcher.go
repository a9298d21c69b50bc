package registry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/amp-labs/amp-proba/errors"
	"github.com/amp-labs/amp-proba/probacheck"
)

// Dispatcher looks up the checker for a declared type name and relays the
// check call to it verbatim: candidate, metadata request, and display name
// pass through unmodified, and so does the resulting report.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry. A nil logger
// falls back to slog.Default().
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{registry: registry, logger: logger}
}

// Check validates obj against the layout registered under mtype. The only
// error condition is an unregistered mtype (errors.ErrUnknownType); an
// invalid candidate is a normal report, not an error.
//
// When a tracer is present in the context (see WithTracer), the check runs
// inside a span carrying the mtype and outcome.
func (d *Dispatcher) Check(
	ctx context.Context,
	mtype string,
	obj any,
	req probacheck.MetadataRequest,
	name string,
) (probacheck.Report, error) {
	checker, ok := d.registry.Lookup(mtype)
	if !ok {
		d.logger.WarnContext(ctx, "check requested for unregistered data type",
			"mtype", mtype)

		return probacheck.Report{}, fmt.Errorf("%w: %s", errors.ErrUnknownType, mtype)
	}

	tracer, traced := TracerFromContext(ctx)
	if !traced {
		return checker.ValidateWithReport(obj, req, name), nil
	}

	_, span := tracer.Start(ctx, "proba.check",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("proba.mtype", mtype)))
	defer span.End()

	report := checker.ValidateWithReport(obj, req, name)
	span.SetAttributes(attribute.Bool("proba.valid", report.Valid))

	return report, nil
}
