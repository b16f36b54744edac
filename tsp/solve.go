// Package tsp - one-shot pipeline: Build → Improve → Length.
//
// Solve is the caller-side orchestration around the three solvers. It owns the
// scoped wall-clock timer, the optional time limit, the tracing spans and the
// final log line; none of that state lives inside the algorithms.
//
// Design principles:
//   - One metric (and at most one length matrix) shared by all three stages.
//   - Fail fast: options and the city set are validated before any work.
//   - No partial results on invalid input; on interruption the Result holds the
//     last complete tour and its exact length.
package tsp

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope of Solve's spans.
const tracerName = "github.com/katalvlaran/eutsp/tsp"

// Solve builds a nearest-neighbor tour over cm, refines it with 2-opt and
// evaluates the result.
//
// Errors:
//   - ErrBadOption / ErrNoCities before any work is done (Result is zero).
//   - ErrInterrupted (wrapping ctx.Err()) when ctx is cancelled or TimeLimit
//     expires; the returned Result is still complete and consistent.
//
// Complexity: O(n²) for Build plus O(passes·n²) for Improve.
func Solve(ctx context.Context, cm *CityMap, opts ...Option) (Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if cm.Len() == 0 {
		return Result{}, ErrNoCities
	}

	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	var (
		tracer = o.TracerProvider.Tracer(tracerName)
		span   trace.Span
		stage  trace.Span
		start  = time.Now()
		n      = cm.Len()
	)
	ctx, span = tracer.Start(ctx, "tsp.Solve", trace.WithAttributes(attribute.Int("tsp.cities", n)))
	defer span.End()

	m := newMetric(cm, o.MatrixLimit)

	// Stage 1: nearest-neighbor construction.
	_, stage = tracer.Start(ctx, "tsp.Build")
	tour := nearestNeighbor(m)
	initial := m.cycleLength(tour)
	stage.SetAttributes(attribute.Int64("tsp.length", initial))
	stage.End()

	// Stage 2: 2-opt refinement (in place on tour).
	var improveCtx context.Context
	improveCtx, stage = tracer.Start(ctx, "tsp.Improve")
	st, ierr := twoOpt(improveCtx, m, tour, o)
	stage.SetAttributes(
		attribute.Int("tsp.swaps", st.swaps),
		attribute.Int("tsp.passes", st.passes),
	)
	if ierr != nil {
		stage.RecordError(ierr)
		stage.SetStatus(codes.Error, ierr.Error())
	}
	stage.End()

	// Stage 3: evaluation.
	_, stage = tracer.Start(ctx, "tsp.Length")
	length := m.cycleLength(tour)
	stage.SetAttributes(attribute.Int64("tsp.length", length))
	stage.End()

	res := Result{
		Tour:          cm.idTour(tour),
		Length:        length,
		InitialLength: initial,
		Swaps:         st.swaps,
		Passes:        st.passes,
		Elapsed:       time.Since(start),
	}

	entry := o.Logger.WithFields(logrus.Fields{
		"cities":         n,
		"length":         res.Length,
		"initial_length": res.InitialLength,
		"swaps":          res.Swaps,
		"elapsed":        res.Elapsed,
	})
	if ierr != nil {
		span.RecordError(ierr)
		span.SetStatus(codes.Error, ierr.Error())
		entry.WithError(ierr).Warn("tour solve interrupted")

		return res, ierr
	}
	entry.Info("tour solved")

	return res, nil
}
