// Package tsp - solver configuration.
//
// Options follows the functional-options pattern: DefaultOptions supplies the
// baseline, each Option mutates it, and validateOptions rejects out-of-range
// values with ErrBadOption before any algorithm runs.
package tsp

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DeltaPolicy selects how a 2-opt swap delta is rounded.
type DeltaPolicy int

const (
	// DeltaPerEdge sums four individually rounded edge lengths:
	//	Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e)
	DeltaPerEdge DeltaPolicy = iota

	// DeltaRoundedSum rounds the sum of the four raw lengths once:
	//	Δ = round(h(a,c) + h(b,e) − h(a,b) − h(c,e))
	DeltaRoundedSum
)

// String returns the configuration name of the policy.
func (p DeltaPolicy) String() string {
	switch p {
	case DeltaPerEdge:
		return "per-edge"
	case DeltaRoundedSum:
		return "rounded-sum"
	default:
		return fmt.Sprintf("DeltaPolicy(%d)", int(p))
	}
}

// ParseDeltaPolicy is the inverse of DeltaPolicy.String.
func ParseDeltaPolicy(s string) (DeltaPolicy, error) {
	switch s {
	case "", "per-edge":
		return DeltaPerEdge, nil
	case "rounded-sum":
		return DeltaRoundedSum, nil
	default:
		return 0, fmt.Errorf("%w: unknown delta policy %q", ErrBadOption, s)
	}
}

// SwapEvent describes one applied 2-opt reversal of tour[I..J].
type SwapEvent struct {
	Pass  int   // 1-based pass number in which the swap was applied
	I, J  int   // inclusive segment bounds (positions in the tour)
	Delta int64 // length change; always negative
}

// Options configures Improve and Solve.
//
// Fields:
//   - Delta: delta rounding policy (default DeltaPerEdge).
//   - MaxSwaps: stop after this many applied swaps; 0 ⇒ unlimited.
//   - MatrixLimit: precompute the n×n raw length matrix when n ≤ MatrixLimit;
//     0 ⇒ never. Results are identical either way.
//   - TimeLimit: Solve-level wall-clock budget; 0 ⇒ unlimited.
//   - Logger: structured logger; defaults to a discarding logger.
//   - OnSwap: optional hook invoked after every applied swap.
//   - TracerProvider: source of tracing spans in Solve; defaults to otel's global.
type Options struct {
	Delta          DeltaPolicy
	MaxSwaps       int
	MatrixLimit    int
	TimeLimit      time.Duration
	Logger         logrus.FieldLogger
	OnSwap         func(SwapEvent)
	TracerProvider trace.TracerProvider
}

// Option mutates Options.
type Option func(*Options)

// WithDeltaPolicy selects the swap-delta rounding policy.
func WithDeltaPolicy(p DeltaPolicy) Option {
	return func(o *Options) { o.Delta = p }
}

// WithMaxSwaps bounds the number of applied 2-opt swaps (0 ⇒ unlimited).
// When the bound is hit the current tour is returned without error; it is
// valid but not necessarily a 2-opt local optimum.
func WithMaxSwaps(k int) Option {
	return func(o *Options) { o.MaxSwaps = k }
}

// WithDistanceMatrix enables the precomputed length matrix for n ≤ limit.
func WithDistanceMatrix(limit int) Option {
	return func(o *Options) { o.MatrixLimit = limit }
}

// WithTimeLimit bounds Solve's wall-clock time. The deadline is only observed
// between 2-opt passes.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithLogger sets the logger. A nil logger restores the discarding default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSwapHook registers fn to be called after every applied swap.
func WithSwapHook(fn func(SwapEvent)) Option {
	return func(o *Options) { o.OnSwap = fn }
}

// WithTracerProvider sets the provider used for Solve's spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

// DefaultOptions returns the baseline configuration:
//   - Delta:          DeltaPerEdge
//   - MaxSwaps:       0 (run to a local optimum)
//   - MatrixLimit:    DefaultMatrixLimit
//   - TimeLimit:      0 (unlimited)
//   - Logger:         discarding logrus logger
//   - TracerProvider: otel.GetTracerProvider()
func DefaultOptions() Options {
	return Options{
		Delta:          DeltaPerEdge,
		MatrixLimit:    DefaultMatrixLimit,
		Logger:         discardLogger(),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// DefaultMatrixLimit caps the precomputed matrix at 2048² float64s (32 MiB).
const DefaultMatrixLimit = 2048

// newOptions applies opts over DefaultOptions and validates the result.
func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}

	return o, validateOptions(o)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
