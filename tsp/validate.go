// Package tsp - validation utilities shared by the solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Every check runs before the algorithm touches the tour.
package tsp

import "fmt"

// validateOptions checks Options without referencing cities or tours.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	switch o.Delta {
	case DeltaPerEdge, DeltaRoundedSum:
		// ok
	default:
		return fmt.Errorf("%w: delta policy %d", ErrBadOption, int(o.Delta))
	}
	if o.MaxSwaps < 0 {
		return fmt.Errorf("%w: MaxSwaps=%d must be non-negative", ErrBadOption, o.MaxSwaps)
	}
	if o.MatrixLimit < 0 {
		return fmt.Errorf("%w: MatrixLimit=%d must be non-negative", ErrBadOption, o.MatrixLimit)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit=%s must be non-negative", ErrBadOption, o.TimeLimit)
	}

	return nil
}

// ValidateTour reports whether tour is a permutation of cm's keys: every city
// exactly once, nothing else.
//
// Errors: ErrNoCities, ErrInvalidTour, ErrUnknownCity.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(cm *CityMap, tour Tour) error {
	_, err := cm.denseTour(tour)
	return err
}
