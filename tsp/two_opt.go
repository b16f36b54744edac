// Package tsp - 2-opt local search engine.
//
// Improve applies 2-opt reversals until a full pass finds no improving swap.
//
// Scan order and acceptance (positions in the open tour T of length n):
//   - Outer cut i runs over [1, n-1]; position 0 is never a left cut.
//   - Inner cut j runs over [i+1, n-2], so the closing edge (T[n-1], T[0])
//     is never the right-hand edge of a move.
//   - Δ = d(T[i-1],T[j]) + d(T[i],T[j+1]) − d(T[i-1],T[i]) − d(T[j],T[j+1]).
//   - For each i the most negative Δ over all j is kept (strict "<" against a
//     running best initialised to 0, so the first j wins ties).
//   - If that best Δ is negative, T[i..j] is reversed in place and the scan
//     restarts at i = 1. This is first-improvement over i, best-improvement
//     over j, not best-of-pass.
//
// Termination: every applied swap lowers the integer length by at least 1 and
// length is bounded below, so the loop ends after finitely many passes.
//
// Cancellation: ctx is checked only at pass boundaries, where the tour is
// always a valid permutation. An interrupted run keeps the last complete tour.
//
// Complexity:
//   - One pass: O(n²) delta evaluations; an applied swap costs O(j−i).
//   - Overall: O(passes·n²) time, O(1) extra space (plus an optional O(n²)
//     length matrix, see WithDistanceMatrix).
package tsp

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Improve refines tour with 2-opt and returns it.
//
// Ownership: Improve takes ownership of tour and rewrites it in place; the
// returned Tour shares its backing array. Use CopyTour first to keep the input.
//
// Contracts:
//   - tour must be a permutation of cm's keys (ErrInvalidTour / ErrUnknownCity).
//   - The result is never longer than the input and is a 2-opt local optimum
//     unless WithMaxSwaps stopped the search early.
//
// On cancellation Improve returns the last fully completed tour together with
// an error matching both ErrInterrupted and ctx.Err().
func Improve(ctx context.Context, cm *CityMap, tour Tour, opts ...Option) (Tour, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	dense, err := cm.denseTour(tour)
	if err != nil {
		return nil, err
	}

	_, err = twoOpt(ctx, newMetric(cm, o.MatrixLimit), dense, o)
	cm.writeTour(tour, dense)

	return tour, err
}

// twoOptStats reports the work done by one twoOpt run.
type twoOptStats struct {
	swaps  int
	passes int
}

// twoOpt runs the local search on a dense-index tour in place.
func twoOpt(ctx context.Context, m *metric, tour []int, o Options) (twoOptStats, error) {
	var (
		st          twoOptStats
		n           = len(tour)
		i, j, bestJ int
		delta       int64
		bestDelta   int64
		applied     bool
	)

	for {
		if err := ctx.Err(); err != nil {
			o.Logger.WithFields(logrus.Fields{
				"swaps":  st.swaps,
				"passes": st.passes,
			}).Debug("2-opt interrupted")

			return st, fmt.Errorf("%w after %d swaps: %w", ErrInterrupted, st.swaps, err)
		}

		st.passes++
		applied = false
		for i = 1; i < n; i++ {
			bestDelta = 0
			bestJ = -1
			for j = i + 1; j < n-1; j++ {
				delta = swapDelta(m, o.Delta, tour[i-1], tour[i], tour[j], tour[j+1])
				if delta < bestDelta {
					bestDelta = delta
					bestJ = j
				}
			}
			if bestDelta < 0 {
				reverseSegment(tour, i, bestJ)
				st.swaps++
				applied = true

				o.Logger.WithFields(logrus.Fields{
					"pass":  st.passes,
					"i":     i,
					"j":     bestJ,
					"delta": bestDelta,
				}).Trace("2-opt swap applied")
				if o.OnSwap != nil {
					o.OnSwap(SwapEvent{Pass: st.passes, I: i, J: bestJ, Delta: bestDelta})
				}

				break // restart the outer loop from i = 1
			}
		}

		if !applied {
			break
		}
		if o.MaxSwaps > 0 && st.swaps >= o.MaxSwaps {
			o.Logger.WithField("swaps", st.swaps).Debug("2-opt swap budget exhausted")
			return st, nil
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"swaps":  st.swaps,
		"passes": st.passes,
	}).Debug("2-opt reached local optimum")

	return st, nil
}

// swapDelta returns the length change of replacing edges (a,b),(c,e) by
// (a,c),(b,e), rounded according to policy.
//
// Complexity: O(1).
func swapDelta(m *metric, policy DeltaPolicy, a, b, c, e int) int64 {
	if policy == DeltaRoundedSum {
		return roundLength(m.raw(a, c) + m.raw(b, e) - m.raw(a, b) - m.raw(c, e))
	}
	return m.dist(a, c) + m.dist(b, e) - m.dist(a, b) - m.dist(c, e)
}

// writeTour stores a dense-index tour into dst as city IDs.
func (cm *CityMap) writeTour(dst Tour, dense []int) {
	var p int
	for p = range dense {
		dst[p] = cm.ids[dense[p]]
	}
}
