// Package tsp - tour utilities that operate purely on tour structure.
//
// Provided helpers:
//   - CopyTour: independent copy of a tour.
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - reverseSegment: in-place inclusive reversal (2-opt core).
//
// Design:
//   - Tours are open ID sequences; the closing edge is implicit.
//   - O(n) time for every helper; reverseSegment allocates nothing.
package tsp

import "fmt"

// CopyTour returns an independent copy of the input tour.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour Tour) Tour {
	if tour == nil {
		return nil
	}
	out := make(Tour, len(tour))
	copy(out, tour)
	return out
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
// The cyclic order (and direction) is preserved, so the length is unchanged.
//
// Errors: ErrUnknownCity when start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour Tour, start int64) (Tour, error) {
	var (
		n     = len(tour)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: start %d not in tour", ErrUnknownCity, start)
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	return out, nil
}

// EqualToursModuloRotation reports whether a and b describe the same directed
// cycle, i.e. b is a rotation of a.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	var (
		n = len(a)
		p = -1
		i int
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// reverseSegment reverses the inclusive segment tour[i..k] in place.
// Callers guarantee 0 ≤ i ≤ k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
