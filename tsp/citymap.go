// Package tsp - the immutable, insertion-ordered city set.
//
// CityMap stores cities in the order they were supplied. That order is the
// "natural key order" every solver iterates in, which keeps nearest-neighbor
// tie-breaking reproducible (Go maps have no stable iteration order).
//
// Layout:
//   - ids[k], pts[k]: parallel slices in insertion order (dense index k).
//   - index[id] = k:  reverse lookup used to translate tours to dense indices.
package tsp

import (
	"fmt"
	"math"
)

// MaxCoordinate bounds |X| and |Y| of every city. Within it coordinate
// differences stay exact in float64.
const MaxCoordinate = 1 << 52

// maxTourLength bounds n·(span+1), an upper limit on any rounded tour length,
// keeping every sum and 2-opt delta inside int64.
const maxTourLength = 1 << 62

// CityMap is a read-only mapping city ID → coordinate with a fixed iteration order.
// The zero value is an empty map; use NewCityMap to build a valid one.
type CityMap struct {
	ids   []int64
	pts   []Point
	index map[int64]int
}

// NewCityMap validates cities and builds a CityMap preserving their order.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrNoCities          if cities is empty,
//   - ErrInvalidCoordinate if any coordinate is NaN, ±Inf or beyond
//     ±MaxCoordinate, or if the cities spread so far apart that a tour
//     length could overflow int64,
//   - ErrDuplicateCity     if an ID repeats.
//
// The input slice is copied; later changes to it do not affect the map.
//
// Complexity: O(n) time, O(n) space.
func NewCityMap(cities []City) (*CityMap, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	var (
		n  = len(cities)
		cm = &CityMap{
			ids:   make([]int64, n),
			pts:   make([]Point, n),
			index: make(map[int64]int, n),
		}
		k  int
		c  City
		ok bool
		lo = Point{X: math.Inf(1), Y: math.Inf(1)}
		hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	)
	for k = 0; k < n; k++ {
		c = cities[k]
		if !inRange(c.X) || !inRange(c.Y) {
			return nil, fmt.Errorf("%w: city %d at (%v, %v)", ErrInvalidCoordinate, c.ID, c.X, c.Y)
		}
		lo.X, lo.Y = math.Min(lo.X, c.X), math.Min(lo.Y, c.Y)
		hi.X, hi.Y = math.Max(hi.X, c.X), math.Max(hi.Y, c.Y)
		if _, ok = cm.index[c.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCity, c.ID)
		}
		cm.ids[k] = c.ID
		cm.pts[k] = c.Point
		cm.index[c.ID] = k
	}

	// No edge is longer than the bounding-box diagonal.
	span := math.Hypot(hi.X-lo.X, hi.Y-lo.Y)
	if float64(n)*(span+1) > maxTourLength {
		return nil, fmt.Errorf("%w: span %.6g too large for %d cities", ErrInvalidCoordinate, span, n)
	}

	return cm, nil
}

// Len returns the number of cities (0 for a nil map).
func (cm *CityMap) Len() int {
	if cm == nil {
		return 0
	}
	return len(cm.ids)
}

// IDs returns a copy of the city IDs in iteration order.
func (cm *CityMap) IDs() []int64 {
	if cm == nil {
		return nil
	}
	out := make([]int64, len(cm.ids))
	copy(out, cm.ids)
	return out
}

// Contains reports whether id is a key of the map.
func (cm *CityMap) Contains(id int64) bool {
	if cm == nil {
		return false
	}
	_, ok := cm.index[id]
	return ok
}

// Point returns the coordinate of id and whether it exists.
func (cm *CityMap) Point(id int64) (Point, bool) {
	if cm == nil {
		return Point{}, false
	}
	k, ok := cm.index[id]
	if !ok {
		return Point{}, false
	}
	return cm.pts[k], true
}

// Cities returns a copy of all cities in iteration order.
func (cm *CityMap) Cities() []City {
	if cm == nil {
		return nil
	}
	out := make([]City, len(cm.ids))
	var k int
	for k = range cm.ids {
		out[k] = City{ID: cm.ids[k], Point: cm.pts[k]}
	}
	return out
}

// denseTour translates a tour of IDs into dense indices, enforcing the
// permutation invariant on the way.
//
// Errors: ErrInvalidTour (length mismatch, repeats), ErrUnknownCity.
//
// Complexity: O(n) time, O(n) space.
func (cm *CityMap) denseTour(tour Tour) ([]int, error) {
	var n = cm.Len()
	if n == 0 {
		return nil, ErrNoCities
	}
	if len(tour) != n {
		return nil, fmt.Errorf("%w: got %d cities, want %d", ErrInvalidTour, len(tour), n)
	}

	var (
		out  = make([]int, n)
		seen = make([]bool, n)
		p, k int
		ok   bool
	)
	for p = 0; p < n; p++ {
		k, ok = cm.index[tour[p]]
		if !ok {
			return nil, fmt.Errorf("%w: %d at position %d", ErrUnknownCity, tour[p], p)
		}
		if seen[k] {
			return nil, fmt.Errorf("%w: city %d repeated at position %d", ErrInvalidTour, tour[p], p)
		}
		seen[k] = true
		out[p] = k
	}

	return out, nil
}

// inRange reports whether x is a number within ±MaxCoordinate (false for NaN and ±Inf).
func inRange(x float64) bool {
	return x >= -MaxCoordinate && x <= MaxCoordinate
}
