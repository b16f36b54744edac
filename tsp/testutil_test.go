// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/eutsp/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used for generated instances.
	seedDet = int64(42)

	// extentDet bounds generated coordinates to [0, extentDet).
	extentDet = 1000

	// nMedium is the default generated instance size.
	nMedium = 80
)

// squareCities is the 10×10 square: 1=(0,0), 2=(10,0), 3=(10,10), 4=(0,10).
func squareCities() []tsp.City {
	return []tsp.City{
		{ID: 1, Point: tsp.Point{X: 0, Y: 0}},
		{ID: 2, Point: tsp.Point{X: 10, Y: 0}},
		{ID: 3, Point: tsp.Point{X: 10, Y: 10}},
		{ID: 4, Point: tsp.Point{X: 0, Y: 10}},
	}
}

// mustCityMap builds a CityMap or fails the test.
func mustCityMap(t testing.TB, cities []tsp.City) *tsp.CityMap {
	t.Helper()
	cm, err := tsp.NewCityMap(cities)
	require.NoError(t, err)

	return cm
}

// randomCityMap builds a deterministic generated instance.
func randomCityMap(t testing.TB, n int, seed int64) *tsp.CityMap {
	t.Helper()
	cities, err := tsp.RandomCities(n, extentDet, seed)
	require.NoError(t, err)

	return mustCityMap(t, cities)
}

// mustLength evaluates a tour or fails the test.
func mustLength(t testing.TB, cm *tsp.CityMap, tour tsp.Tour) int64 {
	t.Helper()
	l, err := tsp.Length(cm, tour)
	require.NoError(t, err)

	return l
}

// bestSwapDelta recomputes, independently of the solver, the most negative
// per-edge 2-opt delta over the scanned neighborhood i∈[1,n-1], j∈[i+1,n-2].
// A 2-opt local optimum has bestSwapDelta ≥ 0.
func bestSwapDelta(t testing.TB, cm *tsp.CityMap, tour tsp.Tour) int64 {
	t.Helper()
	pt := func(id int64) tsp.Point {
		p, ok := cm.Point(id)
		require.True(t, ok, "city %d missing", id)
		return p
	}

	var (
		n    = len(tour)
		best int64
		i, j int
		d    int64
	)
	for i = 1; i < n; i++ {
		for j = i + 1; j < n-1; j++ {
			d = tsp.Distance(pt(tour[i-1]), pt(tour[j])) +
				tsp.Distance(pt(tour[i]), pt(tour[j+1])) -
				tsp.Distance(pt(tour[i-1]), pt(tour[i])) -
				tsp.Distance(pt(tour[j]), pt(tour[j+1]))
			if d < best {
				best = d
			}
		}
	}

	return best
}

// rectangleCities is the 1×1.4 rectangle 1=(0,0), 2=(0,1.4), 3=(1,0), 4=(1,1.4).
// Its sides round to 1 each, its diagonals (≈1.72) to 2.
func rectangleCities() []tsp.City {
	return []tsp.City{
		{ID: 1, Point: tsp.Point{X: 0, Y: 0}},
		{ID: 2, Point: tsp.Point{X: 0, Y: 1.4}},
		{ID: 3, Point: tsp.Point{X: 1, Y: 0}},
		{ID: 4, Point: tsp.Point{X: 1, Y: 1.4}},
	}
}
