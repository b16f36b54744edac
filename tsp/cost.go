// Package tsp - distance and tour-length utilities shared by all solvers.
//
// Rounding model (reproduced exactly, do not simplify):
//   - An edge length is math.Hypot rounded half away from zero, then truncated
//     to int64. Every comparison in Build and every per-edge 2-opt delta uses it.
//   - Tour length sums those per-edge integers; it never rounds the float sum.
//   - Under DeltaRoundedSum the 2-opt delta is instead the rounded float sum of
//     four raw lengths (see two_opt.go), which can judge moves differently.
//
// Design:
//   - metric hides whether raw lengths come from a precomputed matrix or from
//     math.Hypot on demand; both paths yield bit-identical float64 values.
//   - Dense int indices in hot loops; IDs only at the API boundary.
package tsp

import "math"

// Distance returns the Euclidean distance between a and b rounded to the
// nearest integer (halves away from zero).
//
// Complexity: O(1).
func Distance(a, b Point) int64 {
	return roundLength(math.Hypot(a.X-b.X, a.Y-b.Y))
}

// roundLength applies the two-stage rounding: math.Round, then truncation.
func roundLength(raw float64) int64 {
	return int64(math.Round(raw))
}

// metric provides raw (unrounded) and rounded edge lengths by dense index.
type metric struct {
	pts []Point
	n   int
	mat []float64 // optional row-major n×n cache of raw lengths; nil ⇒ on demand
}

// newMetric builds a metric over cm. When 0 < n ≤ matrixLimit, all pairwise raw
// lengths are precomputed.
//
// Complexity: O(1), or O(n²) time and space with the matrix.
func newMetric(cm *CityMap, matrixLimit int) *metric {
	m := &metric{pts: cm.pts, n: len(cm.pts)}
	if matrixLimit <= 0 || m.n > matrixLimit {
		return m
	}

	m.mat = make([]float64, m.n*m.n)
	var (
		i, j int
		h    float64
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			h = math.Hypot(m.pts[i].X-m.pts[j].X, m.pts[i].Y-m.pts[j].Y)
			m.mat[i*m.n+j] = h
			m.mat[j*m.n+i] = h
		}
	}

	return m
}

// raw returns the unrounded Euclidean length between dense indices u and v.
func (m *metric) raw(u, v int) float64 {
	if m.mat != nil {
		return m.mat[u*m.n+v]
	}
	return math.Hypot(m.pts[u].X-m.pts[v].X, m.pts[u].Y-m.pts[v].Y)
}

// dist returns the rounded length between dense indices u and v.
func (m *metric) dist(u, v int) int64 {
	return roundLength(m.raw(u, v))
}

// cycleLength sums rounded edge lengths over the closed cycle tour[k-1]→tour[k],
// with index −1 wrapping to the last element.
//
// Complexity: O(n).
func (m *metric) cycleLength(tour []int) int64 {
	var (
		n   = len(tour)
		sum int64
		k   int
	)
	if n == 0 {
		return 0
	}
	sum = m.dist(tour[n-1], tour[0])
	for k = 1; k < n; k++ {
		sum += m.dist(tour[k-1], tour[k])
	}

	return sum
}

// Length returns the total rounded length of the closed tour over cm.
// A single-city tour has length 0 (the wrap-around edge has zero length).
//
// Errors: ErrNoCities, ErrInvalidTour, ErrUnknownCity.
//
// Complexity: O(n) time, O(n) space for validation.
func Length(cm *CityMap, tour Tour) (int64, error) {
	dense, err := cm.denseTour(tour)
	if err != nil {
		return 0, err
	}

	return newMetric(cm, 0).cycleLength(dense), nil
}
