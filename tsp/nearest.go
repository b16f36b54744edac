// Package tsp - nearest-neighbor tour construction.
//
// Build starts from the first city in CityMap order and repeatedly moves to
// the closest unvisited city by rounded distance.
//
// Tie-breaking: the unvisited set is an order-preserving list, scanned front to
// back, and a candidate replaces the current best only on a strict "<". The
// earliest remaining city in CityMap order therefore wins every tie.
//
// Complexity: O(n²) time (n steps, each a linear scan of the shrinking list
// plus an O(n) order-preserving removal), O(n) space.
package tsp

// Build constructs the nearest-neighbor tour over cm.
//
// Errors: ErrNoCities for a nil or empty map.
func Build(cm *CityMap) (Tour, error) {
	if cm.Len() == 0 {
		return nil, ErrNoCities
	}

	return cm.idTour(nearestNeighbor(newMetric(cm, 0))), nil
}

// nearestNeighbor returns the dense-index NN tour starting at index 0.
func nearestNeighbor(m *metric) []int {
	var (
		n         = m.n
		tour      = make([]int, 1, n)
		unvisited = make([]int, n-1)
		k         int
	)
	for k = 1; k < n; k++ {
		unvisited[k-1] = k
	}

	var (
		cur      int // current city (dense index)
		bestPos  int // position of the closest city inside unvisited
		bestDist int64
		d        int64
		p        int
	)
	for len(unvisited) > 0 {
		bestPos = 0
		bestDist = m.dist(cur, unvisited[0])
		for p = 1; p < len(unvisited); p++ {
			d = m.dist(cur, unvisited[p])
			if d < bestDist { // strict: first city wins ties
				bestDist = d
				bestPos = p
			}
		}

		cur = unvisited[bestPos]
		tour = append(tour, cur)
		// Order-preserving removal keeps tie-breaking stable for later steps.
		copy(unvisited[bestPos:], unvisited[bestPos+1:])
		unvisited = unvisited[:len(unvisited)-1]
	}

	return tour
}

// idTour maps a dense-index tour back to city IDs.
func (cm *CityMap) idTour(dense []int) Tour {
	out := make(Tour, len(dense))
	cm.writeTour(out, dense)
	return out
}
