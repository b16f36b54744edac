// Package eutsp computes approximate Euclidean Travelling Salesman tours:
// a nearest-neighbor construction refined by 2-opt local search, with
// integer (rounded) edge lengths.
//
// Everything is organized under three subpackages:
//
//	tsp/       - CityMap, Build, Improve, Length and the Solve pipeline
//	config/    - YAML configuration (validated) mapped onto tsp options
//	telemetry/ - Prometheus collector fed by Solve results and swap hooks
//
// Quick example:
//
//	cm, _ := tsp.NewCityMap([]tsp.City{
//		{ID: 1, Point: tsp.Point{X: 0, Y: 0}},
//		{ID: 2, Point: tsp.Point{X: 10, Y: 0}},
//		{ID: 3, Point: tsp.Point{X: 10, Y: 10}},
//		{ID: 4, Point: tsp.Point{X: 0, Y: 10}},
//	})
//	res, _ := tsp.Solve(ctx, cm)
//	// res.Length == 40, res.Tour == [1 2 3 4]
//
//	go get github.com/katalvlaran/eutsp
package eutsp
