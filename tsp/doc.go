// Package tsp computes approximate Euclidean Travelling Salesman tours.
//
// Three solvers are used in sequence:
//
//   - Build: nearest-neighbor construction from the first city, O(n²).
//   - Improve: 2-opt local search (first improving i, best j, restart), O(passes·n²).
//   - Length: total tour length over the closed cycle, O(n).
//
// Solve chains the three under a scoped timer with optional time limit,
// logging (logrus) and tracing (OpenTelemetry).
//
// Every edge length is the Euclidean distance rounded to the nearest integer;
// tour lengths are sums of those integers. Cities live in a CityMap that keeps
// insertion order, so results are reproducible for the same input order.
//
// Invalid input fails fast with errors wrapping ErrInvalidInput.
package tsp
