package tsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInput is the root of every input-validation failure. All other
// validation sentinels wrap it, so callers may match the whole class with
// errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("tsp: invalid input")

// Sentinel errors returned by the solvers.
var (
	// ErrNoCities indicates an empty (or nil) city set.
	ErrNoCities = fmt.Errorf("%w: no cities provided", ErrInvalidInput)

	// ErrDuplicateCity indicates that the same city ID was supplied twice.
	ErrDuplicateCity = fmt.Errorf("%w: duplicate city id", ErrInvalidInput)

	// ErrInvalidCoordinate indicates a NaN, infinite or out-of-range coordinate.
	ErrInvalidCoordinate = fmt.Errorf("%w: malformed coordinate", ErrInvalidInput)

	// ErrUnknownCity indicates a tour entry that is not a key of the CityMap.
	ErrUnknownCity = fmt.Errorf("%w: unknown city id", ErrInvalidInput)

	// ErrInvalidTour indicates a tour that is not a permutation of the CityMap keys
	// (wrong length, repeated or missing cities).
	ErrInvalidTour = fmt.Errorf("%w: tour is not a permutation of the cities", ErrInvalidInput)

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = fmt.Errorf("%w: bad option", ErrInvalidInput)
)

// ErrInterrupted is returned (wrapped together with the context error) when a
// caller cancels the context or the time limit expires between 2-opt passes.
// The tour returned alongside it is the last fully completed one.
var ErrInterrupted = errors.New("tsp: optimization interrupted")

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// City pairs a unique identifier with its coordinate.
type City struct {
	ID int64
	Point
}

// Tour is an ordered sequence of city IDs visiting every city exactly once.
// The cycle is closed implicitly: after the last element the path returns to
// the first. Unlike matrix-index tours, the closing city is NOT repeated.
type Tour []int64

// String renders a tour compactly, e.g. "[1 2 3 4 | 1]", where the vertical
// bar marks the implicit return to the first city.
//
// Complexity: O(n).
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < len(t); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(t[i], 10))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.FormatInt(t[0], 10))
	sb.WriteByte(']')

	return sb.String()
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the refined visiting order.
	Tour Tour

	// Length is the total rounded length of Tour (see Length).
	Length int64

	// InitialLength is the length of the nearest-neighbor tour before 2-opt.
	InitialLength int64

	// Swaps is the number of 2-opt reversals applied.
	Swaps int

	// Passes is the number of outer 2-opt passes started.
	Passes int

	// Elapsed is the wall-clock time spent in Build, Improve and Length.
	Elapsed time.Duration
}
