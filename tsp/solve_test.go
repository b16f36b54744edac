package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/eutsp/tsp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSolve_Square(t *testing.T) {
	cm := mustCityMap(t, squareCities())

	res, err := tsp.Solve(context.Background(), cm)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{1, 2, 3, 4}, res.Tour)
	assert.Equal(t, int64(40), res.Length)
	assert.Equal(t, int64(40), res.InitialLength)
	assert.Equal(t, 0, res.Swaps)
	assert.Equal(t, 1, res.Passes)
	assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
}

func TestSolve_SingleCity(t *testing.T) {
	cm := mustCityMap(t, []tsp.City{{ID: 1, Point: tsp.Point{X: 5, Y: 5}}})

	res, err := tsp.Solve(context.Background(), cm)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{1}, res.Tour)
	assert.Equal(t, int64(0), res.Length)
}

// TestSolve_MatchesComponents: the pipeline equals Build → Improve → Length.
func TestSolve_MatchesComponents(t *testing.T) {
	cm := randomCityMap(t, nMedium, seedDet)

	built, err := tsp.Build(cm)
	require.NoError(t, err)
	initial := mustLength(t, cm, built)
	improved, err := tsp.Improve(context.Background(), cm, built)
	require.NoError(t, err)

	res, err := tsp.Solve(context.Background(), cm, tsp.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, improved, res.Tour)
	assert.Equal(t, mustLength(t, cm, improved), res.Length)
	assert.Equal(t, initial, res.InitialLength)
	assert.LessOrEqual(t, res.Length, res.InitialLength)
	assert.Equal(t, res.Swaps+1, res.Passes, "one final pass finds nothing")
}

func TestSolve_Interrupted(t *testing.T) {
	cm := randomCityMap(t, nMedium, seedDet)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tsp.Solve(ctx, cm)
	assert.ErrorIs(t, err, tsp.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)

	// The result is still a complete, consistent nearest-neighbor tour.
	built, berr := tsp.Build(cm)
	require.NoError(t, berr)
	assert.Equal(t, built, res.Tour)
	assert.Equal(t, res.InitialLength, res.Length)
	assert.Equal(t, mustLength(t, cm, res.Tour), res.Length)
	assert.Zero(t, res.Passes)
}

func TestSolve_InvalidInput(t *testing.T) {
	res, err := tsp.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, tsp.ErrNoCities)
	assert.Equal(t, tsp.Result{}, res)

	cm := mustCityMap(t, squareCities())
	_, err = tsp.Solve(context.Background(), cm, tsp.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, tsp.ErrBadOption)
}

func TestSolve_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	cm := mustCityMap(t, squareCities())

	res, err := tsp.Solve(context.Background(), cm, tsp.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "tour solved", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, res.Length, entry.Data["length"])
	assert.Equal(t, 4, entry.Data["cities"])

	var debug int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			debug++
			assert.Equal(t, "2-opt reached local optimum", e.Message)
		}
	}
	assert.Equal(t, 1, debug)
}

func TestSolve_LogsSwapsAtTrace(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	cm := mustCityMap(t, squareCities())

	_, err := tsp.Improve(context.Background(), cm, tsp.Tour{1, 3, 2, 4}, tsp.WithLogger(logger))
	require.NoError(t, err)

	var traced []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.TraceLevel {
			traced = append(traced, e)
		}
	}
	require.Len(t, traced, 1)
	assert.Equal(t, "2-opt swap applied", traced[0].Message)
	assert.Equal(t, int64(-8), traced[0].Data["delta"])
}

func TestSolve_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cm := mustCityMap(t, squareCities())
	_, err := tsp.Solve(context.Background(), cm, tsp.WithTracerProvider(tp))
	require.NoError(t, err)

	ended := recorder.Ended()
	names := make([]string, 0, len(ended))
	for _, s := range ended {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"tsp.Build", "tsp.Improve", "tsp.Length", "tsp.Solve"}, names)

	root := ended[len(ended)-1]
	for _, s := range ended[:len(ended)-1] {
		assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID(), "%s is a child of tsp.Solve", s.Name())
	}
}
