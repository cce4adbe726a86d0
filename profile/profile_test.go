package profile

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestRunPublishesResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "profile")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p, err := New(Config{Iterations: 10})
	require.NoError(t, err)
	ch, err := p.Subscribe(context.Background(), 4)
	require.NoError(t, err)
	setups, runs := 0, 0
	results, err := p.Run(context.Background(),
		Suite{Name: "count", Setup: func() { setups++ }, Run: func() { runs++ }},
		Suite{Name: "noop", Run: func() {}},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 10, setups)
	require.Equal(t, 10, runs)
	require.Equal(t, "count", results[0].Suite)
	require.Equal(t, 10, results[0].Iterations)
	var published []Result
	for msg := range ch {
		published = append(published, msg.(Result))
	}
	require.Equal(t, results, published)
}

func TestRunOnlyOnce(t *testing.T) {
	p, err := New(Config{Iterations: 1})
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.ErrorIs(t, err, ErrClosed)
}

func TestSubscribeAfterRun(t *testing.T) {
	p, err := New(Config{Iterations: 1})
	require.NoError(t, err)
	_, err = p.Run(context.Background(), Suite{Name: "noop", Run: func() {}})
	require.NoError(t, err)
	ch, err := p.Subscribe(context.Background(), 1)
	require.ErrorIs(t, err, ErrClosed)
	require.Nil(t, ch)
}

func TestRunCancelled(t *testing.T) {
	p, err := New(Config{})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := p.Run(ctx, Suite{Name: "noop", Run: func() {}})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(Config{Iterations: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
	p, err := New(Config{Iterations: 1})
	require.NoError(t, err)
	_, err = p.Run(context.Background(), Suite{Name: "empty"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPerOp(t *testing.T) {
	r := Result{Suite: "x", Iterations: 4, Total: 100}
	require.EqualValues(t, 25, r.PerOp())
	require.Zero(t, Result{}.PerOp())
}
