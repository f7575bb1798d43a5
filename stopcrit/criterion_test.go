package stopcrit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/stopcrit"
)

func TestMaxIterations(t *testing.T) {
	c := stopcrit.MaxIterations(3)
	require.False(t, c.ShouldStop(2, 0, 0))
	require.True(t, c.ShouldStop(3, 0, 0))
	require.True(t, c.ShouldStop(4, 0, 0))
}

func TestMaxRuntime(t *testing.T) {
	c := stopcrit.MaxRuntime(2 * time.Second)
	require.False(t, c.ShouldStop(1, time.Second, 0))
	require.True(t, c.ShouldStop(1, 2*time.Second, 0))
}

func TestTargetCost(t *testing.T) {
	c := stopcrit.TargetCost(100)
	require.False(t, c.ShouldStop(1, 0, 150))
	require.True(t, c.ShouldStop(1, 0, 100))
	require.True(t, c.ShouldStop(1, 0, 50))
}

func TestNoImprovement(t *testing.T) {
	c := stopcrit.NoImprovement(2)
	require.False(t, c.ShouldStop(1, 0, 100)) // first observation always resets the clock
	require.False(t, c.ShouldStop(2, 0, 100)) // no improvement, but only 1 iteration since reset
	require.True(t, c.ShouldStop(3, 0, 100))  // 2 iterations with no improvement
	require.False(t, c.ShouldStop(4, 0, 90))  // improved, clock resets
	require.False(t, c.ShouldStop(5, 0, 90))
	require.True(t, c.ShouldStop(6, 0, 90))
}

func TestAny_FiresWhenOneFires(t *testing.T) {
	c := stopcrit.Any(stopcrit.MaxIterations(100), stopcrit.TargetCost(50))
	require.False(t, c.ShouldStop(1, 0, 100))
	require.True(t, c.ShouldStop(1, 0, 50))
}

func TestAll_RequiresEveryCriterion(t *testing.T) {
	c := stopcrit.All(stopcrit.MaxIterations(3), stopcrit.TargetCost(50))
	require.False(t, c.ShouldStop(3, 0, 100), "iterations met but cost not yet at target")
	require.False(t, c.ShouldStop(1, 0, 50), "cost met but iterations not yet reached")
	require.True(t, c.ShouldStop(3, 0, 50))
}

func TestWithRuntimeBudget_CancelsAfterDeadline(t *testing.T) {
	ctx, cancel := stopcrit.WithRuntimeBudget(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.False(t, stopcrit.Exceeded(ctx))
	<-ctx.Done()
	require.True(t, stopcrit.Exceeded(ctx))
}

func TestWithRuntimeBudget_ZeroDurationNeverCancels(t *testing.T) {
	ctx, cancel := stopcrit.WithRuntimeBudget(context.Background(), 0)
	defer cancel()
	require.False(t, stopcrit.Exceeded(ctx))
}
