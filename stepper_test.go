package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/astar"
)

func TestStepper_MatchesFindSolution(t *testing.T) {
	r := newCrossroads(20)
	want, err := astar.FindSolution(r.a, r.f, r.mesh)
	require.NoError(t, err)

	stepper, err := astar.NewStepper(r.a, r.f, r.mesh)
	require.NoError(t, err)

	var last astar.StepSnapshot
	for i := 1; !stepper.Done(); i++ {
		last, err = stepper.Step()
		require.NoError(t, err)
		assert.Equal(t, i, last.StepIndex)
		require.Less(t, i, 20, "stepper did not finish")
	}

	assert.True(t, last.Done)
	assert.True(t, last.Found)
	assert.Same(t, r.f, last.Current)
	assert.Equal(t, want.Path, last.Path)
	assert.Equal(t, want, stepper.Result())
}

func TestStepper_SnapshotsTrackFrontier(t *testing.T) {
	r := newCrossroads(5)
	stepper, err := astar.NewStepper(r.a, r.f, r.mesh)
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.Same(t, r.a, snapshot.Current)
	assert.Equal(t, 1, snapshot.OpenCount)
	assert.Equal(t, 1, snapshot.ClosedCount)
	assert.False(t, snapshot.Done)
	assert.Nil(t, snapshot.Path)

	snapshot, err = stepper.Step()
	require.NoError(t, err)
	assert.Same(t, r.b, snapshot.Current)
	assert.Equal(t, 2, snapshot.OpenCount)
	assert.Equal(t, 2, snapshot.ClosedCount)
}

func TestStepper_FinalSnapshotIsStable(t *testing.T) {
	r := newCrossroads(5)
	stepper, err := astar.NewStepper(r.f, r.a, r.mesh)
	require.NoError(t, err)

	first, err := stepper.Step()
	require.NoError(t, err)
	second, err := stepper.Step()
	require.NoError(t, err)

	assert.False(t, first.Done)
	assert.True(t, second.Done)
	assert.False(t, second.Found)

	third, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestStepper_BudgetStopsSearch(t *testing.T) {
	r := newCrossroads(20)
	stepper, err := astar.NewStepper(r.a, r.f, r.mesh, astar.WithMaxExpansions(1))
	require.NoError(t, err)

	_, err = stepper.Step()
	require.NoError(t, err)
	_, err = stepper.Step()
	assert.ErrorIs(t, err, astar.ErrBudgetExhausted)
	assert.True(t, stepper.Done())
}
