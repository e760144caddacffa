package crt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrajectoryCenteredWithoutDeflection(t *testing.T) {
	t.Parallel()

	k := NewKinematic(DefaultGeometry())
	tr, err := k.Trajectory(0, 0, 2000)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.Impact.X)
	assert.Equal(t, 0.0, tr.Impact.Y)
	require.Len(t, tr.Path, 2*pathSamples)
	for _, p := range tr.Path {
		assert.Equal(t, 0.0, p.X)
		assert.Equal(t, 0.0, p.Y)
	}
}

func TestTrajectoryPathSpansTube(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry()
	tr, err := NewKinematic(g).Trajectory(50, -50, 2000)
	require.NoError(t, err)

	start, end := g.PlateSpan()
	assert.InDelta(t, start, tr.Path[0].Z, 1e-12)
	assert.InDelta(t, end, tr.Path[pathSamples-1].Z, 1e-12)
	assert.InDelta(t, 1.0, tr.Path[len(tr.Path)-1].Z, 1e-12)

	last := tr.Path[len(tr.Path)-1]
	assert.InDelta(t, tr.Impact.X, last.X, 1e-9)
	assert.InDelta(t, tr.Impact.Y, last.Y, 1e-9)
}

func TestTrajectoryElectronIsRepelled(t *testing.T) {
	t.Parallel()

	tr, err := NewKinematic(DefaultGeometry()).Trajectory(50, 50, 2000)
	require.NoError(t, err)

	// Negative charge: positive plate voltage pushes toward negative screen coordinates.
	assert.Less(t, tr.Impact.X, 0.0)
	assert.Less(t, tr.Impact.Y, 0.0)
	assert.InDelta(t, tr.Impact.X, tr.Impact.Y, 1e-12)
}

func TestTrajectoryStiffensWithAcceleration(t *testing.T) {
	t.Parallel()

	k := NewKinematic(DefaultGeometry())
	soft, err := k.Trajectory(40, 0, 1000)
	require.NoError(t, err)
	hard, err := k.Trajectory(40, 0, 4000)
	require.NoError(t, err)

	assert.Greater(t, math.Abs(soft.Impact.X), math.Abs(hard.Impact.X))
}

func TestTrajectoryClipsImpact(t *testing.T) {
	t.Parallel()

	tr, err := NewKinematic(DefaultGeometry()).Trajectory(1e6, -1e6, 500)
	require.NoError(t, err)
	assert.Equal(t, -1.0, tr.Impact.X)
	assert.Equal(t, 1.0, tr.Impact.Y)
}

func TestTrajectoryErrors(t *testing.T) {
	t.Parallel()

	k := NewKinematic(DefaultGeometry())
	for _, vacc := range []float64{0, -100, math.NaN(), math.Inf(1)} {
		_, err := k.Trajectory(1, 1, vacc)
		assert.ErrorIs(t, err, ErrNoAcceleration, "vacc=%v", vacc)
	}

	_, err := k.Trajectory(math.NaN(), 0, 2000)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAcceleration)
}

func TestBeamIntensity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.3, BeamIntensity(0), 1e-12)
	assert.InDelta(t, 0.3, BeamIntensity(500), 1e-12)
	assert.InDelta(t, 0.65, BeamIntensity(2250), 1e-12)
	assert.InDelta(t, 1.0, BeamIntensity(4000), 1e-12)
	assert.InDelta(t, 1.0, BeamIntensity(9000), 1e-12)
}

func TestPathTo(t *testing.T) {
	t.Parallel()

	k := NewKinematic(DefaultGeometry())
	impact := Point{X: 0.5, Y: -0.25}
	path := k.PathTo(impact)
	require.Len(t, path, 2*pathSamples)

	assert.Equal(t, 0.0, path[0].X)
	assert.Equal(t, 0.0, path[0].Y)
	last := path[len(path)-1]
	assert.InDelta(t, 1.0, last.Z, 1e-12)
	assert.InDelta(t, impact.X, last.X, 1e-12)
	assert.InDelta(t, impact.Y, last.Y, 1e-12)

	for i := 1; i < len(path); i++ {
		assert.GreaterOrEqual(t, path[i].X, path[i-1].X, "deflection must grow along the tube")
	}
}

func TestPathToMatchesTrajectoryShape(t *testing.T) {
	t.Parallel()

	k := NewKinematic(DefaultGeometry())
	tr, err := k.Trajectory(30, 10, 2000)
	require.NoError(t, err)

	shaped := k.PathTo(tr.Impact)
	for i := range shaped {
		assert.InDelta(t, tr.Path[i].Z, shaped[i].Z, 1e-9)
		assert.InDelta(t, tr.Path[i].X, shaped[i].X, 1e-9)
		assert.InDelta(t, tr.Path[i].Y, shaped[i].Y, 1e-9)
	}
}
