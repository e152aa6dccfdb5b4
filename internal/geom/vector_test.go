package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3Dot(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	u := Vec3{X: 4, Y: -5, Z: 6}
	require.InDelta(t, 12.0, v.Dot(u), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	require.Equal(t, Vec3{Z: 1}, x.Cross(y))
	require.Equal(t, Vec3{Z: -1}, y.Cross(x))

	// cross product is orthogonal to both operands
	v := Vec3{X: 2, Y: -1, Z: 3}
	u := Vec3{X: -4, Y: 5, Z: 0.5}
	c := v.Cross(u)
	require.InDelta(t, 0.0, c.Dot(v), 1e-12)
	require.InDelta(t, 0.0, c.Dot(u), 1e-12)
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	n := v.Normalize()
	require.InDelta(t, 1.0, n.Length(), 1e-12)
	require.InDelta(t, 0.6, n.X, 1e-12)
	require.InDelta(t, 0.8, n.Y, 1e-12)

	require.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3MulComponents(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	require.Equal(t, Vec3{X: 1, Y: 2, Z: -3}, v.MulComponents(Vec3{X: 1, Y: 1, Z: -1}))
	require.Equal(t, Vec3{Y: 2}, v.MulComponents(Vec3{Y: 1}))
}

func TestUnits(t *testing.T) {
	require.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	require.InDelta(t, 90.0, RadToDeg(math.Pi/2), 1e-12)
	require.InDelta(t, 29.3334, MPHToFtPerSec(20), 1e-9)
	require.InDelta(t, 18.0, FtToIn(1.5), 1e-12)
}
