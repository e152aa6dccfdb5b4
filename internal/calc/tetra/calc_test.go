package tetra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"BM11/internal/geom"
)

func TestEvaluateDefaults(t *testing.T) {
	in := DefaultInputParameters()
	out, err := Evaluate(in)
	require.NoError(t, err)

	require.InDelta(t, math.Sqrt2*16.0, out.EdgeLength.OA, 1e-9)
	require.InDelta(t, 14.0, out.EdgeLength.BA, 1e-9)
	require.InDelta(t, math.Sqrt(16.0*16.0+2.0*2.0), out.EdgeLength.OB, 1e-9)
	require.InDelta(t, 2.0*14.0*math.Sin(geom.DegToRad(55.0)), out.EdgeLength.AC, 1e-9)

	// mass counts frame metal only, cost is the five-term sum
	require.Equal(t, out.Frame.MetalMass, out.Total.Mass)
	require.Equal(t,
		out.Frame.MetalCost+out.Frame.DrillCost+out.Frame.TapCost+
			out.Mirror.Cost+out.Mirror.BoltCost,
		out.Total.Cost)

	require.Greater(t, out.Overall.Height, 0.0)
	require.Greater(t, out.Overall.TriangleArea, 0.0)
	require.Greater(t, out.Wind.TotalSurfaceAreaXY, 0.0)
	require.Greater(t, out.Wind.TotalSurfaceAreaYZ, 0.0)
}

func TestEvaluateFrameAndMirrorDefaults(t *testing.T) {
	in := DefaultInputParameters()
	out, err := Evaluate(in)
	require.NoError(t, err)

	e := out.EdgeLength
	perimeter := 4.0 * (e.BA + e.OA + e.OB)
	reinforce := 1.6*4.0*e.BA + out.Overall.WalkwayBaseWidth
	require.InDelta(t, perimeter, out.Frame.PerimeterLength, 1e-9)
	require.InDelta(t, reinforce, out.Frame.ReinforceLength, 1e-9)
	require.InDelta(t, perimeter+reinforce, out.Frame.TotalLength, 1e-9)

	// 0.75 x 1.5 tube with 1/16 in walls
	require.InDelta(t, 0.75*1.5-0.625*1.375, out.Frame.CrossSectionMetalArea, 1e-12)
	require.InDelta(t, out.Frame.CrossSectionMetalArea*out.Frame.TotalLength*12.0,
		out.Frame.MetalVolume, 1e-9)
	require.InDelta(t, out.Frame.MetalVolume*in.MetalDensity, out.Frame.MetalMass, 1e-9)

	require.InDelta(t, out.Frame.TotalLength/in.MirrorBoltSpacing, out.Frame.DrillCount, 1e-9)
	require.InDelta(t, 2.0*out.Frame.DrillCount, out.Frame.TapCount, 1e-9)
	require.InDelta(t, out.Frame.TapCount, out.Mirror.BoltCount, 1e-9)
	require.InDelta(t, 8.0*out.Overall.TriangleArea, out.Mirror.SurfaceArea, 1e-9)
	require.InDelta(t, out.Mirror.SurfaceArea*in.UnitCost.Mirror, out.Mirror.Cost, 1e-9)
}

func validGrid() []InputParameters {
	var inputs []InputParameters
	for _, side := range []float64{10, 16, 24} {
		for _, cutBack := range []float64{0, 1.5, 3} {
			for _, angleDeg := range []float64{45, 70, 90, 110, 140} {
				in := DefaultInputParameters()
				in.SquareSideLength = side
				in.BaseCutBackLength = cutBack
				in.AngleABC = geom.DegToRad(angleDeg)
				inputs = append(inputs, in)
			}
		}
	}
	return inputs
}

func TestCongruenceAndIsoceles(t *testing.T) {
	for _, in := range validGrid() {
		out, err := Evaluate(in)
		require.NoError(t, err)

		a := out.VertexAngle
		require.Equal(t, a.OAB, a.OCB)
		require.Equal(t, a.AOB, a.COB)
		require.Equal(t, a.ABO, a.CBO)
		require.Equal(t, a.BAC, a.BCA)
		require.Equal(t, a.OAC, a.OCA)

		// interior angles of each face sum to pi
		require.InDelta(t, math.Pi, a.OAB+a.AOB+a.ABO, 1e-9)
		require.InDelta(t, math.Pi, a.ABC+a.BAC+a.BCA, 1e-9)
		require.InDelta(t, math.Pi, a.AOC+a.OAC+a.OCA, 1e-9)
	}
}

func TestMirrorSymmetry(t *testing.T) {
	flip := geom.Vec3{X: 1, Y: 1, Z: -1}
	for _, in := range validGrid() {
		out, err := Evaluate(in)
		require.NoError(t, err)

		v := out.VertexCoord
		require.Equal(t, 0.0, v.O.Z)
		require.Equal(t, v.A0.MulComponents(flip), v.A1)
		require.Equal(t, v.B0.MulComponents(flip), v.B1)
		require.Equal(t, v.C0.MulComponents(flip), v.C1)
	}
}

func TestPlacementMatchesEdgeLengths(t *testing.T) {
	for _, in := range validGrid() {
		out, err := Evaluate(in)
		require.NoError(t, err)

		e := out.EdgeLength
		v := out.VertexCoord
		require.InDelta(t, e.OA, v.O.Sub(v.A0).Length(), 1e-9)
		require.InDelta(t, e.OA, v.O.Sub(v.C0).Length(), 1e-9)
		require.InDelta(t, e.OB, v.O.Sub(v.B0).Length(), 1e-9)
		require.InDelta(t, e.BA, v.B0.Sub(v.A0).Length(), 1e-9)
		require.InDelta(t, e.BA, v.B0.Sub(v.C0).Length(), 1e-9)
		require.InDelta(t, e.AC, v.A0.Sub(v.C0).Length(), 1e-9)
	}
}

func TestMonotonicityInSquareSide(t *testing.T) {
	var prev OutputParameters
	for i, side := range []float64{12, 16, 20, 24} {
		in := DefaultInputParameters()
		in.SquareSideLength = side
		out, err := Evaluate(in)
		require.NoError(t, err)
		if i > 0 {
			require.Greater(t, out.Frame.TotalLength, prev.Frame.TotalLength)
			require.Greater(t, out.Frame.MetalCost, prev.Frame.MetalCost)
			require.Greater(t, out.Mirror.Cost, prev.Mirror.Cost)
		}
		prev = out
	}
}

func TestDegenerateAngleBoundary(t *testing.T) {
	in := DefaultInputParameters()
	in.AngleABC = 1e-3
	out, err := Evaluate(in)
	require.NoError(t, err)

	// near-zero chord must not surface as NaN anywhere downstream
	require.False(t, math.IsNaN(out.VertexAngle.AOC))
	require.False(t, math.IsNaN(out.Overall.Height))
	require.False(t, math.IsNaN(out.Overall.WalkwayShoulderWidth))
	require.False(t, math.IsNaN(out.Total.Cost))
	require.InDelta(t, 0.0, out.EdgeLength.AC, 0.05)
}

func TestInvalidInput(t *testing.T) {
	cases := map[string]func(*InputParameters){
		"zero side":          func(in *InputParameters) { in.SquareSideLength = 0 },
		"negative side":      func(in *InputParameters) { in.SquareSideLength = -4 },
		"negative cut back":  func(in *InputParameters) { in.BaseCutBackLength = -1 },
		"cut back too large": func(in *InputParameters) { in.BaseCutBackLength = in.SquareSideLength },
		"zero angle":         func(in *InputParameters) { in.AngleABC = 0 },
		"angle at pi":        func(in *InputParameters) { in.AngleABC = math.Pi },
		"zero cross section": func(in *InputParameters) { in.FrameCrossSection.X = 0 },
		"negative wall":      func(in *InputParameters) { in.FrameWallThickness = -0.1 },
		"zero bolt spacing":  func(in *InputParameters) { in.MirrorBoltSpacing = 0 },
		"negative cost":      func(in *InputParameters) { in.UnitCost.Mirror = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := DefaultInputParameters()
			mutate(&in)
			out, err := Evaluate(in)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Equal(t, OutputParameters{}, out)
		})
	}
}

func TestInvalidTetrahedron(t *testing.T) {
	// short, wide-open base: the apex cannot close over it
	in := DefaultInputParameters()
	in.SquareSideLength = 8
	in.BaseCutBackLength = 4
	in.AngleABC = geom.DegToRad(150)

	out, err := Evaluate(in)
	require.ErrorIs(t, err, ErrInvalidTetrahedron)
	require.Equal(t, OutputParameters{}, out)
}
