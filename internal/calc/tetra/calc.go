package tetra

import (
	"errors"
	"fmt"
	"math"

	"BM11/internal/geom"
)

var (
	// ErrInvalidInput reports an input outside the physical domain
	// before any solving happens.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTetrahedron reports a geometry inconsistency: the
	// law-of-sines cross-check failed or a solve step left its domain.
	ErrInvalidTetrahedron = errors.New("invalid tetrahedron")
)

// sinesTolerance bounds the absolute mismatch allowed between the two
// sine products of each 3D law-of-sines identity.
const sinesTolerance = 1e-3

func sq(x float64) float64 {
	return x * x
}

// guard collects the first out-of-domain inverse-trig or square-root
// argument instead of letting NaN propagate through the pipeline.
type guard struct {
	err error
}

func (g *guard) fail(op string, x float64) {
	if g.err == nil {
		g.err = fmt.Errorf("%w: %s argument %g out of domain", ErrInvalidTetrahedron, op, x)
	}
}

func (g *guard) acos(x float64) float64 {
	if x < -1 || x > 1 {
		g.fail("acos", x)
		return 0
	}
	return math.Acos(x)
}

func (g *guard) asin(x float64) float64 {
	if x < -1 || x > 1 {
		g.fail("asin", x)
		return 0
	}
	return math.Asin(x)
}

func (g *guard) sqrt(x float64) float64 {
	if x < 0 {
		g.fail("sqrt", x)
		return 0
	}
	return math.Sqrt(x)
}

func validate(in InputParameters) error {
	if in.SquareSideLength <= 0 || in.BaseCutBackLength < 0 ||
		in.SquareSideLength <= in.BaseCutBackLength {
		return fmt.Errorf("%w: need square side > base cut back >= 0", ErrInvalidInput)
	}
	if in.AngleABC <= 0 || in.AngleABC >= math.Pi {
		return fmt.Errorf("%w: angle ABC must lie in (0, pi)", ErrInvalidInput)
	}
	if in.FrameCrossSection.X <= 0 || in.FrameCrossSection.Y <= 0 {
		return fmt.Errorf("%w: frame cross section must be positive", ErrInvalidInput)
	}
	if in.FrameWallThickness < 0 || in.MetalDensity < 0 || in.ShoulderHeight < 0 {
		return fmt.Errorf("%w: negative wall thickness, density or shoulder height", ErrInvalidInput)
	}
	if in.MirrorBoltSpacing <= 0 {
		return fmt.Errorf("%w: mirror bolt spacing must be positive", ErrInvalidInput)
	}
	c := in.UnitCost
	if c.FrameMetal < 0 || c.Mirror < 0 || c.MirrorBolt < 0 ||
		c.FrameThroughHoleDrill < 0 || c.FrameThroughHoleTap < 0 {
		return fmt.Errorf("%w: unit costs must be non-negative", ErrInvalidInput)
	}
	return nil
}

// Evaluate derives the full output record from one input record. It is
// a pure function; on error the returned OutputParameters is zero.
func Evaluate(in InputParameters) (OutputParameters, error) {
	if err := validate(in); err != nil {
		return OutputParameters{}, err
	}

	var g guard

	// Edge lengths. OA is the diagonal of the defining square, AC the
	// chord of the isoceles base triangle opened to AngleABC.
	edges := EdgeLengths{
		OB: math.Hypot(in.SquareSideLength, in.BaseCutBackLength),
		BA: in.SquareSideLength - in.BaseCutBackLength,
		OA: math.Sqrt2 * in.SquareSideLength,
		AC: 2.0 * (in.SquareSideLength - in.BaseCutBackLength) * math.Sin(in.AngleABC/2.0),
	}

	// Scalene triangle OBA by the law of cosines; OBC is congruent.
	var ang VertexAngles
	ang.OAB = g.acos((sq(edges.OA) + sq(edges.BA) - sq(edges.OB)) / (2.0 * edges.OA * edges.BA))
	ang.AOB = g.acos((sq(edges.OA) + sq(edges.OB) - sq(edges.BA)) / (2.0 * edges.OA * edges.OB))
	ang.ABO = math.Pi - ang.OAB - ang.AOB
	ang.OCB = ang.OAB
	ang.COB = ang.AOB
	ang.CBO = ang.ABO

	// Isoceles triangles ABC and AOC.
	ang.ABC = in.AngleABC
	ang.BAC = (math.Pi - ang.ABC) / 2.0
	ang.BCA = ang.BAC
	ang.AOC = 2.0 * g.asin(edges.AC/(2.0*edges.OA))
	ang.OAC = (math.Pi - ang.AOC) / 2.0
	ang.OCA = ang.OAC
	if g.err != nil {
		return OutputParameters{}, g.err
	}

	if err := checkLawOfSines(ang); err != nil {
		return OutputParameters{}, err
	}

	coords, err := placeVertices(edges, &g)
	if err != nil {
		return OutputParameters{}, err
	}

	out := OutputParameters{
		EdgeLength:  edges,
		VertexAngle: ang,
		VertexCoord: coords,
	}
	aggregate(&out, in)
	return out, nil
}

// checkLawOfSines cross-validates the solved angles with the 3D law of
// sines, once per vertex taken as apex against the opposite face.
func checkLawOfSines(a VertexAngles) error {
	sin := math.Sin
	checks := []struct {
		apex     string
		lhs, rhs float64
	}{
		{"O", sin(a.OAC) * sin(a.OCB) * sin(a.ABO), sin(a.OCA) * sin(a.CBO) * sin(a.OAB)},
		{"A", sin(a.AOC) * sin(a.BCA) * sin(a.ABO), sin(a.OCA) * sin(a.ABC) * sin(a.AOB)},
		{"B", sin(a.BAC) * sin(a.OCB) * sin(a.AOB), sin(a.BCA) * sin(a.COB) * sin(a.OAB)},
		{"C", sin(a.OAC) * sin(a.COB) * sin(a.ABC), sin(a.AOC) * sin(a.CBO) * sin(a.BAC)},
	}
	for _, c := range checks {
		if math.Abs(c.lhs-c.rhs) > sinesTolerance {
			return fmt.Errorf("%w: law of sines mismatch at vertex %s", ErrInvalidTetrahedron, c.apex)
		}
	}
	return nil
}

// placeVertices synthesizes 3D coordinates for both tetrahedra. The AC
// midpoint starts at the origin; the finished frame is translated so
// that the shared apex O sits on the base plane z=0, and the second
// tetrahedron mirrors the first through that plane.
func placeVertices(e EdgeLengths, g *guard) (VertexCoords, error) {
	am := e.AC / 2.0
	a0 := geom.Vec3{X: -am}
	c0 := geom.Vec3{X: +am}
	b0 := geom.Vec3{Z: g.sqrt(sq(e.BA) - sq(am))}
	if g.err != nil {
		return VertexCoords{}, g.err
	}
	if b0.Z == 0 {
		return VertexCoords{}, fmt.Errorf("%w: degenerate base triangle", ErrInvalidTetrahedron)
	}

	var o geom.Vec3
	o.Z = (sq(e.OB) - sq(e.OA) + sq(am) - sq(b0.Z)) / (-2.0 * b0.Z)
	o.Y = g.sqrt(sq(e.OA) - sq(am) - sq(o.Z))
	if g.err != nil {
		return VertexCoords{}, g.err
	}

	a0.Z -= o.Z
	b0.Z -= o.Z
	c0.Z -= o.Z
	o.Z = 0

	mirror := geom.Vec3{X: 1, Y: 1, Z: -1}
	return VertexCoords{
		O:  o,
		A0: a0,
		B0: b0,
		C0: c0,
		A1: a0.MulComponents(mirror),
		B1: b0.MulComponents(mirror),
		C1: c0.MulComponents(mirror),
	}, nil
}

// aggregate fills in every derived quantity downstream of the solved
// geometry: overall shape, dihedral angles, frame, mirror, wind sail
// areas and totals. Pure arithmetic, no further solving.
func aggregate(out *OutputParameters, in InputParameters) {
	e := out.EdgeLength
	v := out.VertexCoord

	footprint := geom.Vec2{X: v.C0.X - v.A0.X, Y: v.A1.Z - v.A0.Z}
	triangleArea := v.O.Sub(v.B0).Cross(v.A0.Sub(v.B0)).Length() / 2.0
	out.Overall = OverallStructure{
		Footprint:            footprint,
		FootprintArea:        footprint.X * footprint.Y,
		FootprintAspectRatio: footprint.X / footprint.Y,
		Height:               v.O.Y,
		TriangleArea:         triangleArea,
		WalkwayTopAngle:      2.0 * math.Atan(v.B1.Z/v.O.Y),
		WalkwayBaseWidth:     v.B1.Z - v.B0.Z,
		WalkwayShoulderWidth: (v.O.Y - in.ShoulderHeight) * v.B1.Z * 2.0 / v.O.Y,
	}

	normBOA := v.B0.Sub(v.O).Cross(v.B0.Sub(v.A0)).Normalize()
	normBOC := v.B0.Sub(v.O).Cross(v.B0.Sub(v.C0)).Normalize()
	ground := geom.Vec3{Y: 1}
	out.Dihedral = DihedralAngles{
		BOA_BOC: math.Acos(normBOA.Dot(normBOC)),
		BOA_ABC: math.Acos(normBOA.Dot(ground)),
	}

	// Frame. The reinforce term is a coarse bracing estimate: roughly
	// 1.6x the BA run per triangle plus one cross-bar between B0 and B1.
	perimeter := 4.0 * (e.BA + e.OA + e.OB)
	reinforce := 1.6*4.0*e.BA + out.Overall.WalkwayBaseWidth
	total := perimeter + reinforce
	outer := in.FrameCrossSection.X * in.FrameCrossSection.Y
	inner := (in.FrameCrossSection.X - 2.0*in.FrameWallThickness) *
		(in.FrameCrossSection.Y - 2.0*in.FrameWallThickness)
	metalArea := outer - inner
	drillCount := total / in.MirrorBoltSpacing
	tapCount := 2.0 * drillCount // mirror panels attach on both faces
	out.Frame = Frame{
		PerimeterLength:       perimeter,
		ReinforceLength:       reinforce,
		TotalLength:           total,
		CrossSectionMetalArea: metalArea,
		MetalVolume:           metalArea * geom.FtToIn(total),
		MetalMass:             metalArea * geom.FtToIn(total) * in.MetalDensity,
		MetalCost:             total * in.UnitCost.FrameMetal,
		DrillCount:            drillCount,
		DrillCost:             drillCount * in.UnitCost.FrameThroughHoleDrill,
		TapCount:              tapCount,
		TapCost:               tapCount * in.UnitCost.FrameThroughHoleTap,
	}

	// 8 mirrored triangular faces across the two tetrahedra.
	out.Mirror = Mirror{
		SurfaceArea: 8.0 * triangleArea,
		Cost:        8.0 * triangleArea * in.UnitCost.Mirror,
		BoltCount:   tapCount,
		BoltCost:    tapCount * in.UnitCost.MirrorBolt,
	}

	out.Wind = Wind{
		TotalSurfaceAreaXY: 2.0 * projectedTriangleArea(v.O, v.B0, v.A0, geom.Vec3{X: 1, Y: 1}),
		TotalSurfaceAreaYZ: 2.0 * projectedTriangleArea(v.O, v.B0, v.A0, geom.Vec3{Y: 1, Z: 1}),
	}

	out.Total = Totals{
		Mass: out.Frame.MetalMass,
		Cost: out.Frame.MetalCost + out.Frame.DrillCost + out.Frame.TapCost +
			out.Mirror.Cost + out.Mirror.BoltCost,
	}
}

// projectedTriangleArea flattens triangle o,b,a onto a coordinate plane
// given by its component mask and returns the projected area.
func projectedTriangleArea(o, b, a, plane geom.Vec3) float64 {
	op := o.MulComponents(plane)
	bp := b.MulComponents(plane)
	ap := a.MulComponents(plane)
	return bp.Sub(ap).Cross(bp.Sub(op)).Length() / 2.0
}
