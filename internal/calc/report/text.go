package report

import (
	"fmt"
	"io"

	"BM11/internal/calc/tetra"
	"BM11/internal/calc/wind"
	"BM11/internal/geom"
)

// WriteText renders the full evaluation report, wind-force sweep
// included. Angles print in degrees, lengths in ft.
func WriteText(w io.Writer, in tetra.InputParameters, out tetra.OutputParameters) {
	deg := geom.RadToDeg

	fmt.Fprintf(w, "Edge lengths:\n")
	fmt.Fprintf(w, "   length_OB = %.3f ft\n", out.EdgeLength.OB)
	fmt.Fprintf(w, "   length_BA = %.3f ft\n", out.EdgeLength.BA)
	fmt.Fprintf(w, "   length_OA = %.3f ft\n", out.EdgeLength.OA)
	fmt.Fprintf(w, "   length_AC = %.3f ft\n", out.EdgeLength.AC)

	fmt.Fprintf(w, "Scalene triangle OBA and OBC vertex angles:\n")
	fmt.Fprintf(w, "   angle_OAB = angle_OCB = %.3f degrees\n", deg(out.VertexAngle.OAB))
	fmt.Fprintf(w, "   angle_AOB = angle_COB = %.3f degrees\n", deg(out.VertexAngle.AOB))
	fmt.Fprintf(w, "   angle_ABO = angle_CBO = %.3f degrees\n", deg(out.VertexAngle.ABO))

	fmt.Fprintf(w, "Isoceles triangle ABC vertex angles:\n")
	fmt.Fprintf(w, "   angle_ABC             = %.3f degrees\n", deg(out.VertexAngle.ABC))
	fmt.Fprintf(w, "   angle_BAC = angle_BCA = %.3f degrees\n", deg(out.VertexAngle.BAC))

	fmt.Fprintf(w, "Isoceles triangle AOC vertex angles:\n")
	fmt.Fprintf(w, "   angle_AOC             = %.3f degrees\n", deg(out.VertexAngle.AOC))
	fmt.Fprintf(w, "   angle_OAC = angle_OCA = %.3f degrees\n", deg(out.VertexAngle.OAC))

	fmt.Fprintf(w, "Vertex coordinates:\n")
	for _, v := range []struct {
		name string
		p    geom.Vec3
	}{
		{"O ", out.VertexCoord.O},
		{"B0", out.VertexCoord.B0},
		{"A0", out.VertexCoord.A0},
		{"C0", out.VertexCoord.C0},
		{"B1", out.VertexCoord.B1},
		{"A1", out.VertexCoord.A1},
		{"C1", out.VertexCoord.C1},
	} {
		fmt.Fprintf(w, "   %s = [%+.3f, %+.3f, %+.3f]\n", v.name, v.p.X, v.p.Y, v.p.Z)
	}

	fmt.Fprintf(w, "Structural shape summary:\n")
	fmt.Fprintf(w, "   Footprint dimensions   = [%.3f, %.3f] ft\n", out.Overall.Footprint.X, out.Overall.Footprint.Y)
	fmt.Fprintf(w, "   Footprint surface area = %.3f ft^2\n", out.Overall.FootprintArea)
	fmt.Fprintf(w, "   Footprint aspect ratio = %.3f\n", out.Overall.FootprintAspectRatio)
	fmt.Fprintf(w, "   Height                 = %.3f ft\n", out.Overall.Height)
	fmt.Fprintf(w, "   Triangle surface area  = %.3f ft^2\n", out.Overall.TriangleArea)
	fmt.Fprintf(w, "   Walkway top angle      = %.3f degrees\n", deg(out.Overall.WalkwayTopAngle))
	fmt.Fprintf(w, "   Walkway base width     = %.3f ft\n", out.Overall.WalkwayBaseWidth)
	fmt.Fprintf(w, "   Walkway shoulder width = %.3f ft (at %.3f ft shoulder height)\n",
		out.Overall.WalkwayShoulderWidth, in.ShoulderHeight)

	fmt.Fprintf(w, "Important dihedral angles:\n")
	fmt.Fprintf(w, "   Between triangle pairs (angle_BOA_BOC)      = %.3f degrees\n", deg(out.Dihedral.BOA_BOC))
	fmt.Fprintf(w, "   Between triangle and ground (angle_BOA_ABC) = %.3f degrees\n", deg(out.Dihedral.BOA_ABC))

	fmt.Fprintf(w, "Frame info:\n")
	fmt.Fprintf(w, "   Perimeter length         = %.3f ft\n", out.Frame.PerimeterLength)
	fmt.Fprintf(w, "   Reinforce length         = %.3f ft\n", out.Frame.ReinforceLength)
	fmt.Fprintf(w, "   Total length             = %.3f ft\n", out.Frame.TotalLength)
	fmt.Fprintf(w, "   Cross-section dimensions = [%.3f, %.3f] in\n", in.FrameCrossSection.X, in.FrameCrossSection.Y)
	fmt.Fprintf(w, "   Wall thickness           = %.3f in\n", in.FrameWallThickness)
	fmt.Fprintf(w, "   Cross-section metal area = %.3f in^2\n", out.Frame.CrossSectionMetalArea)
	fmt.Fprintf(w, "   Metal volume             = %.3f in^3 (%.3f ft^3)\n",
		out.Frame.MetalVolume, out.Frame.MetalVolume/(12.0*12.0*12.0))
	fmt.Fprintf(w, "   Metal density            = %.3f lb/in^3\n", in.MetalDensity)
	fmt.Fprintf(w, "   Mass                     = %.3f lb\n", out.Frame.MetalMass)
	fmt.Fprintf(w, "   Metal cost               = $%.3f\n", out.Frame.MetalCost)
	fmt.Fprintf(w, "   Drill count              = %.1f\n", out.Frame.DrillCount)
	fmt.Fprintf(w, "   Drill cost               = $%.3f\n", out.Frame.DrillCost)
	fmt.Fprintf(w, "   Tap count                = %.1f\n", out.Frame.TapCount)
	fmt.Fprintf(w, "   Tap cost                 = $%.3f\n", out.Frame.TapCost)

	fmt.Fprintf(w, "Mirror coating info:\n")
	fmt.Fprintf(w, "   Total surface area       = %.3f ft^2\n", out.Mirror.SurfaceArea)
	fmt.Fprintf(w, "   Mirror cost              = $%.3f\n", out.Mirror.Cost)
	fmt.Fprintf(w, "   Mirror bolt count        = %.1f\n", out.Mirror.BoltCount)
	fmt.Fprintf(w, "   Mirror bolt cost         = $%.3f\n", out.Mirror.BoltCost)

	fmt.Fprintf(w, "Totals:\n")
	fmt.Fprintf(w, "   Mass = %.3f lb\n", out.Total.Mass)
	fmt.Fprintf(w, "   Cost = $%.3f\n", out.Total.Cost)

	samples := wind.Sweep(out.Wind.TotalSurfaceAreaXY, out.Wind.TotalSurfaceAreaYZ)
	fmt.Fprintf(w, "Wind:\n")
	fmt.Fprintf(w, "   XY plane:\n")
	fmt.Fprintf(w, "      Total surface area = %.3f ft^2\n", out.Wind.TotalSurfaceAreaXY)
	for _, s := range samples {
		fmt.Fprintf(w, "      Side force at %.0f MPH = %.0f lbs\n", s.SpeedMPH, s.ForceXY)
	}
	fmt.Fprintf(w, "   YZ plane:\n")
	fmt.Fprintf(w, "      Total surface area = %.3f ft^2\n", out.Wind.TotalSurfaceAreaYZ)
	for _, s := range samples {
		fmt.Fprintf(w, "      Side force at %.0f MPH = %.0f lbs\n", s.SpeedMPH, s.ForceYZ)
	}
}
