package tetra

import (
	"BM11/internal/geom"
)

// UnitCost carries the per-unit prices used by the frame and mirror
// cost aggregates.
type UnitCost struct {
	FrameMetal            float64 `json:"frame_metal_per_ft"`
	Mirror                float64 `json:"mirror_per_ft2"`
	MirrorBolt            float64 `json:"mirror_bolt_each"`
	FrameThroughHoleDrill float64 `json:"frame_through_hole_drill_each"`
	FrameThroughHoleTap   float64 `json:"frame_through_hole_tap_each"`
}

// InputParameters defines the twin-tetrahedron structure. The base
// triangle comes from a square of side SquareSideLength with
// BaseCutBackLength trimmed off, opened to AngleABC on the ground plane.
type InputParameters struct {
	SquareSideLength   float64   `json:"square_side_length_ft"`
	BaseCutBackLength  float64   `json:"base_cut_back_length_ft"`
	AngleABC           float64   `json:"angle_abc_rad"`
	FrameCrossSection  geom.Vec2 `json:"frame_cross_section_in"`
	FrameWallThickness float64   `json:"frame_wall_thickness_in"`
	MetalDensity       float64   `json:"metal_density_lb_in3"`
	ShoulderHeight     float64   `json:"shoulder_height_ft"`
	MirrorBoltSpacing  float64   `json:"mirror_bolt_spacing_ft"`
	UnitCost           UnitCost  `json:"unit_cost"`
}

// EdgeLengths are the four distinct tetrahedron edge lengths in ft.
// OA = OC and BA = BC by symmetry.
type EdgeLengths struct {
	OB float64 `json:"ob_ft"`
	BA float64 `json:"ba_ft"`
	OA float64 `json:"oa_ft"`
	AC float64 `json:"ac_ft"`
}

// VertexAngles are the interior angles (radians) of the four triangular
// faces. OBC copies OBA because the two faces are congruent.
type VertexAngles struct {
	OAB float64 `json:"oab_rad"`
	AOB float64 `json:"aob_rad"`
	ABO float64 `json:"abo_rad"`
	OCB float64 `json:"ocb_rad"`
	COB float64 `json:"cob_rad"`
	CBO float64 `json:"cbo_rad"`
	ABC float64 `json:"abc_rad"`
	BAC float64 `json:"bac_rad"`
	BCA float64 `json:"bca_rad"`
	AOC float64 `json:"aoc_rad"`
	OAC float64 `json:"oac_rad"`
	OCA float64 `json:"oca_rad"`
}

// VertexCoords places both tetrahedra in the shared-apex frame: O sits
// on the base plane z=0 and the second tetrahedron is the first with z
// negated.
type VertexCoords struct {
	O  geom.Vec3 `json:"o"`
	A0 geom.Vec3 `json:"a0"`
	B0 geom.Vec3 `json:"b0"`
	C0 geom.Vec3 `json:"c0"`
	A1 geom.Vec3 `json:"a1"`
	B1 geom.Vec3 `json:"b1"`
	C1 geom.Vec3 `json:"c1"`
}

type OverallStructure struct {
	Footprint            geom.Vec2 `json:"footprint_ft"`
	FootprintArea        float64   `json:"footprint_area_ft2"`
	FootprintAspectRatio float64   `json:"footprint_aspect_ratio"`
	Height               float64   `json:"height_ft"`
	TriangleArea         float64   `json:"triangle_area_ft2"`
	WalkwayTopAngle      float64   `json:"walkway_top_angle_rad"`
	WalkwayBaseWidth     float64   `json:"walkway_base_width_ft"`
	WalkwayShoulderWidth float64   `json:"walkway_shoulder_width_ft"`
}

type DihedralAngles struct {
	BOA_BOC float64 `json:"boa_boc_rad"`
	BOA_ABC float64 `json:"boa_abc_rad"`
}

type Frame struct {
	PerimeterLength       float64 `json:"perimeter_length_ft"`
	ReinforceLength       float64 `json:"reinforce_length_ft"`
	TotalLength           float64 `json:"total_length_ft"`
	CrossSectionMetalArea float64 `json:"cross_section_metal_area_in2"`
	MetalVolume           float64 `json:"metal_volume_in3"`
	MetalMass             float64 `json:"metal_mass_lb"`
	MetalCost             float64 `json:"metal_cost"`
	DrillCount            float64 `json:"drill_count"`
	DrillCost             float64 `json:"drill_cost"`
	TapCount              float64 `json:"tap_count"`
	TapCost               float64 `json:"tap_cost"`
}

type Mirror struct {
	SurfaceArea float64 `json:"surface_area_ft2"`
	Cost        float64 `json:"cost"`
	BoltCount   float64 `json:"bolt_count"`
	BoltCost    float64 `json:"bolt_cost"`
}

// Wind holds the projected sail areas used by the wind-force sweep.
type Wind struct {
	TotalSurfaceAreaXY float64 `json:"total_surface_area_xy_ft2"`
	TotalSurfaceAreaYZ float64 `json:"total_surface_area_yz_ft2"`
}

// Totals roll up mass and cost. Mass counts the frame metal only;
// mirror panels and fasteners are not modeled.
type Totals struct {
	Mass float64 `json:"mass_lb"`
	Cost float64 `json:"cost"`
}

// OutputParameters is recomputed whole on every evaluation; no field
// survives from a previous input.
type OutputParameters struct {
	EdgeLength  EdgeLengths      `json:"edge_length"`
	VertexAngle VertexAngles     `json:"vertex_angle"`
	VertexCoord VertexCoords     `json:"vertex_coord"`
	Overall     OverallStructure `json:"overall_structure"`
	Dihedral    DihedralAngles   `json:"dihedral_angle"`
	Frame       Frame            `json:"frame"`
	Mirror      Mirror           `json:"mirror"`
	Wind        Wind             `json:"wind"`
	Total       Totals           `json:"total"`
}

// DefaultInputParameters returns the as-built BM11 configuration:
// 16 ft square with a 2 ft cut back opened to 110 degrees, 0.75x1.5 in
// steel tube with 1/16 in walls.
func DefaultInputParameters() InputParameters {
	return InputParameters{
		SquareSideLength:   16.0,
		BaseCutBackLength:  2.0,
		AngleABC:           geom.DegToRad(110.0),
		FrameCrossSection:  geom.Vec2{X: 0.75, Y: 1.5},
		FrameWallThickness: 1.0 / 16.0,
		MetalDensity:       0.289,
		ShoulderHeight:     5.0,
		MirrorBoltSpacing:  2.0,
		UnitCost: UnitCost{
			FrameMetal:            4.4,
			Mirror:                220.0 / 32.0,
			MirrorBolt:            0.367,
			FrameThroughHoleDrill: 695.0 / 160.0,
			FrameThroughHoleTap:   480.0 / 320.0,
		},
	}
}
