package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"BM11/internal/calc/tetra"
	"BM11/internal/calc/wind"
	"BM11/internal/geom"
)

type Handler struct{}

// Xlsx evaluates the posted structure and returns a workbook with the
// derived quantities on one sheet and the wind-force sweep on another.
func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input tetra.InputParameters
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := tetra.Evaluate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := outputRows(input, out)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	sweepSheet := "Wind Sweep"
	if _, err := f.NewSheet(sweepSheet); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	header := []any{"Speed (mph)", "Pressure (lb/ft^2)", "Force XY (lbf)", "Force YZ (lbf)"}
	_ = f.SetSheetRow(sweepSheet, "A1", &header)
	for i, s := range wind.Sweep(out.Wind.TotalSurfaceAreaXY, out.Wind.TotalSurfaceAreaYZ) {
		row := []any{s.SpeedMPH, s.Pressure, s.ForceXY, s.ForceYZ}
		_ = f.SetSheetRow(sweepSheet, fmt.Sprintf("A%d", i+2), &row)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"evaluation.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func outputRows(in tetra.InputParameters, out tetra.OutputParameters) [][]any {
	deg := geom.RadToDeg
	return [][]any{
		{"Quantity", "Value", "Unit"},
		{"length_OB", out.EdgeLength.OB, "ft"},
		{"length_BA", out.EdgeLength.BA, "ft"},
		{"length_OA", out.EdgeLength.OA, "ft"},
		{"length_AC", out.EdgeLength.AC, "ft"},
		{"angle_OAB", deg(out.VertexAngle.OAB), "deg"},
		{"angle_AOB", deg(out.VertexAngle.AOB), "deg"},
		{"angle_ABO", deg(out.VertexAngle.ABO), "deg"},
		{"angle_ABC", deg(out.VertexAngle.ABC), "deg"},
		{"angle_BAC", deg(out.VertexAngle.BAC), "deg"},
		{"angle_AOC", deg(out.VertexAngle.AOC), "deg"},
		{"angle_OAC", deg(out.VertexAngle.OAC), "deg"},
		{"footprint_x", out.Overall.Footprint.X, "ft"},
		{"footprint_y", out.Overall.Footprint.Y, "ft"},
		{"footprint_area", out.Overall.FootprintArea, "ft^2"},
		{"height", out.Overall.Height, "ft"},
		{"triangle_area", out.Overall.TriangleArea, "ft^2"},
		{"walkway_top_angle", deg(out.Overall.WalkwayTopAngle), "deg"},
		{"walkway_base_width", out.Overall.WalkwayBaseWidth, "ft"},
		{"walkway_shoulder_width", out.Overall.WalkwayShoulderWidth, "ft"},
		{"dihedral_BOA_BOC", deg(out.Dihedral.BOA_BOC), "deg"},
		{"dihedral_BOA_ABC", deg(out.Dihedral.BOA_ABC), "deg"},
		{"frame_perimeter_length", out.Frame.PerimeterLength, "ft"},
		{"frame_reinforce_length", out.Frame.ReinforceLength, "ft"},
		{"frame_total_length", out.Frame.TotalLength, "ft"},
		{"frame_metal_area", out.Frame.CrossSectionMetalArea, "in^2"},
		{"frame_metal_volume", out.Frame.MetalVolume, "in^3"},
		{"frame_metal_mass", out.Frame.MetalMass, "lb"},
		{"frame_metal_cost", out.Frame.MetalCost, "$"},
		{"frame_drill_count", out.Frame.DrillCount, ""},
		{"frame_drill_cost", out.Frame.DrillCost, "$"},
		{"frame_tap_count", out.Frame.TapCount, ""},
		{"frame_tap_cost", out.Frame.TapCost, "$"},
		{"mirror_surface_area", out.Mirror.SurfaceArea, "ft^2"},
		{"mirror_cost", out.Mirror.Cost, "$"},
		{"mirror_bolt_count", out.Mirror.BoltCount, ""},
		{"mirror_bolt_cost", out.Mirror.BoltCost, "$"},
		{"wind_area_xy", out.Wind.TotalSurfaceAreaXY, "ft^2"},
		{"wind_area_yz", out.Wind.TotalSurfaceAreaYZ, "ft^2"},
		{"total_mass", out.Total.Mass, "lb"},
		{"total_cost", out.Total.Cost, "$"},
		{"shoulder_height", in.ShoulderHeight, "ft"},
	}
}
