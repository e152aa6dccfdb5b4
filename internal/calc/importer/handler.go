package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"BM11/internal/calc/tetra"
	"BM11/internal/geom"
)

type Handler struct{}

type ImportResult struct {
	Count   int                      `json:"count"`
	Results []tetra.OutputParameters `json:"results"`
}

// Batch evaluates one structure per spreadsheet row. Rows that fail to
// parse or evaluate are skipped, matching the lenient import behavior
// of the other tools.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []tetra.OutputParameters
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := tetra.Evaluate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// expected: square_side_ft, cut_back_ft, angle_deg, then optionally
// cross_x_in, cross_y_in, wall_in, density_lb_in3, shoulder_ft,
// bolt_spacing_ft; unit costs always come from the defaults.
func parseRow(row []string) (tetra.InputParameters, error) {
	if len(row) < 3 {
		return tetra.InputParameters{}, fmt.Errorf("bad row")
	}
	input := tetra.DefaultInputParameters()

	side, err := toFloat(row[0])
	if err != nil {
		return tetra.InputParameters{}, err
	}
	cutBack, err := toFloat(row[1])
	if err != nil {
		return tetra.InputParameters{}, err
	}
	angleDeg, err := toFloat(row[2])
	if err != nil {
		return tetra.InputParameters{}, err
	}
	input.SquareSideLength = side
	input.BaseCutBackLength = cutBack
	input.AngleABC = geom.DegToRad(angleDeg)

	optional := []*float64{
		&input.FrameCrossSection.X,
		&input.FrameCrossSection.Y,
		&input.FrameWallThickness,
		&input.MetalDensity,
		&input.ShoulderHeight,
		&input.MirrorBoltSpacing,
	}
	for i, dst := range optional {
		col := 3 + i
		if len(row) > col && row[col] != "" {
			if v, err := toFloat(row[col]); err == nil {
				*dst = v
			}
		}
	}
	return input, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
