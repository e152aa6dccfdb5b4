package wind

import (
	"encoding/json"
	"errors"
	"net/http"

	"BM11/internal/calc/tetra"
)

type Handler struct{}

type SweepResult struct {
	AreaXY  float64  `json:"area_xy_ft2"`
	AreaYZ  float64  `json:"area_yz_ft2"`
	Samples []Sample `json:"samples"`
}

// Sweep evaluates the posted structure and returns the wind-force table
// for both projected sail areas.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input tetra.InputParameters
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := tetra.Evaluate(input)
	if err != nil {
		if errors.Is(err, tetra.ErrInvalidTetrahedron) {
			http.Error(w, "Invalid tetrahedron", http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	res := SweepResult{
		AreaXY:  out.Wind.TotalSurfaceAreaXY,
		AreaYZ:  out.Wind.TotalSurfaceAreaYZ,
		Samples: Sweep(out.Wind.TotalSurfaceAreaXY, out.Wind.TotalSurfaceAreaYZ),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
