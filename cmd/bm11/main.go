package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"BM11/internal/calc/report"
	"BM11/internal/calc/tetra"
	"BM11/internal/geom"
)

func main() {
	in := tetra.DefaultInputParameters()

	side := flag.Float64("side", in.SquareSideLength, "square side length (ft)")
	cutBack := flag.Float64("cutback", in.BaseCutBackLength, "base cut back length (ft)")
	angle := flag.Float64("angle", geom.RadToDeg(in.AngleABC), "ground-plane angle ABC (degrees)")
	shoulder := flag.Float64("shoulder", in.ShoulderHeight, "walkway shoulder height (ft)")
	jsonOut := flag.Bool("json", false, "print output parameters as JSON")
	flag.Parse()

	in.SquareSideLength = *side
	in.BaseCutBackLength = *cutBack
	in.AngleABC = geom.DegToRad(*angle)
	in.ShoulderHeight = *shoulder

	out, err := tetra.Evaluate(in)
	if err != nil {
		// Errors are printed, not signaled: the report run always
		// exits 0.
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Printf("ERROR: %v\n", err)
		}
		return
	}

	report.WriteText(os.Stdout, in, out)
}
