package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"BM11/internal/calc/tetra"
)

type Input struct {
	Project    string                `json:"project"`
	Author     string                `json:"author"`
	Title      string                `json:"title"`
	Parameters tetra.InputParameters `json:"parameters"`
}

type Handler struct{}

// Generate evaluates the posted structure and streams the full report
// as a PDF. An all-zero parameters record falls back to the defaults.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Structure Evaluation Report"
	}
	if input.Parameters == (tetra.InputParameters{}) {
		input.Parameters = tetra.DefaultInputParameters()
	}

	out, err := tetra.Evaluate(input.Parameters)
	if err != nil {
		if errors.Is(err, tetra.ErrInvalidTetrahedron) {
			http.Error(w, "Invalid tetrahedron", http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	var body bytes.Buffer
	WriteText(&body, input.Parameters, out)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.SetFont("Courier", "", 8)
	for _, line := range strings.Split(body.String(), "\n") {
		pdf.Cell(0, 4, line)
		pdf.Ln(4)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
