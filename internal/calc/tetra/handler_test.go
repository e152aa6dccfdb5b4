package tetra

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"BM11/internal/geom"
)

func postCalc(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/tetra/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	return rec
}

func TestHandlerCalc(t *testing.T) {
	body, err := json.Marshal(DefaultInputParameters())
	require.NoError(t, err)

	rec := postCalc(t, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var out OutputParameters
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.InDelta(t, 14.0, out.EdgeLength.BA, 1e-9)
}

func TestHandlerCalcBadPayload(t *testing.T) {
	rec := postCalc(t, []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCalcInvalidTetrahedron(t *testing.T) {
	in := DefaultInputParameters()
	in.SquareSideLength = 8
	in.BaseCutBackLength = 4
	in.AngleABC = geom.DegToRad(150)
	body, err := json.Marshal(in)
	require.NoError(t, err)

	rec := postCalc(t, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid tetrahedron")
}

func TestHandlerDefaults(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/tools/tetra/defaults", nil)
	rec := httptest.NewRecorder()
	h.Defaults(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var in InputParameters
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &in))
	require.Equal(t, DefaultInputParameters(), in)
}
