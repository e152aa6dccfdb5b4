package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"

	"BM11/internal/geom"
)

func TestModelDefaults(t *testing.T) {
	m := NewModel()
	require.Equal(t, DefaultInputParameters(), m.InputParameters())

	out, err := m.OutputParameters()
	require.NoError(t, err)
	require.NotEqual(t, OutputParameters{}, out)
}

func TestModelCachedReadsAreIdentical(t *testing.T) {
	m := NewModel()

	first, err := m.OutputParameters()
	require.NoError(t, err)
	second, err := m.OutputParameters()
	require.NoError(t, err)

	// cache hit: bit-identical result, no recomputation side effects
	require.True(t, first == second)
}

func TestModelInvalidatesOnSetInput(t *testing.T) {
	m := NewModel()
	before, err := m.OutputParameters()
	require.NoError(t, err)

	in := m.InputParameters()
	in.SquareSideLength = 20
	m.SetInputParameters(in)
	require.Equal(t, in, m.InputParameters())

	after, err := m.OutputParameters()
	require.NoError(t, err)
	require.NotEqual(t, before, after)
	require.Greater(t, after.Frame.TotalLength, before.Frame.TotalLength)
}

func TestModelCachesError(t *testing.T) {
	m := NewModel()
	in := m.InputParameters()
	in.SquareSideLength = 8
	in.BaseCutBackLength = 4
	in.AngleABC = geom.DegToRad(150)
	m.SetInputParameters(in)

	out, err := m.OutputParameters()
	require.ErrorIs(t, err, ErrInvalidTetrahedron)
	require.Equal(t, OutputParameters{}, out)

	// same input, same error, still no output
	out, err = m.OutputParameters()
	require.ErrorIs(t, err, ErrInvalidTetrahedron)
	require.Equal(t, OutputParameters{}, out)
}
