package wind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPressure(t *testing.T) {
	// exact arithmetic chain at the 20 mph sample point
	fts := 20.0 * 1.46667
	require.InDelta(t, fts*fts*0.00256, Pressure(20), 1e-12)
}

func TestForceScalesWithArea(t *testing.T) {
	require.InDelta(t, 2.0*Force(1, 35), Force(2, 35), 1e-12)
	require.Equal(t, 0.0, Force(0, 60))
}

func TestSweep(t *testing.T) {
	samples := Sweep(100, 50)
	require.Len(t, samples, 20)
	require.Equal(t, 5.0, samples[0].SpeedMPH)
	require.Equal(t, 100.0, samples[len(samples)-1].SpeedMPH)

	for _, s := range samples {
		require.InDelta(t, Pressure(s.SpeedMPH), s.Pressure, 1e-12)
		require.InDelta(t, 100*s.Pressure*DragCoefficient, s.ForceXY, 1e-9)
		require.InDelta(t, 50*s.Pressure*DragCoefficient, s.ForceYZ, 1e-9)
	}

	// force grows monotonically with speed
	for i := 1; i < len(samples); i++ {
		require.Greater(t, samples[i].ForceXY, samples[i-1].ForceXY)
	}
}
