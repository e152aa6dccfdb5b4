package wind

import "BM11/internal/geom"

// Quasi-static wind pressure model: dynamic pressure in lb/ft^2 per
// (ft/s)^2 of the standard-air constant, flat-plate drag.
const (
	DynamicPressureCoefficient = 0.00256
	DragCoefficient            = 1.0
)

// Sweep bounds in mph.
const (
	SpeedMin  = 5.0
	SpeedMax  = 100.0
	SpeedStep = 5.0
)

type Sample struct {
	SpeedMPH float64 `json:"speed_mph"`
	Pressure float64 `json:"pressure_lb_ft2"`
	ForceXY  float64 `json:"force_xy_lbf"`
	ForceYZ  float64 `json:"force_yz_lbf"`
}

// Pressure returns the dynamic wind pressure in lb/ft^2 at the given
// speed in mph.
func Pressure(mph float64) float64 {
	fts := geom.MPHToFtPerSec(mph)
	return fts * fts * DynamicPressureCoefficient
}

// Force returns the quasi-static force in lbf on a projected area at
// the given speed.
func Force(areaFt2, mph float64) float64 {
	return areaFt2 * Pressure(mph) * DragCoefficient
}

// Sweep evaluates both projected sail areas from 5 to 100 mph in 5 mph
// steps, 20 samples inclusive.
func Sweep(areaXY, areaYZ float64) []Sample {
	var samples []Sample
	for mph := SpeedMin; mph <= SpeedMax; mph += SpeedStep {
		samples = append(samples, Sample{
			SpeedMPH: mph,
			Pressure: Pressure(mph),
			ForceXY:  Force(areaXY, mph),
			ForceYZ:  Force(areaYZ, mph),
		})
	}
	return samples
}
