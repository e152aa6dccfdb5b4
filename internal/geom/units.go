package geom

import "math"

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// MPHToFtPerSec converts a wind speed in miles per hour to feet per second.
func MPHToFtPerSec(mph float64) float64 {
	return mph * 1.46667
}

func FtToIn(ft float64) float64 {
	return ft * 12.0
}
