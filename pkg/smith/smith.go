// Package smith projects impedances onto the normalized reflection
// coefficient plane used by impedance and admittance Smith charts.
package smith

import (
	"math/cmplx"

	"github.com/edp1096/toy-smith/pkg/immittance"
)

// OpenPoint is where the infinite sentinel lands on either chart.
const OpenPoint = complex(1, 0)

// Point is one trace sample with both chart coordinates.
type Point struct {
	Z      immittance.Impedance
	Y      immittance.Admittance
	GammaZ complex128 // Impedance chart
	GammaY complex128 // Admittance chart
}

// GammaZ returns (Z-Z0)/(Z+Z0). An infinite Z maps to 1+0j.
func GammaZ(z immittance.Impedance, z0 float64) complex128 {
	if z.IsInf() {
		return OpenPoint
	}
	return reflection(z.Complex(), complex(z0, 0))
}

// GammaY returns (Y-Y0)/(Y+Y0) with Y0 = 1/Z0. An infinite Y maps to 1+0j.
func GammaY(y immittance.Admittance, z0 float64) complex128 {
	if y.IsInf() {
		return OpenPoint
	}
	return reflection(y.Complex(), complex(1/z0, 0))
}

func reflection(v, ref complex128) complex128 {
	den := v + ref
	if den == 0 {
		return cmplx.Inf()
	}
	return (v - ref) / den
}

// Project maps one impedance to both charts.
func Project(z immittance.Impedance, z0 float64) Point {
	y := z.Admittance()
	return Point{
		Z:      z,
		Y:      y,
		GammaZ: GammaZ(z, z0),
		GammaY: GammaY(y, z0),
	}
}

// ProjectAll projects a trace in order.
func ProjectAll(trace []immittance.Impedance, z0 float64) []Point {
	points := make([]Point, len(trace))
	for i, z := range trace {
		points[i] = Project(z, z0)
	}
	return points
}
