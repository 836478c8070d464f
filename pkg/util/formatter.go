package util

import (
	"fmt"
	"math"
	"math/cmplx"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1 || absValue == 0:
		return fmt.Sprintf("%.4g %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.4g m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.4g u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.4g n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.4g p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.4g f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e9:
		return fmt.Sprintf("%7.3f GHz", freq/1e9)
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

// FormatComplex renders rectangular form, e.g. "50.000+j62.832 Ohm".
// Infinite values print as "inf".
func FormatComplex(value complex128, unit string) string {
	if cmplx.IsInf(value) {
		return "inf " + unit
	}
	sign := '+'
	im := imag(value)
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = '-'
		im = -im
	}
	return fmt.Sprintf("%.3f%cj%.3f %s", real(value), sign, im, unit)
}

func FormatMagnitudePhase(name string, value, phase float64) string {
	return fmt.Sprintf("%s=%s<%sdeg", name, FormatMagnitude(value), FormatPhase(phase))
}

// FormatGamma prints a reflection coefficient in polar form.
func FormatGamma(name string, gamma complex128) string {
	return FormatMagnitudePhase(name, cmplx.Abs(gamma), cmplx.Phase(gamma)*180/math.Pi)
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}
