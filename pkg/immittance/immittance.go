// Package immittance holds impedance and admittance values that may be the
// infinite sentinel. An infinite impedance is an open circuit and converts to a
// zero admittance; a zero impedance converts to the infinite admittance (short).
package immittance

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Inf is the complex value reported for the infinite sentinel.
var Inf = complex(math.Inf(1), 0)

type Impedance struct {
	v   complex128
	inf bool
}

type Admittance struct {
	v   complex128
	inf bool
}

// Z wraps a complex impedance. Any infinite component yields the sentinel.
func Z(v complex128) Impedance {
	if cmplx.IsInf(v) {
		return Impedance{inf: true}
	}
	return Impedance{v: v}
}

func InfiniteZ() Impedance { return Impedance{inf: true} }

// ZRatio returns num/den as an impedance. A zero denominator gives the
// sentinel, except 0/0 which is taken as zero.
func ZRatio(num, den complex128) Impedance {
	if den == 0 {
		if num == 0 {
			return Impedance{}
		}
		return InfiniteZ()
	}
	return Z(num / den)
}

func (z Impedance) IsInf() bool { return z.inf }

func (z Impedance) IsNaN() bool { return !z.inf && cmplx.IsNaN(z.v) }

// Complex returns the value, or ∞+0j for the sentinel.
func (z Impedance) Complex() complex128 {
	if z.inf {
		return Inf
	}
	return z.v
}

func (z Impedance) Real() float64 { return real(z.Complex()) }
func (z Impedance) Imag() float64 { return imag(z.Complex()) }

// Admittance returns 1/Z.
func (z Impedance) Admittance() Admittance {
	switch {
	case z.inf:
		return Admittance{}
	case z.v == 0:
		return InfiniteY()
	}
	return Y(1 / z.v)
}

// Series adds two impedances. The sentinel absorbs.
func (z Impedance) Series(o Impedance) Impedance {
	if z.inf || o.inf {
		return InfiniteZ()
	}
	return Z(z.v + o.v)
}

func (z Impedance) String() string {
	if z.inf {
		return "∞"
	}
	return fmt.Sprint(z.v)
}

// Y wraps a complex admittance. Any infinite component yields the sentinel.
func Y(v complex128) Admittance {
	if cmplx.IsInf(v) {
		return Admittance{inf: true}
	}
	return Admittance{v: v}
}

func InfiniteY() Admittance { return Admittance{inf: true} }

// YRatio is the admittance counterpart of ZRatio.
func YRatio(num, den complex128) Admittance {
	if den == 0 {
		if num == 0 {
			return Admittance{}
		}
		return InfiniteY()
	}
	return Y(num / den)
}

func (y Admittance) IsInf() bool { return y.inf }

func (y Admittance) IsNaN() bool { return !y.inf && cmplx.IsNaN(y.v) }

func (y Admittance) Complex() complex128 {
	if y.inf {
		return Inf
	}
	return y.v
}

func (y Admittance) Real() float64 { return real(y.Complex()) }
func (y Admittance) Imag() float64 { return imag(y.Complex()) }

// Impedance returns 1/Y.
func (y Admittance) Impedance() Impedance {
	switch {
	case y.inf:
		return Impedance{}
	case y.v == 0:
		return InfiniteZ()
	}
	return Z(1 / y.v)
}

// Parallel adds two admittances. The sentinel absorbs.
func (y Admittance) Parallel(o Admittance) Admittance {
	if y.inf || o.inf {
		return InfiniteY()
	}
	return Y(y.v + o.v)
}

func (y Admittance) String() string {
	if y.inf {
		return "∞"
	}
	return fmt.Sprint(y.v)
}
