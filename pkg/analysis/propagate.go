package analysis

import (
	"fmt"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/pkg/device"
	"github.com/edp1096/toy-smith/pkg/immittance"
)

// Segment is the sweep of one element, starting from the impedance left by
// the elements before it.
type Segment struct {
	Device device.Device
	Start  immittance.Impedance
	Trace  []immittance.Impedance
}

func (s Segment) Final() immittance.Impedance {
	if len(s.Trace) == 0 {
		return s.Start
	}
	return s.Trace[len(s.Trace)-1]
}

// Sweep grows dev from nothing to its full value on top of zStart. Sample i
// (1..N) is taken at t = i/N, so t=0 is never included and the last sample
// is the fully applied element. A NaN sample is replaced by the previous one.
func Sweep(zStart immittance.Impedance, dev device.Device, status *device.CircuitStatus) []immittance.Impedance {
	steps := status.Steps
	if steps < 1 {
		steps = consts.DefaultSteps
	}

	trace := make([]immittance.Impedance, steps)
	prev := zStart
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		z := apply(zStart, dev, t, status)
		if z.IsNaN() {
			z = prev
			if z.IsNaN() {
				z = immittance.InfiniteZ()
			}
		}
		trace[i-1] = z
		prev = z
	}
	return trace
}

// Propagate sweeps every element in order, index 0 first. Each sweep starts
// where the previous one ended. It returns the segments and the final
// impedance, which is the termination when the chain is empty.
func Propagate(termination immittance.Impedance, chain []device.Device, status *device.CircuitStatus) ([]Segment, immittance.Impedance) {
	z := termination
	segments := make([]Segment, 0, len(chain))
	for _, dev := range chain {
		seg := Segment{Device: dev, Start: z, Trace: Sweep(z, dev, status)}
		segments = append(segments, seg)
		z = seg.Final()
	}
	return segments, z
}

func apply(zStart immittance.Impedance, dev device.Device, t float64, status *device.CircuitStatus) immittance.Impedance {
	omega := status.Omega()

	switch d := dev.(type) {
	case *device.Inductor:
		if d.Orientation == device.Shunt {
			// Y = 1/Zstart - j·t/(ωL)
			return shunt(zStart, immittance.YRatio(complex(0, -t), complex(omega*d.Value, 0)))
		}
		return zStart.Series(immittance.Z(complex(0, omega*d.Value*t)))

	case *device.Capacitor:
		if d.Orientation == device.Shunt {
			// Y = 1/Zstart + j·ωC·t
			return shunt(zStart, immittance.Y(complex(0, omega*d.Value*t)))
		}
		return zStart.Series(immittance.ZRatio(complex(0, -t), complex(omega*d.Value, 0)))

	case *device.Resistor:
		if d.Orientation == device.Shunt {
			// Y = 1/Zstart + t/R
			return shunt(zStart, immittance.YRatio(complex(t, 0), complex(d.Value, 0)))
		}
		return zStart.Series(immittance.Z(complex(d.Value*t, 0)))

	case *device.TransmissionLine:
		return lineTransform(zStart, d.Z0, d.Angle(t))

	case *device.Stub:
		return shunt(zStart, d.InputImpedance(t).Admittance())
	}

	panic(fmt.Sprintf("analysis: unhandled device type %T", dev))
}

func shunt(zStart immittance.Impedance, y immittance.Admittance) immittance.Impedance {
	return zStart.Admittance().Parallel(y).Impedance()
}

// lineTransform is the lossless line input impedance
// Z = Z0·(Z + jZ0·tan βl) / (Z0 + jZ·tan βl), with its limits for an
// infinite load and for tan βl = ∞ (Z0²/Z).
func lineTransform(z immittance.Impedance, z0, angle float64) immittance.Impedance {
	tan, singular := device.Tan(angle)
	zc := complex(z0, 0)

	switch {
	case singular && z.IsInf():
		return immittance.Z(0)
	case singular:
		return immittance.ZRatio(zc*zc, z.Complex())
	case z.IsInf():
		return immittance.ZRatio(zc, complex(0, tan))
	}

	jt := complex(0, tan)
	zl := z.Complex()
	return immittance.ZRatio(zc*(zl+zc*jt), zc+zl*jt)
}
