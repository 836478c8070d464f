package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-smith/pkg/device"
	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/smith"
)

func status1G() *device.CircuitStatus {
	return &device.CircuitStatus{Frequency: 1e9, Z0: 50, Steps: 100}
}

func assertZ(t *testing.T, want complex128, got immittance.Impedance, delta float64) {
	t.Helper()
	require.False(t, got.IsInf(), "unexpected infinite impedance")
	assert.InDelta(t, real(want), got.Real(), delta, "real part")
	assert.InDelta(t, imag(want), got.Imag(), delta, "imaginary part")
}

func TestSweepSeriesInductor(t *testing.T) {
	status := status1G()
	l := device.NewInductor("L1", 10e-9, device.Series)

	trace := Sweep(immittance.Z(50), l, status)
	require.Len(t, trace, 100)

	xl := 2 * math.Pi * 1e9 * 10e-9
	assertZ(t, complex(50, xl/100), trace[0], 1e-9)
	assertZ(t, complex(50, xl/2), trace[49], 1e-9)
	assertZ(t, complex(50, 62.8319), trace[99], 1e-4)
}

func TestSweepSamplesExcludeStart(t *testing.T) {
	status := &device.CircuitStatus{Frequency: 1e9, Z0: 50, Steps: 4}
	trace := Sweep(immittance.Z(50), device.NewResistor("R1", 40, device.Series), status)
	require.Len(t, trace, 4)
	for i, want := range []float64{60, 70, 80, 90} {
		assertZ(t, complex(want, 0), trace[i], 1e-12)
	}
}

func TestSweepDefaultSteps(t *testing.T) {
	status := &device.CircuitStatus{Frequency: 1e9, Z0: 50}
	trace := Sweep(immittance.Z(50), device.NewResistor("R1", 1, device.Series), status)
	assert.Len(t, trace, 100)
}

func TestLumpedFormulas(t *testing.T) {
	status := status1G()
	omega := status.Omega()
	z := complex(30, -20)
	y := 1 / z

	tests := []struct {
		name string
		dev  device.Device
		want complex128
	}{
		{"series L", device.NewInductor("L", 5e-9, device.Series), z + complex(0, omega*5e-9)},
		{"shunt L", device.NewInductor("L", 5e-9, device.Shunt), 1 / (y + complex(0, -1/(omega*5e-9)))},
		{"series C", device.NewCapacitor("C", 3e-12, device.Series), z + complex(0, -1/(omega*3e-12))},
		{"shunt C", device.NewCapacitor("C", 3e-12, device.Shunt), 1 / (y + complex(0, omega*3e-12))},
		{"series R", device.NewResistor("R", 12, device.Series), z + 12},
		{"shunt R", device.NewResistor("R", 12, device.Shunt), 1 / (y + 1.0/12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := Sweep(immittance.Z(z), tt.dev, status)
			assertZ(t, tt.want, trace[len(trace)-1], 1e-9)
		})
	}
}

func TestTransmissionLine(t *testing.T) {
	status := status1G()
	load := immittance.Z(complex(100, 50))

	t.Run("zero length keeps the load", func(t *testing.T) {
		trace := Sweep(load, device.NewTransmissionLine("TL", 0, 50, device.Degrees), status)
		for _, z := range trace {
			assertZ(t, complex(100, 50), z, 1e-12)
		}
	})

	t.Run("half wave returns to the load", func(t *testing.T) {
		trace := Sweep(load, device.NewTransmissionLine("TL", 180, 50, device.Degrees), status)
		assertZ(t, complex(100, 50), trace[len(trace)-1], 1e-9)
	})

	t.Run("quarter wave inverts", func(t *testing.T) {
		trace := Sweep(immittance.Z(25), device.NewTransmissionLine("TL", 90, 50, device.Degrees), status)
		assertZ(t, 100, trace[len(trace)-1], 1e-9)

		trace = Sweep(load, device.NewTransmissionLine("TL", 90, 50, device.Degrees), status)
		assertZ(t, 2500/complex(100, 50), trace[len(trace)-1], 1e-9)
	})

	t.Run("negative length", func(t *testing.T) {
		trace := Sweep(immittance.Z(25), device.NewTransmissionLine("TL", -90, 50, device.Degrees), status)
		assertZ(t, 100, trace[len(trace)-1], 1e-9)
	})

	t.Run("matched line stays matched", func(t *testing.T) {
		trace := Sweep(immittance.Z(50), device.NewTransmissionLine("TL", 400, 50, device.Degrees), status)
		for _, z := range trace {
			assertZ(t, 50, z, 1e-9)
		}
	})

	t.Run("constant reflection magnitude", func(t *testing.T) {
		want := cmplx.Abs(smith.GammaZ(load, 50))
		trace := Sweep(load, device.NewTransmissionLine("TL", 270, 50, device.Degrees), status)
		for _, z := range trace {
			assert.InDelta(t, want, cmplx.Abs(smith.GammaZ(z, 50)), 1e-9)
		}
	})

	t.Run("open load", func(t *testing.T) {
		trace := Sweep(immittance.InfiniteZ(), device.NewTransmissionLine("TL", 90, 50, device.Degrees), status)
		assertZ(t, 0, trace[len(trace)-1], 0)
		// 45 degrees: -jZ0 cot
		assertZ(t, complex(0, -50), trace[49], 1e-9)
	})

	t.Run("short load at quarter wave opens", func(t *testing.T) {
		trace := Sweep(immittance.Z(0), device.NewTransmissionLine("TL", 90, 50, device.Degrees), status)
		assert.True(t, trace[len(trace)-1].IsInf())
	})
}

func TestStubs(t *testing.T) {
	status := status1G()
	load := immittance.Z(complex(100, 50))

	trace := Sweep(load, device.NewStub("ST", 90, 50, device.Degrees, device.Short), status)
	assertZ(t, complex(100, 50), trace[len(trace)-1], 1e-12)

	trace = Sweep(load, device.NewStub("ST", 90, 50, device.Degrees, device.Open), status)
	assertZ(t, 0, trace[len(trace)-1], 0)

	// Short stub at 45 degrees is +j50 in shunt.
	trace = Sweep(load, device.NewStub("ST", 45, 50, device.Degrees, device.Short), status)
	want := 1 / (1/complex(100, 50) + 1/complex(0, 50))
	assertZ(t, want, trace[len(trace)-1], 1e-9)
}

func TestSentinels(t *testing.T) {
	status := status1G()

	t.Run("series on open stays open", func(t *testing.T) {
		trace := Sweep(immittance.InfiniteZ(), device.NewInductor("L", 10e-9, device.Series), status)
		for _, z := range trace {
			assert.True(t, z.IsInf())
		}
	})

	t.Run("shunt on short stays short", func(t *testing.T) {
		trace := Sweep(immittance.Z(0), device.NewCapacitor("C", 1e-12, device.Shunt), status)
		for _, z := range trace {
			assertZ(t, 0, z, 0)
		}
	})

	t.Run("shunt on open", func(t *testing.T) {
		trace := Sweep(immittance.InfiniteZ(), device.NewResistor("R", 50, device.Shunt), status)
		assertZ(t, 50, trace[len(trace)-1], 1e-9)
		assertZ(t, 100, trace[49], 1e-9)
	})

	t.Run("zero valued series capacitor opens", func(t *testing.T) {
		trace := Sweep(immittance.Z(50), device.NewCapacitor("C", 0, device.Series), status)
		assert.True(t, trace[len(trace)-1].IsInf())
	})

	t.Run("zero valued shunt resistor shorts", func(t *testing.T) {
		trace := Sweep(immittance.Z(50), device.NewResistor("R", 0, device.Shunt), status)
		assertZ(t, 0, trace[len(trace)-1], 0)
	})

	t.Run("zero valued shunt inductor shorts", func(t *testing.T) {
		trace := Sweep(immittance.Z(50), device.NewInductor("L", 0, device.Shunt), status)
		assertZ(t, 0, trace[len(trace)-1], 0)
	})
}

func TestSweepNaNHoldsPrevious(t *testing.T) {
	status := status1G()
	trace := Sweep(immittance.Z(50), device.NewInductor("L", math.NaN(), device.Series), status)
	for _, z := range trace {
		assert.False(t, z.IsNaN())
		assertZ(t, 50, z, 0)
	}
}

func TestPropagate(t *testing.T) {
	status := status1G()

	segments, final := Propagate(immittance.Z(complex(100, 50)), nil, status)
	assert.Empty(t, segments)
	assertZ(t, complex(100, 50), final, 0)

	chain := []device.Device{
		device.NewResistor("R1", 10, device.Series),
		device.NewResistor("R2", 20, device.Series),
	}
	segments, final = Propagate(immittance.Z(50), chain, status)
	require.Len(t, segments, 2)
	assertZ(t, 50, segments[0].Start, 0)
	assertZ(t, 60, segments[1].Start, 1e-12)
	assertZ(t, 60, segments[0].Final(), 1e-12)
	assertZ(t, 80, final, 1e-12)

	assertZ(t, 50, Segment{Start: immittance.Z(50)}.Final(), 0)
}

func TestApplyUnknownDevicePanics(t *testing.T) {
	assert.Panics(t, func() {
		apply(immittance.Z(50), nil, 1, status1G())
	})
}
