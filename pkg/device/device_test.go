package device

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-smith/pkg/matrix"
)

func testStatus() *CircuitStatus {
	return &CircuitStatus{Frequency: 1e9, Z0: 50, Steps: 100}
}

func TestTan(t *testing.T) {
	tan, singular := Tan(math.Pi / 2)
	assert.True(t, singular)
	assert.True(t, math.IsInf(tan, 1))

	tan, singular = Tan(math.Pi)
	assert.False(t, singular)
	assert.Equal(t, 0.0, tan)

	tan, singular = Tan(math.Pi / 4)
	assert.False(t, singular)
	assert.InDelta(t, 1.0, tan, 1e-12)

	_, singular = Tan(-3 * math.Pi / 2)
	assert.True(t, singular)
}

func TestParseEnums(t *testing.T) {
	o, err := ParseOrientation("Shunt")
	require.NoError(t, err)
	assert.Equal(t, Shunt, o)
	o, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, Series, o)
	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)

	k, err := ParseStubKind("SC")
	require.NoError(t, err)
	assert.Equal(t, Short, k)
	_, err = ParseStubKind("matched")
	assert.Error(t, err)

	m, err := ParseLengthMode("λ")
	require.NoError(t, err)
	assert.Equal(t, Wavelength, m)
	_, err = ParseLengthMode("inch")
	assert.Error(t, err)

	assert.Equal(t, "shunt", Shunt.String())
	assert.Equal(t, "short", Short.String())
	assert.Equal(t, "lambda", Wavelength.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		dev  Device
		want string
	}{
		{NewInductor("L1", 10e-9, Series), "L series = 10 nH"},
		{NewCapacitor("C1", 2.2e-12, Shunt), "C shunt = 2.2 pF"},
		{NewResistor("R1", 50, Series), "R series = 50 Ohm"},
		{NewTransmissionLine("TL1", 90, 50, Degrees), "TL 90.00° Z0=50"},
		{NewTransmissionLine("TL2", 90, 70.7, Wavelength), "TL 0.25 λ Z0=70.7"},
		{NewStub("ST1", 45, 50, Degrees, Short), "Stub short 45.00° Z0=50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dev.Describe())
	}
}

func TestOrientationDrivesLumped(t *testing.T) {
	r := NewResistor("R1", 50, Series)
	r.Orientation = Shunt
	assert.Equal(t, "R shunt = 50 Ohm", r.Describe())

	buffer := &matrix.StampBuffer{}
	next, err := r.Stamp(buffer, 1, testStatus())
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestStubInputImpedance(t *testing.T) {
	short := NewStub("ST1", 90, 50, Degrees, Short)
	assert.True(t, short.InputImpedance(1).IsInf())
	assert.Equal(t, complex128(0), short.InputImpedance(0).Complex())
	assert.InDelta(t, 50.0, short.InputImpedance(0.5).Imag(), 1e-9)

	open := NewStub("ST2", 90, 50, Degrees, Open)
	assert.Equal(t, complex128(0), open.InputImpedance(1).Complex())
	assert.True(t, open.InputImpedance(0).IsInf())
	assert.InDelta(t, -50.0, open.InputImpedance(0.5).Imag(), 1e-9)
}

func TestLumpedAdmittance(t *testing.T) {
	status := testStatus()
	omega := status.Omega()

	l := NewInductor("L1", 10e-9, Series)
	assert.InDelta(t, -1/(omega*10e-9), l.Admittance(status).Imag(), 1e-12)

	c := NewCapacitor("C1", 1e-12, Shunt)
	assert.InDelta(t, omega*1e-12, c.Admittance(status).Imag(), 1e-15)

	r := NewResistor("R1", 25, Shunt)
	assert.Equal(t, complex(0.04, 0), r.Admittance(status).Complex())

	assert.True(t, NewResistor("R0", 0, Series).Admittance(status).IsInf())
}

func TestStampLumped(t *testing.T) {
	status := testStatus()

	buf := &matrix.StampBuffer{}
	next, err := NewResistor("R1", 50, Series).Stamp(buf, 1, status)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.Equal(t, 2, buf.Size)

	next, err = NewResistor("R2", 50, Shunt).Stamp(buf, next, status)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	_, err = NewResistor("R3", 0, Shunt).Stamp(buf, next, status)
	assert.ErrorIs(t, err, ErrUnstampable)

	_, err = NewCapacitor("C1", 0, Series).Stamp(buf, next, status)
	assert.ErrorIs(t, err, ErrUnstampable)
}

func TestStampLine(t *testing.T) {
	status := testStatus()

	buf := &matrix.StampBuffer{}
	next, err := NewTransmissionLine("TL1", 45, 50, Degrees).Stamp(buf, 1, status)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	next, err = NewTransmissionLine("TL2", 180, 50, Degrees).Stamp(buf, next, status)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	_, err = NewTransmissionLine("TL3", 45, 0, Degrees).Stamp(buf, next, status)
	assert.ErrorIs(t, err, ErrUnstampable)

	next, err = NewStub("ST1", 45, 50, Degrees, Open).Stamp(buf, 2, status)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	_, err = NewStub("ST2", 90, 50, Degrees, Open).Stamp(buf, 2, status)
	assert.ErrorIs(t, err, ErrUnstampable)
}
