package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueFactor(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{10e-9, "H", "10 nH"},
		{2.2e-12, "F", "2.2 pF"},
		{50, "Ohm", "50 Ohm"},
		{0, "H", "0 H"},
		{4.7e-3, "H", "4.7 mH"},
		{3e-15, "F", "3 fF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValueFactor(tt.value, tt.unit))
	}
}

func TestFormatComplex(t *testing.T) {
	assert.Equal(t, "50.000+j62.832 Ohm", FormatComplex(complex(50, 62.8318), "Ohm"))
	assert.Equal(t, "25.000-j10.000 Ohm", FormatComplex(complex(25, -10), "Ohm"))
	assert.Equal(t, "inf S", FormatComplex(complex(math.Inf(1), 0), "S"))
}

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "  1.000 GHz", FormatFrequency(1e9))
	assert.Equal(t, "433.920 MHz", FormatFrequency(433.92e6))
}

func TestFormatGamma(t *testing.T) {
	assert.Equal(t, "Gz=       1<  90.0deg", FormatGamma("Gz", 1i))
	assert.Equal(t, "Gy=     0.5< -90.0deg", FormatGamma("Gy", complex(0, -0.5)))
	assert.Equal(t, "Gz=1.00e-04<   0.0deg", FormatGamma("Gz", 1e-4))
}

func TestFormatPhase(t *testing.T) {
	assert.Equal(t, " -45.0", FormatPhase(-45))
	assert.Equal(t, " 180.0", FormatPhase(180))
}
