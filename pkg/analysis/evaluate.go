package analysis

import (
	"errors"
	"fmt"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/pkg/device"
	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/smith"
)

var ErrInvalidConfig = errors.New("invalid evaluation config")

// Config fixes everything an evaluation depends on besides the chain.
type Config struct {
	Frequency   float64 // Hz
	Z0          float64 // Chart reference impedance
	Termination immittance.Impedance
	Steps       int // Samples per element
}

func DefaultConfig() Config {
	return Config{
		Frequency:   consts.DefaultFrequency,
		Z0:          consts.DefaultZ0,
		Termination: immittance.Z(consts.DefaultLoad),
		Steps:       consts.DefaultSteps,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Frequency < 0:
		return fmt.Errorf("%w: negative frequency %g", ErrInvalidConfig, c.Frequency)
	case c.Z0 <= 0:
		return fmt.Errorf("%w: reference impedance must be positive, got %g", ErrInvalidConfig, c.Z0)
	case c.Steps < 1:
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

func (c Config) Status() *device.CircuitStatus {
	steps := c.Steps
	if steps < 1 {
		steps = consts.DefaultSteps
	}
	return &device.CircuitStatus{Frequency: c.Frequency, Z0: c.Z0, Steps: steps}
}

// Pending is a tentative element that is not part of the committed chain.
// An Index inside the chain replaces that element; any other Index appends.
type Pending struct {
	Index  int
	Device device.Device
}

// WithPending returns a new chain with pending applied. chain is not modified.
func WithPending(chain []device.Device, pending *Pending) []device.Device {
	devices := make([]device.Device, len(chain), len(chain)+1)
	copy(devices, chain)
	if pending == nil || pending.Device == nil {
		return devices
	}
	if pending.Index >= 0 && pending.Index < len(devices) {
		devices[pending.Index] = pending.Device
		return devices
	}
	return append(devices, pending.Device)
}

// SegmentRange locates one element's samples inside Result.Points.
type SegmentRange struct {
	Device      device.Device
	First, Last int
}

type Result struct {
	Points   []smith.Point // Termination first, then N samples per element
	Segments []SegmentRange
	Final    smith.Point
}

// ImpedanceTrace returns the impedance chart coordinates in order.
func (r *Result) ImpedanceTrace() []complex128 {
	trace := make([]complex128, len(r.Points))
	for i, p := range r.Points {
		trace[i] = p.GammaZ
	}
	return trace
}

// AdmittanceTrace returns the admittance chart coordinates in order.
func (r *Result) AdmittanceTrace() []complex128 {
	trace := make([]complex128, len(r.Points))
	for i, p := range r.Points {
		trace[i] = p.GammaY
	}
	return trace
}

func (r *Result) Impedances() []immittance.Impedance {
	zs := make([]immittance.Impedance, len(r.Points))
	for i, p := range r.Points {
		zs[i] = p.Z
	}
	return zs
}

// Evaluate runs the whole chain, with an optional pending edit, and projects
// every sample. It has no side effects and is safe for concurrent use.
func Evaluate(cfg Config, chain []device.Device, pending *Pending) Result {
	devices := WithPending(chain, pending)
	status := cfg.Status()

	points := make([]smith.Point, 0, 1+len(devices)*status.Steps)
	points = append(points, smith.Project(cfg.Termination, cfg.Z0))

	segments, _ := Propagate(cfg.Termination, devices, status)
	ranges := make([]SegmentRange, 0, len(segments))
	for _, seg := range segments {
		first := len(points)
		for _, z := range seg.Trace {
			points = append(points, smith.Project(z, cfg.Z0))
		}
		ranges = append(ranges, SegmentRange{Device: seg.Device, First: first, Last: len(points) - 1})
	}

	return Result{
		Points:   points,
		Segments: ranges,
		Final:    points[len(points)-1],
	}
}
