package circuit

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edp1096/toy-smith/internal/consts"
	"github.com/edp1096/toy-smith/internal/logging"
	"github.com/edp1096/toy-smith/pkg/device"
	"github.com/edp1096/toy-smith/pkg/immittance"
	"github.com/edp1096/toy-smith/pkg/netlist"
)

var (
	ErrZeroAdmittance  = errors.New("termination admittance is zero")
	ErrIndexOutOfRange = errors.New("element index out of range")
	ErrEditClosed      = errors.New("edit session already closed")
)

// Circuit is a committed element chain with its termination and evaluation
// settings. Element 0 sits next to the termination. It is safe for
// concurrent use; evaluations work on Snapshot copies.
type Circuit struct {
	mu          sync.RWMutex
	name        string
	devices     []device.Device
	termination immittance.Impedance
	status      device.CircuitStatus
	logger      *slog.Logger
}

func New(name string) *Circuit {
	return &Circuit{
		name:        name,
		devices:     make([]device.Device, 0),
		termination: immittance.Z(consts.DefaultLoad),
		status: device.CircuitStatus{
			Frequency: consts.DefaultFrequency,
			Z0:        consts.DefaultZ0,
			Steps:     consts.DefaultSteps,
		},
		logger: logging.NewNop(),
	}
}

// FromNetlist builds a circuit from parsed netlist data.
func FromNetlist(data *netlist.NetlistData) (*Circuit, error) {
	ckt := New(data.Title)
	ckt.SetFrequency(data.Frequency)
	ckt.SetZ0(data.Z0)
	ckt.SetSteps(data.Steps)

	switch data.LoadMode {
	case netlist.LoadAdmittance:
		if err := ckt.SetTerminationAdmittance(data.Load); err != nil {
			return nil, err
		}
	default:
		ckt.SetTermination(immittance.Z(data.Load))
	}

	devices, err := data.Devices()
	if err != nil {
		return nil, fmt.Errorf("creating devices: %w", err)
	}
	for _, dev := range devices {
		ckt.Add(dev)
	}
	return ckt, nil
}

func (c *Circuit) WithLogger(logger *slog.Logger) *Circuit {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger != nil {
		c.logger = logger.With("circuit", c.name)
	}
	return c
}

func (c *Circuit) Name() string {
	return c.name
}

func (c *Circuit) SetFrequency(freq float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Frequency = freq
}

func (c *Circuit) SetZ0(z0 float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Z0 = z0
}

func (c *Circuit) SetSteps(steps int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Steps = steps
}

// Status returns a copy of the evaluation settings.
func (c *Circuit) Status() *device.CircuitStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := c.status
	return &status
}

func (c *Circuit) Termination() immittance.Impedance {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.termination
}

func (c *Circuit) SetTermination(z immittance.Impedance) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.termination = z
	c.logger.Debug("termination set", "z", z)
}

// SetTerminationAdmittance sets the termination from an admittance.
func (c *Circuit) SetTerminationAdmittance(y complex128) error {
	z, err := TerminationFromAdmittance(y)
	if err != nil {
		return err
	}
	c.SetTermination(z)
	return nil
}

// TerminationFromAdmittance converts an entered load admittance. A zero
// admittance has no finite impedance and is rejected.
func TerminationFromAdmittance(y complex128) (immittance.Impedance, error) {
	if y == 0 {
		return immittance.Impedance{}, ErrZeroAdmittance
	}
	return immittance.Y(y).Impedance(), nil
}

func (c *Circuit) Add(dev device.Device) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices = append(c.devices, dev)
	c.logger.Debug("element added", "index", len(c.devices)-1, "element", dev.Describe())
}

func (c *Circuit) Replace(index int, dev device.Device) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.devices) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.devices))
	}
	c.devices[index] = dev
	c.logger.Debug("element replaced", "index", index, "element", dev.Describe())
	return nil
}

// commitAt replaces the element at index, or appends when the chain has
// shrunk to index or below since the session opened.
func (c *Circuit) commitAt(index int, dev device.Device) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < len(c.devices) {
		c.devices[index] = dev
		c.logger.Debug("element replaced", "index", index, "element", dev.Describe())
		return
	}
	c.devices = append(c.devices, dev)
	c.logger.Debug("element added", "index", len(c.devices)-1, "element", dev.Describe())
}

func (c *Circuit) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.devices) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.devices))
	}
	c.devices = append(c.devices[:index], c.devices[index+1:]...)
	c.logger.Debug("element removed", "index", index)
	return nil
}

// RemoveLast drops the element farthest from the termination. It reports
// false on an empty chain.
func (c *Circuit) RemoveLast() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.devices) == 0 {
		return false
	}
	c.devices = c.devices[:len(c.devices)-1]
	c.logger.Debug("last element removed", "remaining", len(c.devices))
	return true
}

func (c *Circuit) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.devices)
}

// Snapshot copies the committed chain.
func (c *Circuit) Snapshot() []device.Device {
	c.mu.RLock()
	defer c.mu.RUnlock()
	devices := make([]device.Device, len(c.devices))
	copy(devices, c.devices)
	return devices
}

// Edit opens a session for a new element at the end of the chain
// (index == Len) or for replacing an existing one.
func (c *Circuit) Edit(index int) (*EditSession, error) {
	n := c.Len()
	if index < 0 || index > n {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, n)
	}
	return &EditSession{circuit: c, index: index}, nil
}

// EditSession holds a tentative element. Nothing reaches the committed
// chain until Commit.
type EditSession struct {
	circuit *Circuit
	index   int
	device  device.Device
	closed  bool
}

// Set replaces the tentative element.
func (s *EditSession) Set(dev device.Device) error {
	if s.closed {
		return ErrEditClosed
	}
	s.device = dev
	return nil
}

// Pending returns the target index and the tentative element, which is
// nil until Set is called or after the session closes.
func (s *EditSession) Pending() (int, device.Device) {
	if s.closed {
		return s.index, nil
	}
	return s.index, s.device
}

// Commit writes the tentative element into the chain. A session whose
// index has fallen past the end of the chain appends.
func (s *EditSession) Commit() error {
	if s.closed {
		return ErrEditClosed
	}
	s.closed = true
	if s.device == nil {
		return nil
	}
	s.circuit.commitAt(s.index, s.device)
	return nil
}

func (s *EditSession) Discard() {
	s.closed = true
	s.device = nil
}
