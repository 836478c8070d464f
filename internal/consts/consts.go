package consts

const (
	DefaultFrequency = 1e9  // Evaluation frequency (Hz)
	DefaultZ0        = 50.0 // Reference impedance (Ohm)
	DefaultSteps     = 100  // Samples per element sweep
	DefaultLoad      = complex(50, 0)

	// |sin| or |cos| of an electrical angle below this is taken as exactly zero
	TanSnap = 1e-12
)
