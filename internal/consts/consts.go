package consts

// Editor geometry, in canvas units
const (
	GridSize   = 20 // Placement grid
	AnchorX    = 30 // Wire anchor offset from component origin
	AnchorY    = 0
	DuplicateX = 100 // Offset of a duplicated component
	DuplicateY = 40
)

// Simulated time advanced per pass (s)
const (
	TickDelta = 0.016 // Periodic driver, ~60 frames per second
	StepDelta = 0.1   // Manual step
)

// Nominal currents used by the single-driver engine (A)
const (
	SourceCurrent      = 0.1
	SwitchCurrent      = 1.0
	ReactiveCurrent    = 0.01
	MeasurementCurrent = 0.001
	ActiveThreshold    = 0.001 // Resistor is active above 1mA
)

const DefaultMagnitude = 1000.0 // Fallback for unparseable magnitudes (1k)
