package analysis

import (
	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
	"github.com/edp1096/toy-circuit/pkg/matrix"
)

const ShortResistance = 1e-3 // Closed contacts, meters in series, inductors at DC

// resistance returns the DC resistance of c and whether it conducts at all.
// Sources are handled separately.
func resistance(c circuit.Component) (float64, bool) {
	switch c.Type.Conduction() {
	case device.ConductionResistive:
		if c.Properties == nil {
			return 0, false
		}
		r := device.ParseMagnitude(c.Properties.Primary())
		if r <= 0 {
			return ShortResistance, true
		}
		return r, true

	case device.ConductionShort:
		return ShortResistance, true

	case device.ConductionSwitched:
		if c.Properties != nil && c.Properties.Closed() {
			return ShortResistance, true
		}
		return 0, false

	default:
		return 0, false
	}
}

// stampConductance - G = 1/R between n1 and n2
func stampConductance(m matrix.DeviceMatrix, n1, n2 int, g float64) {
	if n1 != 0 {
		m.AddElement(n1, n1, g)
		if n2 != 0 {
			m.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			m.AddElement(n2, n1, -g)
		}
		m.AddElement(n2, n2, g)
	}
}

// stampVoltageSource - v(n1) - v(n2) = V, n1 positive
func stampVoltageSource(m matrix.DeviceMatrix, n1, n2, bIdx int, voltage float64) {
	if n1 == n2 {
		// Shorted source, leave the branch row empty
		return
	}

	if n1 != 0 {
		m.AddElement(bIdx, n1, 1) // v1 coefficient
		m.AddElement(n1, bIdx, 1) // n1 current
	}
	if n2 != 0 {
		m.AddElement(bIdx, n2, -1) // -v2 coefficient
		m.AddElement(n2, bIdx, -1) // n2 current
	}
	m.AddRHS(bIdx, voltage)
}

// Stamp loads every component of nl into m.
func (nl *Netlist) Stamp(m matrix.DeviceMatrix) {
	for i, c := range nl.Components {
		in, out := nl.Nodes(i)

		if c.Type.Conduction() == device.ConductionSource {
			// Out is the positive terminal
			stampVoltageSource(m, out, in, nl.Branch(i), device.Voltage(c.Properties))
			continue
		}

		if r, ok := resistance(c); ok {
			stampConductance(m, in, out, 1.0/r)
		}
	}
}
