package simulation

import (
	"github.com/edp1096/toy-circuit/internal/consts"
	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
)

// Simulate computes the state of every component for one instant.
//
// This is a single-driver DC approximation, not network analysis: the first
// voltage source in component order drives every other component as if it
// were wired directly across it, whatever the wiring. See analysis.Network
// for a solver that follows the wires.
func Simulate(components []circuit.Component, wires []circuit.Wire) map[string]circuit.ComponentState {
	states := make(map[string]circuit.ComponentState, len(components))

	driver, ok := effectiveDriver(components)
	if !ok {
		// Unpowered circuit
		for _, c := range components {
			states[c.ID] = circuit.ComponentState{}
		}
		return states
	}

	driverVoltage := device.Voltage(driver.Properties)
	for _, c := range components {
		states[c.ID] = componentState(c, driverVoltage)
	}
	return states
}

func effectiveDriver(components []circuit.Component) (circuit.Component, bool) {
	for _, c := range components {
		if c.Type.IsVoltageSource() {
			return c, true
		}
	}
	return circuit.Component{}, false
}

func componentState(c circuit.Component, driverVoltage float64) circuit.ComponentState {
	var voltage, current float64
	var active bool

	switch c.Type.Rule() {
	case device.RuleSource:
		voltage = device.Voltage(c.Properties)
		current = consts.SourceCurrent
		active = true

	case device.RuleResistive:
		voltage = driverVoltage
		if resistance := resistanceOf(c.Properties); resistance != 0 {
			current = voltage / resistance
		}
		active = current > consts.ActiveThreshold

	case device.RuleSwitch:
		if c.Properties != nil && c.Properties.Closed() {
			voltage = driverVoltage
			current = consts.SwitchCurrent
			active = true
		}

	case device.RuleReactive:
		voltage = driverVoltage
		current = consts.ReactiveCurrent
		active = voltage > 0

	default:
		// Instruments and everything else
		voltage = driverVoltage
		current = consts.MeasurementCurrent
		active = voltage > 0
	}

	return circuit.ComponentState{
		Voltage:  voltage,
		Current:  current,
		Power:    voltage * current,
		IsActive: active,
	}
}

func resistanceOf(props device.Properties) float64 {
	if props == nil {
		return consts.DefaultMagnitude
	}
	return device.ParseMagnitude(props.Primary())
}
