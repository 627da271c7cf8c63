package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-circuit/internal/consts"
	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
	"github.com/edp1096/toy-circuit/pkg/matrix"
)

const (
	DefaultGmin = 1e-12
	voltageTol  = 1e-9 // Open elements below this are idle
)

// Network is a DC operating point solver that follows the wires.
// Unlike simulation.Simulate it can fail, on a singular system.
type Network struct {
	Gmin float64
}

func NewNetwork() *Network {
	return &Network{Gmin: DefaultGmin}
}

func (n *Network) Name() string { return "network" }

func (n *Network) Solve(components []circuit.Component, wires []circuit.Wire) (map[string]circuit.ComponentState, error) {
	states := make(map[string]circuit.ComponentState, len(components))

	hasSource := false
	for _, c := range components {
		if c.Type.IsVoltageSource() {
			hasSource = true
			break
		}
	}
	if !hasSource {
		for _, c := range components {
			states[c.ID] = circuit.ComponentState{}
		}
		return states, nil
	}

	nl, err := BuildNetlist(components, wires)
	if err != nil {
		return nil, fmt.Errorf("building netlist: %v", err)
	}

	mat, err := matrix.NewMatrix(nl.Size())
	if err != nil {
		return nil, err
	}
	defer mat.Destroy()

	mat.Clear()
	nl.Stamp(mat)
	mat.LoadGmin(n.Gmin, nl.NumNodes)

	err = mat.Solve()
	if err != nil {
		return nil, fmt.Errorf("operating point: %v", err)
	}

	for i, c := range components {
		st := nl.reading(i, mat)
		if math.IsNaN(st.Voltage) || math.IsNaN(st.Current) {
			return nil, fmt.Errorf("operating point: no solution for %s", c.ID)
		}
		states[c.ID] = st
	}
	return states, nil
}

func (nl *Netlist) reading(i int, mat *matrix.CircuitMatrix) circuit.ComponentState {
	c := nl.Components[i]
	in, out := nl.Nodes(i)

	var voltage, current float64
	var active bool

	switch {
	case c.Type.Conduction() == device.ConductionSource:
		voltage = device.Voltage(c.Properties)
		if in != out {
			// Branch current of voltage source
			current = -mat.Value(nl.Branch(i))
		}
		active = math.Abs(current) > consts.ActiveThreshold

	default:
		voltage = mat.Value(in) - mat.Value(out)
		if r, ok := resistance(c); ok {
			current = voltage / r
			active = math.Abs(current) > consts.ActiveThreshold
		} else if c.Type.Conduction() == device.ConductionOpen {
			active = math.Abs(voltage) > voltageTol
		}
	}

	return circuit.ComponentState{
		Voltage:  voltage,
		Current:  current,
		Power:    voltage * current,
		IsActive: active,
	}
}
