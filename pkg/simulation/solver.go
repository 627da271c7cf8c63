package simulation

import (
	"log"

	"github.com/edp1096/toy-circuit/pkg/circuit"
)

// Solver derives a complete component state mapping for one instant.
type Solver interface {
	Name() string
	Solve(components []circuit.Component, wires []circuit.Wire) (map[string]circuit.ComponentState, error)
}

// SingleDriver is the default solver. It never fails.
type SingleDriver struct{}

func (SingleDriver) Name() string { return "single" }

func (SingleDriver) Solve(components []circuit.Component, wires []circuit.Wire) (map[string]circuit.ComponentState, error) {
	return Simulate(components, wires), nil
}

// Advance runs one simulation pass and applies it at state time + dt.
// A failing solver is logged and replaced by Simulate for this pass.
func Advance(store *circuit.Store, st circuit.State, dt float64, solver Solver, logger *log.Logger) circuit.State {
	if solver == nil {
		solver = SingleDriver{}
	}
	if logger == nil {
		logger = log.Default()
	}

	states, err := solver.Solve(st.Components, st.Wires)
	if err != nil {
		logger.Printf("%s solver failed, falling back to single driver: %v", solver.Name(), err)
		states = Simulate(st.Components, st.Wires)
	}

	return store.ApplySimulationSnapshot(st, st.Simulation.Time+dt, states)
}
