package circuit

import (
	"maps"
	"slices"

	"github.com/edp1096/toy-circuit/internal/consts"
	"github.com/edp1096/toy-circuit/pkg/device"
)

// Op is a state transition. The set is closed: only this package implements it.
type Op interface {
	apply(s *Store, st State) State
}

type AddComponent struct {
	Type device.Type
	X, Y float64 // Snapped to the grid
}

type DeleteComponent struct{ ID string }

type UpdateComponent struct {
	ID    string
	Patch device.Patch
}

type DuplicateComponent struct{ ID string }

type MoveComponent struct {
	ID   string
	X, Y int // Caller snaps
}

type RotateComponent struct{ ID string }

// SelectComponent sets the selection verbatim; nil clears it.
type SelectComponent struct{ Component *Component }

type ConnectWire struct{ StartID, EndID string }

type ToggleSimulation struct{}

type ResetSimulation struct{}

type ApplySimulationSnapshot struct {
	Time            float64
	ComponentStates map[string]ComponentState
}

func (op AddComponent) apply(s *Store, st State) State {
	c := Component{
		ID:         s.NewID(),
		Type:       op.Type,
		X:          Snap(op.X),
		Y:          Snap(op.Y),
		Properties: op.Type.Defaults(),
	}
	st.Components = append(slices.Clone(st.Components), c)
	st.Selected = &c
	return st
}

func (op DeleteComponent) apply(s *Store, st State) State {
	if st.index(op.ID) < 0 {
		return st
	}

	st.Components = slices.DeleteFunc(slices.Clone(st.Components), func(c Component) bool {
		return c.ID == op.ID
	})
	st.Wires = slices.DeleteFunc(slices.Clone(st.Wires), func(w Wire) bool {
		return w.References(op.ID)
	})
	if st.IsSelected(op.ID) {
		st.Selected = nil
	}
	return st
}

func (op UpdateComponent) apply(s *Store, st State) State {
	return st.modify(op.ID, func(c *Component) {
		c.Properties = c.Properties.Apply(op.Patch)
	})
}

func (op DuplicateComponent) apply(s *Store, st State) State {
	src, ok := st.Component(op.ID)
	if !ok {
		return st
	}

	dup := src
	dup.ID = s.NewID()
	dup.X += consts.DuplicateX
	dup.Y += consts.DuplicateY
	st.Components = append(slices.Clone(st.Components), dup)
	st.Selected = &dup
	return st
}

func (op MoveComponent) apply(s *Store, st State) State {
	return st.modify(op.ID, func(c *Component) {
		c.X, c.Y = op.X, op.Y
	})
}

func (op RotateComponent) apply(s *Store, st State) State {
	return st.modify(op.ID, func(c *Component) {
		c.Rotation = (c.Rotation + 90) % 360
	})
}

func (op SelectComponent) apply(s *Store, st State) State {
	if op.Component == nil {
		st.Selected = nil
		return st
	}
	sel := *op.Component
	st.Selected = &sel
	return st
}

func (op ConnectWire) apply(s *Store, st State) State {
	start, ok := st.Component(op.StartID)
	if !ok {
		return st
	}
	end, ok := st.Component(op.EndID)
	if !ok {
		return st
	}

	w := Wire{
		ID:               s.NewID(),
		StartX:           start.AnchorX(),
		StartY:           start.AnchorY(),
		EndX:             end.AnchorX(),
		EndY:             end.AnchorY(),
		StartComponentID: op.StartID,
		EndComponentID:   op.EndID,
	}
	st.Wires = append(slices.Clone(st.Wires), w)
	return st
}

func (op ToggleSimulation) apply(s *Store, st State) State {
	st.Simulation.IsRunning = !st.Simulation.IsRunning
	return st
}

func (op ResetSimulation) apply(s *Store, st State) State {
	st.Simulation = SimulationState{
		IsRunning:       false,
		Time:            0,
		ComponentStates: map[string]ComponentState{},
	}
	return st
}

func (op ApplySimulationSnapshot) apply(s *Store, st State) State {
	st.Simulation.Time = op.Time
	st.Simulation.ComponentStates = maps.Clone(op.ComponentStates)
	if st.Simulation.ComponentStates == nil {
		st.Simulation.ComponentStates = map[string]ComponentState{}
	}
	return st
}

// modify applies fn to a copy of component id and mirrors it into the selection.
func (st State) modify(id string, fn func(c *Component)) State {
	i := st.index(id)
	if i < 0 {
		return st
	}

	st.Components = slices.Clone(st.Components)
	fn(&st.Components[i])

	if st.IsSelected(id) {
		sel := *st.Selected
		fn(&sel)
		st.Selected = &sel
	}
	return st
}
