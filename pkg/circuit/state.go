package circuit

import (
	"math"

	"github.com/edp1096/toy-circuit/internal/consts"
	"github.com/edp1096/toy-circuit/pkg/device"
)

type Component struct {
	ID         string
	Type       device.Type
	X          int
	Y          int
	Rotation   int // Degrees, multiple of 90
	Properties device.Properties
}

// AnchorX, AnchorY - Wire attachment point of the component
func (c Component) AnchorX() int { return c.X + consts.AnchorX }
func (c Component) AnchorY() int { return c.Y + consts.AnchorY }

type Wire struct {
	ID               string
	StartX           int
	StartY           int
	EndX             int
	EndY             int
	StartComponentID string // Empty if not attached
	EndComponentID   string
	Current          *float64 // Written by the simulation only
	Voltage          *float64
}

// References reports whether either end of w is attached to component id.
func (w Wire) References(id string) bool {
	return w.StartComponentID == id || w.EndComponentID == id
}

type ComponentState struct {
	Voltage  float64
	Current  float64
	Power    float64
	IsActive bool
}

type SimulationState struct {
	IsRunning       bool
	Time            float64
	ComponentStates map[string]ComponentState
}

type State struct {
	Components []Component
	Wires      []Wire
	Selected   *Component
	Simulation SimulationState
}

func NewState() State {
	return State{
		Components: []Component{},
		Wires:      []Wire{},
		Simulation: SimulationState{ComponentStates: map[string]ComponentState{}},
	}
}

func (s State) index(id string) int {
	for i, c := range s.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s State) Component(id string) (Component, bool) {
	i := s.index(id)
	if i < 0 {
		return Component{}, false
	}
	return s.Components[i], true
}

// Reading returns the last simulated state of a component, zero if none.
func (s State) Reading(id string) ComponentState {
	return s.Simulation.ComponentStates[id]
}

func (s State) IsSelected(id string) bool {
	return s.Selected != nil && s.Selected.ID == id
}

// Snap rounds v to the nearest grid line, halves rounding up.
func Snap(v float64) int {
	return int(math.Floor(v/consts.GridSize+0.5)) * consts.GridSize
}
