package circuit

import (
	"github.com/google/uuid"

	"github.com/edp1096/toy-circuit/pkg/device"
)

// Store applies operations to circuit states. It never mutates a State it is given.
type Store struct {
	NewID func() string // Component and wire id source
}

func NewStore() *Store {
	return &Store{NewID: uuid.NewString}
}

func (s *Store) Reduce(st State, op Op) State {
	if op == nil {
		return st
	}
	return op.apply(s, st)
}

func (s *Store) AddComponent(st State, t device.Type, x, y float64) State {
	return s.Reduce(st, AddComponent{Type: t, X: x, Y: y})
}

func (s *Store) DeleteComponent(st State, id string) State {
	return s.Reduce(st, DeleteComponent{ID: id})
}

func (s *Store) UpdateComponent(st State, id string, patch device.Patch) State {
	return s.Reduce(st, UpdateComponent{ID: id, Patch: patch})
}

func (s *Store) DuplicateComponent(st State, id string) State {
	return s.Reduce(st, DuplicateComponent{ID: id})
}

func (s *Store) MoveComponent(st State, id string, x, y int) State {
	return s.Reduce(st, MoveComponent{ID: id, X: x, Y: y})
}

func (s *Store) RotateComponent(st State, id string) State {
	return s.Reduce(st, RotateComponent{ID: id})
}

func (s *Store) SelectComponent(st State, c *Component) State {
	return s.Reduce(st, SelectComponent{Component: c})
}

func (s *Store) ConnectWire(st State, startID, endID string) State {
	return s.Reduce(st, ConnectWire{StartID: startID, EndID: endID})
}

func (s *Store) ToggleSimulation(st State) State {
	return s.Reduce(st, ToggleSimulation{})
}

func (s *Store) ResetSimulation(st State) State {
	return s.Reduce(st, ResetSimulation{})
}

func (s *Store) ApplySimulationSnapshot(st State, time float64, states map[string]ComponentState) State {
	return s.Reduce(st, ApplySimulationSnapshot{Time: time, ComponentStates: states})
}
