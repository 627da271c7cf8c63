package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
	"github.com/edp1096/toy-circuit/pkg/session"
	"github.com/edp1096/toy-circuit/pkg/simulation"
)

type part struct {
	typ   device.Type
	x, y  float64
	patch device.Patch
}

type preset struct {
	parts []part
	wires [][2]int // Indexes into parts, start -> end
}

var presets = map[string]preset{
	// V1 -> R1 -> R2 -> V1
	"divider": {
		parts: []part{
			{typ: device.DCSource, x: 0, y: 0, patch: device.Patch{"value": 10.0}},
			{typ: device.Resistor, x: 120, y: 0},
			{typ: device.Resistor, x: 240, y: 0, patch: device.Patch{"name": "R2"}},
		},
		wires: [][2]int{{0, 1}, {1, 2}, {2, 0}},
	},
	// V1 -> S1 (closed) -> R1 -> V1
	"switch": {
		parts: []part{
			{typ: device.DCSource, x: 0, y: 0},
			{typ: device.Switch, x: 120, y: 0, patch: device.Patch{"isClosed": true}},
			{typ: device.Resistor, x: 240, y: 0},
		},
		wires: [][2]int{{0, 1}, {1, 2}, {2, 0}},
	},
	// B1 -> A1 -> R1 -> B1, with V1 across R1
	"meters": {
		parts: []part{
			{typ: device.Battery, x: 0, y: 0, patch: device.Patch{"name": "B1", "value": "9"}},
			{typ: device.Ammeter, x: 120, y: 0, patch: device.Patch{"name": "A1"}},
			{typ: device.Resistor, x: 240, y: 0, patch: device.Patch{"value": "470"}},
			{typ: device.Voltmeter, x: 240, y: 120, patch: device.Patch{"name": "VM1"}},
		},
		wires: [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 0}},
	},
	// Everything on the palette, unwired
	"palette": func() preset {
		var p preset
		for i, t := range device.Types() {
			p.parts = append(p.parts, part{typ: t, x: float64(i%4) * 120, y: float64(i/4) * 100})
		}
		return p
	}(),
}

func presetNames() string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// build lays out preset name through the store operations.
func build(store *circuit.Store, name string) (circuit.State, error) {
	p, ok := presets[name]
	if !ok {
		return circuit.State{}, fmt.Errorf("unknown preset %q (want one of %s)", name, presetNames())
	}

	st := circuit.NewState()
	ids := make([]string, len(p.parts))
	for i, pt := range p.parts {
		st = store.AddComponent(st, pt.typ, pt.x, pt.y)
		ids[i] = st.Selected.ID
		if pt.patch != nil {
			st = store.UpdateComponent(st, ids[i], pt.patch)
		}
	}
	for _, w := range p.wires {
		st = store.ConnectWire(st, ids[w[0]], ids[w[1]])
	}
	return store.SelectComponent(st, nil), nil
}

// newSession opens a session on preset name with the selected solver.
func newSession(cfg session.Config, name string, solver simulation.Solver) (*session.Session, error) {
	store := circuit.NewStore()
	st, err := build(store, name)
	if err != nil {
		return nil, err
	}

	return session.New(cfg,
		session.WithStore(store),
		session.WithState(st),
		session.WithSolver(solver),
		session.WithLogger(log.Default()),
	), nil
}
