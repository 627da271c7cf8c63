package session

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
)

type manualClock struct{ c chan time.Time }

func newManualClock() *manualClock { return &manualClock{c: make(chan time.Time)} }

func (m *manualClock) C() <-chan time.Time { return m.c }
func (m *manualClock) Stop()               {}

func newTestSession(buf *bytes.Buffer) *Session {
	return New(DefaultConfig(), WithLogger(log.New(buf, "", 0)))
}

func TestTickOnlyWhileRunning(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)
	s.Dispatch(circuit.AddComponent{Type: device.DCSource})
	s.Dispatch(circuit.AddComponent{Type: device.Resistor, X: 100})

	assert.False(t, s.Tick())
	assert.Equal(t, 0.0, s.State().Simulation.Time)
	assert.Empty(t, s.State().Simulation.ComponentStates)

	s.Dispatch(circuit.ToggleSimulation{})
	assert.True(t, s.Tick())
	assert.True(t, s.Tick())

	st := s.State()
	assert.InDelta(t, 0.032, st.Simulation.Time, 1e-12)
	assert.Len(t, st.Simulation.ComponentStates, 2)
	assert.True(t, st.Simulation.IsRunning)

	s.Dispatch(circuit.ToggleSimulation{})
	assert.False(t, s.Tick())
	assert.InDelta(t, 0.032, s.State().Simulation.Time, 1e-12)
}

func TestStepIgnoresRunningFlag(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)
	s.Dispatch(circuit.AddComponent{Type: device.Battery})

	s.Step()
	s.Step()

	st := s.State()
	assert.False(t, st.Simulation.IsRunning)
	assert.InDelta(t, 0.2, st.Simulation.Time, 1e-12)
	require.Len(t, st.Simulation.ComponentStates, 1)

	s.Dispatch(circuit.ResetSimulation{})
	assert.Equal(t, circuit.SimulationState{ComponentStates: map[string]circuit.ComponentState{}}, s.State().Simulation)
}

func TestDrop(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)

	require.True(t, s.Drop([]byte(`{"componentType":"switch"}`), 105, 83))
	st := s.State()
	require.Len(t, st.Components, 1)
	assert.Equal(t, device.Switch, st.Components[0].Type)
	assert.Equal(t, 100, st.Components[0].X)
	assert.Equal(t, 80, st.Components[0].Y)
	assert.Empty(t, buf.String())
}

func TestDropMalformed(t *testing.T) {
	payloads := []string{
		"",
		"resistor",
		"{",
		`{"componentType": 5}`,
		`{"componentType": "warp_core"}`,
		`{}`,
		`[]`,
	}

	for _, p := range payloads {
		t.Run(p, func(t *testing.T) {
			var buf bytes.Buffer
			s := newTestSession(&buf)
			s.Dispatch(circuit.AddComponent{Type: device.Resistor})
			before := s.State()

			assert.False(t, s.Drop([]byte(p), 0, 0))
			assert.Equal(t, before, s.State())
			assert.Contains(t, buf.String(), "ignoring drop")
		})
	}
}

func TestDecodeDrop(t *testing.T) {
	for _, typ := range device.Types() {
		data, err := EncodeDrop(typ)
		require.NoError(t, err)
		got, err := DecodeDrop(data)
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := DecodeDrop([]byte("nope"))
	assert.True(t, errors.Is(err, ErrMalformedPayload))

	_, err = EncodeDrop(device.Type(-1))
	assert.ErrorIs(t, err, device.ErrUnknownType)
}

func TestOnChange(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)

	var seen []int
	s.OnChange = func(st circuit.State) { seen = append(seen, len(st.Components)) }

	s.Dispatch(circuit.AddComponent{Type: device.Capacitor})
	s.Dispatch(circuit.AddComponent{Type: device.Inductor})
	s.Drop([]byte("bad"), 0, 0)
	s.Step()

	assert.Equal(t, []int{1, 2, 2}, seen)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)
	clock := newManualClock()
	requests := make(chan Request)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx, clock, requests) }()

	requests <- DropRequest([]byte(`{"componentType":"dc_source"}`), 0, 0)
	requests <- DropRequest([]byte(`{"componentType":"resistor"}`), 100, 0)
	clock.c <- time.Now() // Not running yet: ignored
	requests <- OpRequest(circuit.ToggleSimulation{})
	clock.c <- time.Now()
	clock.c <- time.Now()
	clock.c <- time.Now()
	requests <- StepRequest()
	requests <- nil

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	st := s.State()
	require.Len(t, st.Components, 2)
	assert.InDelta(t, 3*0.016+0.1, st.Simulation.Time, 1e-12)
	r := st.Reading(st.Components[1].ID)
	assert.InDelta(t, 0.012, r.Current, 1e-12)
	assert.True(t, r.IsActive)
}

func TestRunStopsOnClosedRequests(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)
	requests := make(chan Request)
	close(requests)

	assert.NoError(t, s.Run(context.Background(), newManualClock(), requests))
}

func TestStateReadingsAreCopied(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(&buf)
	s.Dispatch(circuit.AddComponent{Type: device.DCSource})
	s.Step()

	st := s.State()
	require.Len(t, st.Simulation.ComponentStates, 1)
	st.Simulation.ComponentStates["intruder"] = circuit.ComponentState{Voltage: 1}

	assert.Len(t, s.State().Simulation.ComponentStates, 1)
}

func TestWithStoreAndState(t *testing.T) {
	store := &circuit.Store{NewID: func() string { return "fixed" }}
	st := store.AddComponent(circuit.NewState(), device.Resistor, 0, 0)

	s := New(DefaultConfig(), WithStore(store), WithState(st))
	assert.Same(t, store, s.Store())
	require.Len(t, s.State().Components, 1)

	s.Dispatch(circuit.DuplicateComponent{ID: "fixed"})
	assert.Equal(t, "fixed", s.State().Components[1].ID)
}
