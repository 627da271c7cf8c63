package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-circuit/pkg/analysis"
	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/device"
	"github.com/edp1096/toy-circuit/pkg/session"
	"github.com/edp1096/toy-circuit/pkg/simulation"
)

func loaded(t *testing.T, name string, solver simulation.Solver) *session.Session {
	t.Helper()
	log.SetOutput(io.Discard)
	s, err := newSession(session.DefaultConfig(), name, solver)
	require.NoError(t, err)
	return s
}

func TestPresetsLoad(t *testing.T) {
	for name, p := range presets {
		t.Run(name, func(t *testing.T) {
			st := loaded(t, name, simulation.SingleDriver{}).State()
			assert.Len(t, st.Components, len(p.parts))
			assert.Len(t, st.Wires, len(p.wires))
			assert.Nil(t, st.Selected)
			for _, w := range st.Wires {
				assert.NotEmpty(t, w.StartComponentID)
				assert.NotEmpty(t, w.EndComponentID)
			}
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := build(circuit.NewStore(), "flux_capacitor")
	assert.Error(t, err)

	_, err = newSession(session.DefaultConfig(), "flux_capacitor", simulation.SingleDriver{})
	assert.Error(t, err)
}

func TestDividerSolvers(t *testing.T) {
	single := loaded(t, "divider", simulation.SingleDriver{})
	single.Step()
	st := single.State()
	for _, c := range st.Components[1:] {
		r := st.Reading(c.ID)
		assert.InDelta(t, 10.0, r.Voltage, 1e-9)
		assert.InDelta(t, 0.01, r.Current, 1e-9)
	}

	network := loaded(t, "divider", analysis.NewNetwork())
	network.Step()
	st = network.State()
	for _, c := range st.Components[1:] {
		require.Equal(t, device.Resistor, c.Type)
		r := st.Reading(c.ID)
		assert.InDelta(t, 5.0, r.Voltage, 1e-6)
		assert.InDelta(t, 0.005, r.Current, 1e-9)
		assert.True(t, r.IsActive)
	}
}

func TestPrintReadings(t *testing.T) {
	s := loaded(t, "switch", simulation.SingleDriver{})

	var buf bytes.Buffer
	printReadings(&buf, s.State(), false)
	assert.Contains(t, buf.String(), "S1")
	assert.Contains(t, buf.String(), "-")

	s.Step()
	buf.Reset()
	printReadings(&buf, s.State(), false)
	assert.Contains(t, buf.String(), "12.000 V")
	assert.Contains(t, buf.String(), "1.000 A")

	buf.Reset()
	printReadings(&buf, s.State(), true)
	assert.Contains(t, buf.String(), "12.00V")
	assert.Contains(t, buf.String(), "1.000A")
	assert.Contains(t, buf.String(), "12.000W")
}

func TestRunRejectsBadFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"run", "--interval", "0", "--ticks", "1"}, "--interval"},
		{[]string{"run", "--interval=-5ms", "--ticks", "1"}, "--interval"},
		{[]string{"run", "--ticks", "0"}, "--ticks"},
		{[]string{"run", "--solver", "spice"}, "unknown solver"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				runInterval, runTicks, solverName = 16*time.Millisecond, 10, "single"
			})

			var err error
			require.NotPanics(t, func() { err = rootCmd.Execute() })
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewSolver(t *testing.T) {
	for _, name := range []string{"single", "network"} {
		s, err := newSolver(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	_, err := newSolver("spice")
	assert.Error(t, err)
}
