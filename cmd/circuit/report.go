package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/util"
)

// printReadings writes one row per component. With panel set, readings use
// the properties panel's fixed-point format instead of engineering units.
func printReadings(w io.Writer, st circuit.State, panel bool) {
	voltage := func(v float64) string { return util.FormatValueFactor(v, "V") }
	current := func(i float64) string { return util.FormatValueFactor(i, "A") }
	power := func(p float64) string { return util.FormatValueFactor(p, "W") }
	if panel {
		voltage, current, power = util.FormatVoltage, util.FormatCurrent, util.FormatPower
	}

	fmt.Fprintf(w, "t = %.3fs (running: %v)\n\n", st.Simulation.Time, st.Simulation.IsRunning)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tVOLTAGE\tCURRENT\tPOWER\tACTIVE")
	for _, c := range st.Components {
		r, ok := st.Simulation.ComponentStates[c.ID]
		if !ok {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\n", c.Properties.DisplayName(), c.Type)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%v\n",
			c.Properties.DisplayName(), c.Type,
			voltage(r.Voltage),
			current(r.Current),
			power(r.Power),
			r.IsActive)
	}
	tw.Flush()
}
