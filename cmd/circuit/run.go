package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/session"
)

var (
	runTicks    int
	runInterval time.Duration
	runTimeout  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the periodic simulation driver and print the final readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runTicks <= 0 {
			return fmt.Errorf("--ticks must be positive, got %d", runTicks)
		}
		if runInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %v", runInterval)
		}

		solver, err := newSolver(solverName)
		if err != nil {
			return err
		}

		cfg := session.DefaultConfig()
		cfg.TickInterval = runInterval

		s, err := newSession(cfg, presetName, solver)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
		defer cancel()

		passes, last := 0, s.State().Simulation.Time
		s.OnChange = func(st circuit.State) {
			if st.Simulation.Time == last {
				return
			}
			last = st.Simulation.Time
			passes++
			log.Printf("pass %d: t=%.3fs", passes, st.Simulation.Time)
			if passes >= runTicks {
				cancel()
			}
		}

		requests := make(chan session.Request, 1)
		requests <- session.OpRequest(circuit.ToggleSimulation{})

		clock := session.NewTickerClock(cfg.TickInterval)
		defer clock.Stop()

		err = s.Run(ctx, clock, requests)
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			fmt.Fprintf(os.Stderr, "stopped after %d of %d passes: %v\n", passes, runTicks, err)
		case err != nil && !errors.Is(err, context.Canceled):
			return fmt.Errorf("simulation driver: %v", err)
		}

		printReadings(os.Stdout, s.State(), panel)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&runTicks, "ticks", "t", 10, "number of periodic passes before stopping")
	runCmd.Flags().DurationVar(&runInterval, "interval", 16*time.Millisecond, "wall time between passes")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Second, "give up after this long")
	rootCmd.AddCommand(runCmd)
}
