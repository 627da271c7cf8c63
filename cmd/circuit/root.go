package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-circuit/pkg/analysis"
	"github.com/edp1096/toy-circuit/pkg/simulation"
)

var (
	// Global flags
	verbose    bool
	solverName string
	presetName string
	panel      bool
)

var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Circuit editor core driver",
	Long: `Build a circuit from a preset, run the simulation driver against it
and print per-component voltage, current, power and activity.

Examples:
  circuit types                                   # List component types and defaults
  circuit run --preset divider --ticks 30         # Periodic driver, 30 passes
  circuit step --preset switch --solver network   # One manual step, wired analysis`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			log.SetOutput(io.Discard)
		}
		_, err := newSolver(solverName)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&solverName, "solver", "single", "simulation solver: single or network")
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", "divider", "preset circuit: "+presetNames())
	rootCmd.PersistentFlags().BoolVar(&panel, "panel", false, "print readings as the properties panel shows them")
}

func newSolver(name string) (simulation.Solver, error) {
	switch name {
	case "single":
		return simulation.SingleDriver{}, nil
	case "network":
		return analysis.NewNetwork(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want single or network)", name)
	}
}

func main() {
	Execute()
}
