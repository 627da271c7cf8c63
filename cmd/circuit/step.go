package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-circuit/pkg/session"
)

var stepCount int

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance the simulation by manual steps and print readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		solver, err := newSolver(solverName)
		if err != nil {
			return err
		}

		s, err := newSession(session.DefaultConfig(), presetName, solver)
		if err != nil {
			return err
		}

		for i := 0; i < stepCount; i++ {
			s.Step()
		}
		printReadings(os.Stdout, s.State(), panel)
		return nil
	},
}

func init() {
	stepCmd.Flags().IntVarP(&stepCount, "count", "n", 1, "number of manual steps")
	rootCmd.AddCommand(stepCmd)
}
