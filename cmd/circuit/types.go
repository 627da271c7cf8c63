package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-circuit/pkg/device"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List component types with their default properties",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tLABEL\tCATEGORY\tDEFAULTS")
		for _, t := range device.Types() {
			var fields []string
			for _, f := range t.Defaults().Fields() {
				fields = append(fields, fmt.Sprintf("%s=%v", f.Key, f.Value))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t, t.Label(), t.Category(), strings.Join(fields, " "))
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
