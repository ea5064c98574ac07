package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, s := range solve.All() {
			fmt.Fprintf(w, "%s\t%s\n", s.ID(), s.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
