package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [year [day]]",
	Short: "Prefetch puzzle inputs into the store",
	Args:  cobra.MaximumNArgs(2),
	RunE:  fetchInputs,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func fetchInputs(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	if store.Session == "" && store.Jar == nil {
		return fmt.Errorf("fetching needs a session or cookies file")
	}

	// An explicit year/day may name a puzzle with no solution yet.
	if len(args) == 2 {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad year %q", args[0])
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad day %q", args[1])
		}
		if _, err := store.Fetch(cmd.Context(), year, day); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fetched %d/%02d\n", year, day)
		return nil
	}

	selected, err := selectSolutions(args)
	if err != nil {
		return err
	}
	for _, s := range selected {
		if _, err := store.Fetch(cmd.Context(), s.Year, s.Day); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fetched %s\n", s.ID())
	}
	return nil
}
