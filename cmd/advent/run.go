package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"advent/internal/solve"
)

var runCmd = &cobra.Command{
	Use:   "run [year [day]]",
	Short: "Run solutions and print their answers",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runSolutions,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSolutions(cmd *cobra.Command, args []string) error {
	selected, err := selectSolutions(args)
	if err != nil {
		return err
	}
	store, err := newStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range selected {
		f, err := store.Open(cmd.Context(), s.Year, s.Day)
		if err != nil {
			return err
		}
		start := time.Now()
		answers, err := s.Run(f)
		elapsed := time.Since(start).Round(time.Microsecond)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", s.ID(), err)
		}
		fmt.Fprintf(out, "%s %s (%v)\n", s.ID(), s.Name, elapsed)
		fmt.Fprintf(out, "  part 1: %s\n", answers.Part1)
		fmt.Fprintf(out, "  part 2: %s\n", answers.Part2)
	}
	return nil
}

// selectSolutions resolves [year [day]] arguments to registered
// solutions: no arguments selects everything.
func selectSolutions(args []string) ([]solve.Solution, error) {
	if len(args) == 0 {
		all := solve.All()
		if len(all) == 0 {
			return nil, errors.New("no solutions registered")
		}
		return all, nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad year %q", args[0])
	}
	if len(args) == 1 {
		selected := solve.Year(year)
		if len(selected) == 0 {
			return nil, fmt.Errorf("no solutions registered for %d", year)
		}
		return selected, nil
	}

	day, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("bad day %q", args[1])
	}
	s, ok := solve.Lookup(year, day)
	if !ok {
		return nil, fmt.Errorf("no solution registered for %d/%02d", year, day)
	}
	return []solve.Solution{s}, nil
}
