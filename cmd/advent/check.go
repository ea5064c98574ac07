package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"advent/internal/solve"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run solutions and compare against the answers manifest",
	Args:  cobra.NoArgs,
	RunE:  checkAnswers,
}

var answersFile string

func init() {
	checkCmd.Flags().StringVar(&answersFile, "answers", "testdata/answers.yaml",
		"manifest of expected answers, keyed by year/day")
	rootCmd.AddCommand(checkCmd)
}

func loadManifest(name string) (map[string]solve.Answers, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	manifest := make(map[string]solve.Answers)
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return manifest, nil
}

func checkAnswers(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(answersFile)
	if err != nil {
		return err
	}
	store, err := newStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	checked, failures := 0, 0
	for _, s := range solve.All() {
		want, ok := manifest[s.ID()]
		if !ok {
			continue
		}
		delete(manifest, s.ID())
		checked++

		f, err := store.Open(cmd.Context(), s.Year, s.Day)
		if err != nil {
			return err
		}
		got, err := s.Run(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", s.ID(), err)
		}
		if got == want {
			fmt.Fprintf(out, "ok   %s\n", s.ID())
			continue
		}
		failures++
		fmt.Fprintf(out, "FAIL %s: got %s/%s, want %s/%s\n",
			s.ID(), got.Part1, got.Part2, want.Part1, want.Part2)
	}

	for id := range manifest {
		failures++
		fmt.Fprintf(out, "FAIL %s: no solution registered\n", id)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d checks failed", failures, checked+len(manifest))
	}
	if checked == 0 {
		return fmt.Errorf("no manifest entries matched a registered solution")
	}
	return nil
}
