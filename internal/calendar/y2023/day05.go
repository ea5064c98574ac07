package y2023

import (
	"errors"
	"io"

	"advent/internal/almanac"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2023, Day: 5, Name: "If You Give A Seed A Fertilizer", Run: day05})
}

func day05(r io.Reader) (solve.Answers, error) {
	a, err := almanac.Parse(r)
	if err != nil {
		return solve.Answers{}, err
	}
	chain, err := a.Chain()
	if err != nil {
		return solve.Answers{}, err
	}
	if len(a.Seeds) == 0 {
		return solve.Answers{}, errors.New("almanac lists no seeds")
	}

	// Part one treats each seed number on its own.
	lowest := chain.Lookup(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		if loc := chain.Lookup(seed); loc < lowest {
			lowest = loc
		}
	}

	// Part two treats the seed line as start/length pairs and remaps
	// whole intervals.
	intervals, err := a.SeedIntervals()
	if err != nil {
		return solve.Answers{}, err
	}
	lowestRanged, ok := almanac.Min(chain.Remap(intervals))
	if !ok {
		return solve.Answers{}, errors.New("seed intervals are all empty")
	}
	return solve.Nums(lowest, lowestRanged), nil
}
