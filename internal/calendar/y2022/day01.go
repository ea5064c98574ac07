// Package y2022 holds the 2022 calendar solutions.
package y2022

import (
	"errors"
	"io"
	"sort"
	"strconv"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 1, Name: "Calorie Counting", Run: day01})
}

func day01(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	var loads []int
	for _, group := range scan.Groups(lines) {
		load := 0
		for _, line := range group {
			n, err := strconv.Atoi(line)
			if err != nil {
				return solve.Answers{}, err
			}
			load += n
		}
		loads = append(loads, load)
	}
	if len(loads) < 3 {
		return solve.Answers{}, errors.New("fewer than three carriers in input")
	}

	sort.Sort(sort.Reverse(sort.IntSlice(loads)))
	return solve.Nums(loads[0], loads[0]+loads[1]+loads[2]), nil
}
