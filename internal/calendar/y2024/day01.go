// Package y2024 holds the 2024 calendar solutions.
package y2024

import (
	"fmt"
	"io"
	"sort"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2024, Day: 1, Name: "Historian Hysteria", Run: day01})
}

func day01(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	left := make([]int, 0, len(lines))
	right := make([]int, 0, len(lines))
	for _, line := range lines {
		nums, err := scan.Ints(line)
		if err != nil {
			return solve.Answers{}, fmt.Errorf("bad location pair %q: %w", line, err)
		}
		if len(nums) != 2 {
			return solve.Answers{}, fmt.Errorf("bad location pair %q", line)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}

	sort.Ints(left)
	sort.Ints(right)
	distance := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		distance += d
	}

	occurrences := make(map[int]int, len(right))
	for _, n := range right {
		occurrences[n]++
	}
	similarity := 0
	for _, n := range left {
		similarity += n * occurrences[n]
	}
	return solve.Nums(distance, similarity), nil
}
