// Package y2023 holds the 2023 calendar solutions.
package y2023

import (
	"fmt"
	"io"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2023, Day: 1, Name: "Trebuchet?!", Run: day01})
}

var spelledDigits = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

func day01(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	total1, total2 := 0, 0
	for _, line := range lines {
		// A line with no bare digit contributes nothing to part one;
		// "eightwothree" in the canonical sample is such a line.
		if v, ok := calibrationValue(line, false); ok {
			total1 += v
		}
		v, ok := calibrationValue(line, true)
		if !ok {
			return solve.Answers{}, fmt.Errorf("no digit on line %q", line)
		}
		total2 += v
	}
	return solve.Nums(total1, total2), nil
}

// calibrationValue combines the first and last digit on the line. With
// spelled set, digit words count too; overlapping words like
// "eighthree" yield both digits. ok is false when the line holds no
// digit at all.
func calibrationValue(line string, spelled bool) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d := digitAt(line, i, spelled)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

func digitAt(line string, i int, spelled bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !spelled {
		return -1
	}
	for d, word := range spelledDigits {
		if strings.HasPrefix(line[i:], word) {
			return d
		}
	}
	return -1
}
