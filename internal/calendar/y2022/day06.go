package y2022

import (
	"fmt"
	"io"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 6, Name: "Tuning Trouble", Run: day06})
}

func day06(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	if len(lines) == 0 {
		return solve.Answers{}, fmt.Errorf("empty datastream")
	}
	signal := strings.TrimSpace(lines[0])

	packet, err := markerEnd(signal, 4)
	if err != nil {
		return solve.Answers{}, err
	}
	message, err := markerEnd(signal, 14)
	if err != nil {
		return solve.Answers{}, err
	}
	return solve.Nums(packet, message), nil
}

// markerEnd returns the 1-based position just past the first window of
// n distinct characters in signal.
func markerEnd(signal string, n int) (int, error) {
	var counts [26]int
	distinct := 0
	for i := 0; i < len(signal); i++ {
		c := signal[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("bad character %q in datastream", c)
		}
		if counts[c-'a'] == 0 {
			distinct++
		}
		counts[c-'a']++
		if i >= n {
			d := signal[i-n]
			counts[d-'a']--
			if counts[d-'a'] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no marker of %d distinct characters", n)
}
