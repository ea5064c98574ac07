package y2023

import (
	"fmt"
	"io"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2023, Day: 4, Name: "Scratchcards", Run: day04})
}

func day04(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	points := 0
	copies := make([]int, len(lines))
	for i, line := range lines {
		matches, err := cardMatches(line)
		if err != nil {
			return solve.Answers{}, err
		}
		if matches > 0 {
			points += 1 << (matches - 1)
		}
		copies[i]++
		for j := i + 1; j <= i+matches && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}

	total := 0
	for _, c := range copies {
		total += c
	}
	return solve.Nums(points, total), nil
}

func cardMatches(line string) (int, error) {
	_, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return 0, fmt.Errorf("bad card %q", line)
	}
	winStr, haveStr, ok := strings.Cut(rest, " | ")
	if !ok {
		return 0, fmt.Errorf("bad card %q", line)
	}
	winning, err := scan.Ints(winStr)
	if err != nil {
		return 0, fmt.Errorf("bad card %q: %w", line, err)
	}
	have, err := scan.Ints(haveStr)
	if err != nil {
		return 0, fmt.Errorf("bad card %q: %w", line, err)
	}

	isWinning := make(map[int]bool, len(winning))
	for _, n := range winning {
		isWinning[n] = true
	}
	matches := 0
	for _, n := range have {
		if isWinning[n] {
			matches++
		}
	}
	return matches, nil
}
