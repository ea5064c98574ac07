// Package y2025 holds the 2025 calendar solutions.
package y2025

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2025, Day: 1, Name: "Secret Entrance", Run: day01})
}

func day01(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	rotations := make([]int, 0, len(lines))
	for _, line := range lines {
		v, err := parseRotation(line)
		if err != nil {
			return solve.Answers{}, err
		}
		rotations = append(rotations, v)
	}
	return solve.Nums(zeroStops(rotations), zeroPasses(rotations)), nil
}

// parseRotation turns "R48" or "L5" into a signed rotation, left being
// negative.
func parseRotation(line string) (int, error) {
	if len(line) < 2 || (line[0] != 'L' && line[0] != 'R') {
		return 0, fmt.Errorf("bad rotation %q", line)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("bad rotation %q", line)
	}
	if line[0] == 'L' {
		v = -v
	}
	return v, nil
}

// zeroStops counts how often the dial rests on zero after a rotation.
func zeroStops(rotations []int) int {
	count, dial := 0, 50
	for _, v := range rotations {
		dial = modulus(dial+v, 100)
		if dial == 0 {
			count++
		}
	}
	return count
}

// zeroPasses counts every time the dial crosses or rests on zero,
// including full loops within a single rotation.
func zeroPasses(rotations []int) int {
	count, dial := 0, 50
	for _, v := range rotations {
		loops := v / 100
		if loops < 0 {
			loops = -loops
		}
		unclamped := dial + v%100
		if dial != 0 && (unclamped <= 0 || unclamped >= 100) {
			count++
		}
		dial = modulus(unclamped, 100)
		count += loops
	}
	return count
}

func modulus(a, b int) int {
	return (a%b + b) % b
}
