package y2022

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 9, Name: "Rope Bridge", Run: day09})
}

type point struct {
	x, y int
}

func day09(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	steps, err := parseMotions(lines)
	if err != nil {
		return solve.Answers{}, err
	}
	return solve.Nums(dragRope(steps, 2), dragRope(steps, 10)), nil
}

// parseMotions expands "R 4"-style motions into unit steps.
func parseMotions(lines []string) ([]point, error) {
	var steps []point
	for _, line := range lines {
		dir, countStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("bad motion %q", line)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("bad motion %q", line)
		}
		var d point
		switch dir {
		case "U":
			d = point{0, 1}
		case "D":
			d = point{0, -1}
		case "L":
			d = point{-1, 0}
		case "R":
			d = point{1, 0}
		default:
			return nil, fmt.Errorf("bad motion %q", line)
		}
		for i := 0; i < count; i++ {
			steps = append(steps, d)
		}
	}
	return steps, nil
}

// dragRope moves the head knot through steps, lets each following knot
// catch up, and counts the positions the tail visits.
func dragRope(steps []point, knots int) int {
	rope := make([]point, knots)
	visited := map[point]bool{rope[knots-1]: true}
	for _, d := range steps {
		rope[0].x += d.x
		rope[0].y += d.y
		for i := 1; i < knots; i++ {
			rope[i] = follow(rope[i], rope[i-1])
		}
		visited[rope[knots-1]] = true
	}
	return len(visited)
}

// follow moves tail one step toward head when they are no longer
// touching (diagonally adjacent counts as touching).
func follow(tail, head point) point {
	dx, dy := head.x-tail.x, head.y-tail.y
	if abs(dx) <= 1 && abs(dy) <= 1 {
		return tail
	}
	tail.x += clamp(dx)
	tail.y += clamp(dy)
	return tail
}

func clamp(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
