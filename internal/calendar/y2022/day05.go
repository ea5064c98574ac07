package y2022

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 5, Name: "Supply Stacks", Run: day05})
}

var movePattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type move struct {
	count, from, to int
}

func day05(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	split := -1
	for i, line := range lines {
		if line == "" {
			split = i
			break
		}
	}
	if split <= 0 {
		return solve.Answers{}, errors.New("missing blank line between drawing and moves")
	}

	stacks, err := parseStacks(lines[:split])
	if err != nil {
		return solve.Answers{}, err
	}
	moves := make([]move, 0, len(lines)-split-1)
	for _, line := range lines[split+1:] {
		m := movePattern.FindStringSubmatch(line)
		if m == nil {
			return solve.Answers{}, fmt.Errorf("bad move %q", line)
		}
		count, _ := strconv.Atoi(m[1])
		from, _ := strconv.Atoi(m[2])
		to, _ := strconv.Atoi(m[3])
		if from < 1 || from > len(stacks) || to < 1 || to > len(stacks) {
			return solve.Answers{}, fmt.Errorf("move %q references a missing stack", line)
		}
		moves = append(moves, move{count, from - 1, to - 1})
	}

	one, err := rearrange(stacks, moves, false)
	if err != nil {
		return solve.Answers{}, err
	}
	many, err := rearrange(stacks, moves, true)
	if err != nil {
		return solve.Answers{}, err
	}
	return solve.Answers{Part1: one, Part2: many}, nil
}

// parseStacks reads the crate drawing. Stack i's crates sit in column
// 1+4*i; the last drawing line carries the stack numbers.
func parseStacks(drawing []string) ([][]byte, error) {
	if len(drawing) < 2 {
		return nil, errors.New("crate drawing too short")
	}
	labels := drawing[len(drawing)-1]
	n := len(strings.Fields(labels))
	if n == 0 {
		return nil, errors.New("no stack labels in drawing")
	}
	stacks := make([][]byte, n)
	for i := len(drawing) - 2; i >= 0; i-- {
		line := drawing[i]
		for s := 0; s < n; s++ {
			col := 1 + 4*s
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			c := line[col]
			if c < 'A' || c > 'Z' {
				return nil, fmt.Errorf("bad crate %q on line %q", c, line)
			}
			stacks[s] = append(stacks[s], c)
		}
	}
	return stacks, nil
}

// rearrange plays the moves on a copy of stacks and returns the top
// crates. With keepOrder crates move as one slab instead of one at a
// time.
func rearrange(stacks [][]byte, moves []move, keepOrder bool) (string, error) {
	work := make([][]byte, len(stacks))
	for i, s := range stacks {
		work[i] = append([]byte(nil), s...)
	}
	for _, m := range moves {
		src := work[m.from]
		if m.count > len(src) {
			return "", fmt.Errorf("move of %d crates from stack %d of %d", m.count, m.from+1, len(src))
		}
		// Copy the lifted crates: appending to the destination may
		// write over their source region when from and to coincide.
		lifted := append([]byte(nil), src[len(src)-m.count:]...)
		work[m.from] = src[:len(src)-m.count]
		if keepOrder {
			work[m.to] = append(work[m.to], lifted...)
		} else {
			for i := len(lifted) - 1; i >= 0; i-- {
				work[m.to] = append(work[m.to], lifted[i])
			}
		}
	}
	tops := make([]byte, 0, len(work))
	for i, s := range work {
		if len(s) == 0 {
			return "", fmt.Errorf("stack %d ends up empty", i+1)
		}
		tops = append(tops, s[len(s)-1])
	}
	return string(tops), nil
}
