package y2022

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 4, Name: "Camp Cleanup", Run: day04})
}

var assignmentPattern = regexp.MustCompile(`^(\d+)-(\d+),(\d+)-(\d+)$`)

type section struct {
	lo, hi int
}

func (s section) contains(t section) bool {
	return s.lo <= t.lo && t.hi <= s.hi
}

func (s section) overlaps(t section) bool {
	return s.lo <= t.hi && t.lo <= s.hi
}

func day04(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	contained, overlapping := 0, 0
	for _, line := range lines {
		m := assignmentPattern.FindStringSubmatch(line)
		if m == nil {
			return solve.Answers{}, fmt.Errorf("bad assignment pair %q", line)
		}
		var n [4]int
		for i := range n {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return solve.Answers{}, fmt.Errorf("bad assignment pair %q: %w", line, err)
			}
			n[i] = v
		}
		a, b := section{n[0], n[1]}, section{n[2], n[3]}
		if a.hi < a.lo || b.hi < b.lo {
			return solve.Answers{}, fmt.Errorf("reversed section in %q", line)
		}
		if a.contains(b) || b.contains(a) {
			contained++
		}
		if a.overlaps(b) {
			overlapping++
		}
	}
	return solve.Nums(contained, overlapping), nil
}
