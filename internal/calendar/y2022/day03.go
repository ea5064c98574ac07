package y2022

import (
	"fmt"
	"io"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 3, Name: "Rucksack Reorganization", Run: day03})
}

func day03(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	if len(lines)%3 != 0 {
		return solve.Answers{}, fmt.Errorf("rucksack count %d is not a multiple of three", len(lines))
	}

	duplicates := 0
	for _, line := range lines {
		if len(line)%2 != 0 {
			return solve.Answers{}, fmt.Errorf("unbalanced rucksack %q", line)
		}
		left, err := itemSet(line[:len(line)/2])
		if err != nil {
			return solve.Answers{}, err
		}
		right, err := itemSet(line[len(line)/2:])
		if err != nil {
			return solve.Answers{}, err
		}
		for p := 1; p <= 52; p++ {
			if left[p] && right[p] {
				duplicates += p
			}
		}
	}

	badges := 0
	for i := 0; i+2 < len(lines); i += 3 {
		common, err := itemSet(lines[i])
		if err != nil {
			return solve.Answers{}, err
		}
		for _, line := range lines[i+1 : i+3] {
			set, err := itemSet(line)
			if err != nil {
				return solve.Answers{}, err
			}
			for p := range common {
				common[p] = common[p] && set[p]
			}
		}
		badge := 0
		for p := 1; p <= 52; p++ {
			if common[p] {
				badge = p
				break
			}
		}
		if badge == 0 {
			return solve.Answers{}, fmt.Errorf("no common badge in group starting at line %d", i+1)
		}
		badges += badge
	}

	return solve.Nums(duplicates, badges), nil
}

// itemSet returns which priorities 1..52 occur in items: a-z map to
// 1..26 and A-Z to 27..52.
func itemSet(items string) ([53]bool, error) {
	var set [53]bool
	for _, c := range items {
		p, err := priority(c)
		if err != nil {
			return set, err
		}
		set[p] = true
	}
	return set, nil
}

func priority(c rune) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid item %q", c)
}
