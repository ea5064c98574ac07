// Package solve keeps the registry the calendar packages install their
// puzzle solutions into, and the answer pair every solution produces.
package solve

import (
	"fmt"
	"io"
	"sort"
)

// Answers holds the two results a puzzle computes. Answers are strings
// because not every puzzle is numeric (2022 day 5 spells out crate
// labels).
type Answers struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Nums builds Answers from two values via their default formatting.
func Nums(part1, part2 any) Answers {
	return Answers{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Func computes both answers of one puzzle from its input text.
type Func func(r io.Reader) (Answers, error)

// Solution is one registered calendar entry.
type Solution struct {
	Year int
	Day  int
	Name string
	Run  Func
}

// ID returns the year/day key the solution is filed under.
func (s Solution) ID() string { return fmt.Sprintf("%d/%02d", s.Year, s.Day) }

var registry = map[[2]int]Solution{}

// Register installs a solution; the calendar packages call it from
// init. Registering the same day twice, or a solution without a Run
// func, panics.
func Register(s Solution) {
	if s.Run == nil {
		panic(fmt.Sprintf("solve: %s has no Run func", s.ID()))
	}
	key := [2]int{s.Year, s.Day}
	if _, dup := registry[key]; dup {
		panic(fmt.Sprintf("solve: duplicate registration for %s", s.ID()))
	}
	registry[key] = s
}

// Lookup returns the solution registered for year and day.
func Lookup(year, day int) (Solution, bool) {
	s, ok := registry[[2]int{year, day}]
	return s, ok
}

// All returns every registered solution ordered by year, then day.
func All() []Solution {
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Year returns the solutions of one year ordered by day.
func Year(year int) []Solution {
	var out []Solution
	for _, s := range All() {
		if s.Year == year {
			out = append(out, s)
		}
	}
	return out
}
