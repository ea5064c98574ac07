// Package almanac maps intervals of values through a chain of named
// remapping stages. Each stage holds disjoint rules translating a
// contiguous source span to a destination span; an interval pushed
// through a stage is split so that rule-covered parts are translated
// and the rest passes through unchanged into the next stage.
package almanac

import "fmt"

// Rule translates one contiguous source span to a destination span of
// the same length: a value v in [SourceStart, SourceStart+Length) maps
// to v - SourceStart + DestStart.
type Rule struct {
	DestStart   uint64
	SourceStart uint64
	Length      uint64
}

func (r Rule) sourceEnd() uint64 { return r.SourceStart + r.Length }

// Stage is one named block of rules plus the name of the stage its
// output feeds. Rules are kept in input order; they are disjoint in
// valid input, and should an input ever carry overlapping rules the
// first matching rule wins.
type Stage struct {
	Name        string
	Destination string
	Rules       []Rule
}

// applyRule maps the part of iv covered by the rule's source span into
// its destination span. ok is false when they are disjoint.
func applyRule(iv Interval, r Rule) (mapped Interval, ok bool) {
	lo := max(iv.Start, r.SourceStart)
	hi := min(iv.End(), r.sourceEnd())
	if lo >= hi {
		return Interval{}, false
	}
	return Interval{Start: lo - r.SourceStart + r.DestStart, Length: hi - lo}, true
}

// subtract splits src around covered, returning the part of src
// strictly before covered and the part strictly after it. A side that
// covered reaches the edge of is returned empty. covered must lie
// within src's span.
func subtract(src, covered Interval) (left, right Interval) {
	if covered.Start > src.Start {
		left = Interval{Start: src.Start, Length: covered.Start - src.Start}
	}
	if covered.End() < src.End() {
		right = Interval{Start: covered.End(), Length: src.End() - covered.End()}
	}
	return left, right
}

// Apply pushes intervals through the stage and returns the resulting
// collection. Rules are applied in order over a working set of
// still-unmapped intervals: each covered part is translated and
// emitted, the remainders stay in the working set for the following
// rules, and whatever no rule covers passes through unchanged.
// Output order is not significant.
func (s Stage) Apply(intervals []Interval) []Interval {
	out := make([]Interval, 0, len(intervals))
	unmapped := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Empty() {
			unmapped = append(unmapped, iv)
		}
	}
	next := make([]Interval, 0, len(unmapped))
	for _, r := range s.Rules {
		for _, iv := range unmapped {
			mapped, ok := applyRule(iv, r)
			if !ok {
				next = append(next, iv)
				continue
			}
			out = append(out, mapped)
			covered := Interval{
				Start:  mapped.Start - r.DestStart + r.SourceStart,
				Length: mapped.Length,
			}
			left, right := subtract(iv, covered)
			if !left.Empty() {
				next = append(next, left)
			}
			if !right.Empty() {
				next = append(next, right)
			}
		}
		unmapped, next = next, unmapped[:0]
	}
	return append(out, unmapped...)
}

// Lookup translates a single value through the stage. The first rule
// whose source span contains the value wins; a value outside every
// rule passes through unchanged.
func (s Stage) Lookup(v uint64) uint64 {
	for _, r := range s.Rules {
		if v >= r.SourceStart && v < r.sourceEnd() {
			return v - r.SourceStart + r.DestStart
		}
	}
	return v
}

// LookupAll translates each value independently through the stage.
func (s Stage) LookupAll(values []uint64) []uint64 {
	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = s.Lookup(v)
	}
	return out
}

// Chain is the resolved stage sequence from a root category down to
// the terminal category no stage maps any further. Stage links are
// resolved by name once, at construction; traversal is a slice walk.
type Chain struct {
	stages []Stage
}

// NewChain resolves the destination links of stages starting at root.
// Stage names must be unique and the walk from root must be acyclic;
// the chain ends at the first name no stage is registered under.
func NewChain(stages []Stage, root string) (*Chain, error) {
	byName := make(map[string]int, len(stages))
	for i, s := range stages {
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("almanac: duplicate stage %q", s.Name)
		}
		byName[s.Name] = i
	}
	var ordered []Stage
	seen := make(map[string]bool, len(stages))
	for name := root; ; {
		i, ok := byName[name]
		if !ok {
			break
		}
		if seen[name] {
			return nil, fmt.Errorf("almanac: stage cycle through %q", name)
		}
		seen[name] = true
		ordered = append(ordered, stages[i])
		name = stages[i].Destination
	}
	return &Chain{stages: ordered}, nil
}

// Len returns the number of stages the chain traverses.
func (c *Chain) Len() int { return len(c.stages) }

// Remap pushes intervals through every stage in chain order and
// returns the final collection.
func (c *Chain) Remap(intervals []Interval) []Interval {
	for _, s := range c.stages {
		intervals = s.Apply(intervals)
	}
	return intervals
}

// Lookup translates a single value through every stage in chain order.
func (c *Chain) Lookup(v uint64) uint64 {
	for _, s := range c.stages {
		v = s.Lookup(v)
	}
	return v
}
