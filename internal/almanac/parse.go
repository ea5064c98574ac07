package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Almanac is the parsed form of the puzzle input: the seed numbers and
// the stage list, still unresolved.
type Almanac struct {
	Seeds  []uint64
	Stages []Stage
}

// Chain resolves the stage list starting from the seed category.
func (a *Almanac) Chain() (*Chain, error) {
	return NewChain(a.Stages, "seed")
}

// SeedIntervals reinterprets the seed numbers as (start, length)
// pairs. Zero-length pairs are dropped.
func (a *Almanac) SeedIntervals() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: odd seed count %d", len(a.Seeds))
	}
	intervals := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i+1 < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] == 0 {
			continue
		}
		intervals = append(intervals, Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return intervals, nil
}

// Parse reads the almanac text format: a "seeds: n n n" header
// followed by blank-line separated "<from>-to-<to> map:" blocks of
// "dest src len" rows. Malformed lines fail with their line number.
func Parse(r io.Reader) (*Almanac, error) {
	var a Almanac
	cur := -1 // index into a.Stages while inside a map block

	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			cur = -1
		case strings.HasPrefix(line, "seeds:"):
			seeds, err := parseNumbers(strings.TrimPrefix(line, "seeds:"))
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineno, err)
			}
			a.Seeds = seeds
		case strings.HasSuffix(line, "map:"):
			name, dest, err := parseMapHeader(line)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineno, err)
			}
			a.Stages = append(a.Stages, Stage{Name: name, Destination: dest})
			cur = len(a.Stages) - 1
		default:
			if cur < 0 {
				return nil, fmt.Errorf("almanac: line %d: rule outside a map block", lineno)
			}
			rule, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineno, err)
			}
			if rule.Length == 0 {
				continue // maps nothing
			}
			a.Stages[cur].Rules = append(a.Stages[cur].Rules, rule)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(a.Seeds) == 0 {
		return nil, errors.New("almanac: missing seeds header")
	}
	return &a, nil
}

func parseMapHeader(line string) (name, dest string, err error) {
	label := strings.TrimSpace(strings.TrimSuffix(line, "map:"))
	name, dest, ok := strings.Cut(label, "-to-")
	if !ok || name == "" || dest == "" {
		return "", "", fmt.Errorf("bad map header %q", line)
	}
	return name, dest, nil
}

func parseRule(line string) (Rule, error) {
	nums, err := parseNumbers(line)
	if err != nil {
		return Rule{}, err
	}
	if len(nums) != 3 {
		return Rule{}, fmt.Errorf("bad rule %q: want 3 numbers, got %d", line, len(nums))
	}
	return Rule{DestStart: nums[0], SourceStart: nums[1], Length: nums[2]}, nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	nums := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		nums[i] = n
	}
	return nums, nil
}
