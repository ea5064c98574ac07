package y2025

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/b97tsk/rangeset"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2025, Day: 2, Name: "Gift Shop", Run: day02})
}

func day02(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	if len(lines) == 0 {
		return solve.Answers{}, fmt.Errorf("empty id list")
	}

	// Ranges may overlap; the set unions them so each id is judged
	// once.
	var ids rangeset.RangeSet[uint64]
	for _, field := range strings.Split(strings.TrimSpace(lines[0]), ",") {
		beginStr, endStr, ok := strings.Cut(field, "-")
		if !ok {
			return solve.Answers{}, fmt.Errorf("bad id range %q", field)
		}
		begin, err := strconv.ParseUint(beginStr, 10, 64)
		if err != nil {
			return solve.Answers{}, fmt.Errorf("bad id range %q", field)
		}
		end, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return solve.Answers{}, fmt.Errorf("bad id range %q", field)
		}
		if end < begin {
			return solve.Answers{}, fmt.Errorf("reversed id range %q", field)
		}
		// The upper bound names the first id past the range.
		ids.AddRange(begin, end)
	}

	var halved, repeated uint64
	for _, r := range ids {
		for id := r.Low; id < r.High; id++ {
			s := strconv.FormatUint(id, 10)
			if halvesRepeat(s) {
				halved += id
			}
			if blockRepeats(s) {
				repeated += id
			}
		}
	}
	return solve.Nums(halved, repeated), nil
}

// halvesRepeat reports whether s is its own first half written twice.
func halvesRepeat(s string) bool {
	n := len(s)
	return n%2 == 0 && s[:n/2] == s[n/2:]
}

// blockRepeats reports whether s is some shorter block repeated to its
// full length.
func blockRepeats(s string) bool {
	n := len(s)
	for size := 1; size < n; size++ {
		if n%size != 0 {
			continue
		}
		block := s[:size]
		whole := true
		for i := size; i < n; i += size {
			if s[i:i+size] != block {
				whole = false
				break
			}
		}
		if whole {
			return true
		}
	}
	return false
}
