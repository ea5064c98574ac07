package y2025

import (
	"fmt"
	"io"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2025, Day: 3, Name: "Lobby", Run: day03})
}

func day03(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	var short, long uint64
	for _, line := range lines {
		bank, err := parseBank(line)
		if err != nil {
			return solve.Answers{}, err
		}
		j2, err := largestJoltage(bank, 2)
		if err != nil {
			return solve.Answers{}, err
		}
		j12, err := largestJoltage(bank, 12)
		if err != nil {
			return solve.Answers{}, err
		}
		short += j2
		long += j12
	}
	return solve.Nums(short, long), nil
}

func parseBank(line string) ([]byte, error) {
	bank := make([]byte, len(line))
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return nil, fmt.Errorf("bad battery %q in bank %q", line[i], line)
		}
		bank[i] = line[i] - '0'
	}
	return bank, nil
}

// largestJoltage picks the greatest subsequence of the given number of
// digits: greedily take the earliest occurrence of the largest digit
// that still leaves enough batteries for the rest.
func largestJoltage(bank []byte, digits int) (uint64, error) {
	if len(bank) < digits {
		return 0, fmt.Errorf("bank of %d batteries cannot produce %d digits", len(bank), digits)
	}
	var result uint64
	lo := 0
	for left := digits; left > 0; left-- {
		hi := len(bank) - (left - 1)
		best := lo
		for i := lo + 1; i < hi; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		result = result*10 + uint64(bank[best])
		lo = best + 1
	}
	return result, nil
}
