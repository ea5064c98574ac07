// Package scan has small helpers for line-oriented puzzle inputs.
package scan

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Lines reads r to its end and returns the lines without terminators.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// Groups splits lines into runs separated by blank lines. Leading,
// trailing and repeated blanks produce no empty groups.
func Groups(lines []string) [][]string {
	var groups [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Ints parses every whitespace-separated field of s as an int.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
