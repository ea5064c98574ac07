package y2022

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 7, Name: "No Space Left On Device", Run: day07})
}

const (
	diskSize     = 70000000
	updateNeeds  = 30000000
	smallDirSize = 100000
)

func day07(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	sizes, err := dirSizes(lines)
	if err != nil {
		return solve.Answers{}, err
	}

	used, ok := sizes["/"]
	if !ok {
		return solve.Answers{}, errors.New("terminal session never visits /")
	}
	free := diskSize - used
	if free < 0 {
		return solve.Answers{}, fmt.Errorf("filesystem overflows the disk: %d used", used)
	}

	smallTotal := 0
	toDelete := used
	for _, size := range sizes {
		if size <= smallDirSize {
			smallTotal += size
		}
		if free+size >= updateNeeds && size < toDelete {
			toDelete = size
		}
	}
	if free+toDelete < updateNeeds {
		return solve.Answers{}, errors.New("no single directory frees enough space")
	}
	return solve.Nums(smallTotal, toDelete), nil
}

// dirSizes replays the terminal session and returns the total size of
// every directory, keyed by absolute path. File sizes count toward the
// directory and all of its ancestors.
func dirSizes(lines []string) (map[string]int, error) {
	sizes := make(map[string]int)
	var stack []string
	for _, line := range lines {
		switch {
		case line == "$ cd /":
			stack = stack[:0]
			sizes["/"] += 0
		case line == "$ cd ..":
			if len(stack) == 0 {
				return nil, errors.New("cd .. above the root")
			}
			stack = stack[:len(stack)-1]
		case strings.HasPrefix(line, "$ cd "):
			stack = append(stack, line[len("$ cd "):])
		case line == "$ ls", strings.HasPrefix(line, "dir "):
			// Listings contribute nothing by themselves.
		default:
			fields := strings.SplitN(line, " ", 2)
			if len(fields) != 2 {
				return nil, fmt.Errorf("bad terminal line %q", line)
			}
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("bad terminal line %q", line)
			}
			sizes["/"] += size
			for i := range stack {
				sizes["/"+strings.Join(stack[:i+1], "/")] += size
			}
		}
	}
	return sizes, nil
}
