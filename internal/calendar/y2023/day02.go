package y2023

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2023, Day: 2, Name: "Cube Conundrum", Run: day02})
}

// The bag holds at most this many cubes of each color.
var bagLimit = map[string]int{"red": 12, "green": 13, "blue": 14}

func day02(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	possible, power := 0, 0
	for _, line := range lines {
		id, maxSeen, err := parseGame(line)
		if err != nil {
			return solve.Answers{}, err
		}
		ok := true
		for color, limit := range bagLimit {
			if maxSeen[color] > limit {
				ok = false
			}
		}
		if ok {
			possible += id
		}
		power += maxSeen["red"] * maxSeen["green"] * maxSeen["blue"]
	}
	return solve.Nums(possible, power), nil
}

// parseGame returns the game id and the largest count shown per color
// across all reveals.
func parseGame(line string) (int, map[string]int, error) {
	header, rest, ok := strings.Cut(line, ": ")
	if !ok || !strings.HasPrefix(header, "Game ") {
		return 0, nil, fmt.Errorf("bad game %q", line)
	}
	id, err := strconv.Atoi(header[len("Game "):])
	if err != nil {
		return 0, nil, fmt.Errorf("bad game id in %q", line)
	}

	maxSeen := make(map[string]int, len(bagLimit))
	for _, reveal := range strings.Split(rest, "; ") {
		for _, draw := range strings.Split(reveal, ", ") {
			countStr, color, ok := strings.Cut(draw, " ")
			if !ok {
				return 0, nil, fmt.Errorf("bad draw %q in game %d", draw, id)
			}
			count, err := strconv.Atoi(countStr)
			if err != nil || count < 0 {
				return 0, nil, fmt.Errorf("bad draw %q in game %d", draw, id)
			}
			if _, known := bagLimit[color]; !known {
				return 0, nil, fmt.Errorf("unknown color %q in game %d", color, id)
			}
			if count > maxSeen[color] {
				maxSeen[color] = count
			}
		}
	}
	return id, maxSeen, nil
}
