package y2022

import (
	"fmt"
	"io"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 2, Name: "Rock Paper Scissors", Run: day02})
}

// Shapes and outcomes are numbered 0..2: rock/paper/scissors and
// loss/draw/win. Shape n+1 beats shape n modulo 3.

func day02(r io.Reader) (solve.Answers, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}

	total1, total2 := 0, 0
	for _, line := range lines {
		opp, own, err := parseRound(line)
		if err != nil {
			return solve.Answers{}, err
		}
		total1 += roundScore(own, opp)
		// Second interpretation: the right-hand column is the desired
		// outcome, so deduce the shape to play.
		total2 += roundScore(shapeForOutcome(opp, own), opp)
	}
	return solve.Nums(total1, total2), nil
}

func parseRound(line string) (opp, own int, err error) {
	if len(line) != 3 || line[1] != ' ' ||
		line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
		return 0, 0, fmt.Errorf("bad round %q", line)
	}
	return int(line[0] - 'A'), int(line[2] - 'X'), nil
}

func roundScore(own, opp int) int {
	outcome := (own - opp + 4) % 3 // 0 loss, 1 draw, 2 win
	return own + 1 + outcome*3
}

func shapeForOutcome(opp, outcome int) int {
	return (opp + outcome + 2) % 3
}
