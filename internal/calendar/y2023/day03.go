package y2023

import (
	"errors"
	"io"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2023, Day: 3, Name: "Gear Ratios", Run: day03})
}

type partNumber struct {
	value      int
	row, start int // start..end are the column indices covered
	end        int
}

func day03(r io.Reader) (solve.Answers, error) {
	grid, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	if len(grid) == 0 {
		return solve.Answers{}, errors.New("empty schematic")
	}

	numbers := findNumbers(grid)

	partsTotal := 0
	for _, n := range numbers {
		if adjacentToSymbol(grid, n) {
			partsTotal += n.value
		}
	}

	ratioTotal := 0
	for y, row := range grid {
		for x := 0; x < len(row); x++ {
			if row[x] != '*' {
				continue
			}
			var adjacent []int
			for _, n := range numbers {
				if n.row >= y-1 && n.row <= y+1 && n.start <= x+1 && n.end >= x-1 {
					adjacent = append(adjacent, n.value)
				}
			}
			if len(adjacent) == 2 {
				ratioTotal += adjacent[0] * adjacent[1]
			}
		}
	}
	return solve.Nums(partsTotal, ratioTotal), nil
}

func findNumbers(grid []string) []partNumber {
	var numbers []partNumber
	for y, row := range grid {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			start, value := x, 0
			for x < len(row) && isDigit(row[x]) {
				value = value*10 + int(row[x]-'0')
				x++
			}
			numbers = append(numbers, partNumber{value, y, start, x - 1})
		}
	}
	return numbers
}

func adjacentToSymbol(grid []string, n partNumber) bool {
	for y := n.row - 1; y <= n.row+1; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := n.start - 1; x <= n.end+1; x++ {
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			if c := grid[y][x]; c != '.' && !isDigit(c) {
				return true
			}
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
