package y2022

import (
	"errors"
	"fmt"
	"io"

	"advent/internal/scan"
	"advent/internal/solve"
)

func init() {
	solve.Register(solve.Solution{Year: 2022, Day: 8, Name: "Treetop Tree House", Run: day08})
}

func day08(r io.Reader) (solve.Answers, error) {
	grid, err := scan.Lines(r)
	if err != nil {
		return solve.Answers{}, err
	}
	if len(grid) == 0 {
		return solve.Answers{}, errors.New("empty tree grid")
	}
	width := len(grid[0])
	for y, row := range grid {
		if len(row) != width {
			return solve.Answers{}, fmt.Errorf("ragged grid at row %d", y)
		}
		for x := 0; x < width; x++ {
			if row[x] < '0' || row[x] > '9' {
				return solve.Answers{}, fmt.Errorf("bad tree height %q at %d,%d", row[x], x, y)
			}
		}
	}

	visible, best := 0, 0
	for y := range grid {
		for x := 0; x < width; x++ {
			v, score := survey(grid, x, y)
			if v {
				visible++
			}
			if score > best {
				best = score
			}
		}
	}
	return solve.Nums(visible, best), nil
}

// survey walks the four directions from x,y and reports whether the
// tree is visible from any edge, plus its scenic score.
func survey(grid []string, x, y int) (visible bool, score int) {
	h := grid[y][x]
	score = 1
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		dist := 0
		blocked := false
		for cx, cy := x+d[0], y+d[1]; cy >= 0 && cy < len(grid) && cx >= 0 && cx < len(grid[cy]); cx, cy = cx+d[0], cy+d[1] {
			dist++
			if grid[cy][cx] >= h {
				blocked = true
				break
			}
		}
		if !blocked {
			visible = true
		}
		score *= dist
	}
	return visible, score
}
