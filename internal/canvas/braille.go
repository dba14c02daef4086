// Package canvas implements a dot-addressable braille grid for text terminals.
package canvas

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
)

// Braille runes are 2 dots wide and 4 dots high.
const (
	cellWidth  = 2
	cellHeight = 4
)

// Braille is a grid of dots rendered as braille pattern runes.
//
// Columns span [0, Width] and rows span [0, Height], both inclusive, so a
// border drawn on the far edges stays inside the grid. Row 0 is the top.
type Braille struct {
	width  int
	height int
	cols   int // character cells across
	rows   int // character cells down
	grid   *graph.BrailleGrid
}

// New returns an empty grid addressing width+1 by height+1 dots.
func New(width, height int) *Braille {
	width = max(width, 0)
	height = max(height, 0)

	cols := ceilDiv(width+1, cellWidth)
	rows := ceilDiv(height+1, cellHeight)

	return &Braille{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		grid: graph.NewBrailleGrid(
			cols, rows,
			0, float64(cols*cellWidth),
			0, float64(rows*cellHeight),
		),
	}
}

// Width returns the largest addressable column.
func (b *Braille) Width() int { return b.width }

// Height returns the largest addressable row.
func (b *Braille) Height() int { return b.height }

// Clear unsets every dot.
func (b *Braille) Clear() {
	b.grid.Clear()
}

// Set marks the dot at (col, row). Coordinates outside the grid are ignored.
func (b *Braille) Set(col, row int) {
	if col < 0 || col > b.width || row < 0 || row > b.height {
		return
	}
	b.grid.Set(canvas.Point{X: col, Y: row})
}

// Line marks every dot on the straight path between two dots.
//
// See https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm.
func (b *Braille) Line(col1, row1, col2, row2 int) {
	dx := abs(col2 - col1)
	dy := abs(row2 - row1)

	sx := 1
	if col1 > col2 {
		sx = -1
	}
	sy := 1
	if row1 > row2 {
		sy = -1
	}

	err := dx - dy
	x, y := col1, row1

	for {
		b.Set(x, y)

		if x == col2 && y == row2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Frame returns the grid as text, one string per character row.
func (b *Braille) Frame() []string {
	patterns := b.grid.BraillePatterns()

	frame := make([]string, 0, len(patterns))
	for _, row := range patterns {
		frame = append(frame, string(row))
	}
	return frame
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
