// Package termview renders geometry previews into a terminal using
// braille characters, two by four dots per cell. It is the display sink
// for the live TUI and needs no graphics backend: pure rune math.
package termview

import (
	"strings"
)

// brailleDots maps an (x, y) dot inside one cell to its bit in the
// braille pattern block. Unicode braille orders dots column-first with
// the bottom row appended last.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a monochrome dot grid that renders to braille text.
// Coordinates are in dots: a canvas of c x r cells spans 2c x 4r dots,
// origin top-left, y down.
type Canvas struct {
	cols, rows int
	cells      []rune
}

// NewCanvas creates a canvas of cols x rows character cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]rune, cols*rows),
	}
}

// Size returns the canvas extent in dots.
func (c *Canvas) Size() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Clear erases every dot.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0
	}
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.cells[cell] |= brailleDots[y%4][x%2]
}

// Line draws a segment between two dots with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// CircleOutline draws a circle with the midpoint algorithm.
func (c *Canvas) CircleOutline(cx, cy, r int) {
	if r < 0 {
		return
	}
	if r == 0 {
		c.Set(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y)
		c.Set(cx+y, cy+x)
		c.Set(cx-y, cy+x)
		c.Set(cx-x, cy+y)
		c.Set(cx-x, cy-y)
		c.Set(cx-y, cy-x)
		c.Set(cx+y, cy-x)
		c.Set(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// String renders the grid, one line per cell row. Empty cells become the
// blank braille pattern so columns stay aligned.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for row := range c.rows {
		for col := range c.cols {
			b.WriteRune(0x2800 + c.cells[row*c.cols+col])
		}
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
