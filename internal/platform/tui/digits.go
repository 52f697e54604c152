package tui

import (
	"strconv"
	"strings"
)

// Block digit geometry. Each font pixel is drawn two cells wide so digits
// look square in a terminal.
const (
	fontW     = 3
	fontH     = 5
	pixelW    = 2
	digitW    = fontW * pixelW
	digitGap  = 2
	digitRows = fontH
)

// digitFont is a 3x5 pixel font for 0-9.
var digitFont = [10][fontH]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", "..#", "..#", "..#"},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// canvas is a 2D character buffer the block digits are drawn into.
type canvas struct {
	width  int
	height int
	cells  [][]rune
}

// newCanvas creates a canvas filled with spaces.
func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", width))
	}
	return c
}

// set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *canvas) set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// drawDigit draws digit d with its top-left corner at x.
func (c *canvas) drawDigit(x, d int, glyph rune) {
	for row, line := range digitFont[d] {
		for col, px := range line {
			if px != '#' {
				continue
			}
			for i := range pixelW {
				c.set(x+col*pixelW+i, row, glyph)
			}
		}
	}
}

// String joins the rows with newlines.
func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*3 + c.height) // Glyphs may be multi-byte

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(c.cells[y]))
	}
	return sb.String()
}

// BigNumber renders a non-negative integer in block digits.
func BigNumber(n int, glyph rune) string {
	if n < 0 {
		n = 0
	}
	text := strconv.Itoa(n)

	width := len(text)*digitW + (len(text)-1)*digitGap
	c := newCanvas(width, digitRows)
	for i, ch := range text {
		c.drawDigit(i*(digitW+digitGap), int(ch-'0'), glyph)
	}
	return c.String()
}
