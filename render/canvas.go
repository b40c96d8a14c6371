package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Half-cell occupancy bits
const (
	halfTop    uint8 = 1
	halfBottom uint8 = 2
)

// canvas rasterizes world shapes onto half-height terminal cells
// Each cell holds two vertically stacked pixels drawn with block glyphs
type canvas struct {
	cols, rows int
	// scaleX in columns per world px, scaleY in half-rows per world px
	scaleX, scaleY float64
	bits           []uint8
	colors         []tcell.Color
}

func newCanvas(cols, rows int, worldW, worldH float64) *canvas {
	c := &canvas{}
	c.reset(cols, rows, worldW, worldH)
	return c
}

func (c *canvas) reset(cols, rows int, worldW, worldH float64) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.scaleX, c.scaleY = 0, 0
	if worldW > 0 && worldH > 0 {
		c.scaleX = float64(c.cols) / worldW
		c.scaleY = float64(2*c.rows) / worldH
	}
	n := c.cols * c.rows
	if cap(c.bits) < n {
		c.bits = make([]uint8, n)
		c.colors = make([]tcell.Color, n)
	}
	c.bits = c.bits[:n]
	c.colors = c.colors[:n]
	clear(c.bits)
}

// plot marks the half-cell at column x, half-row hy
func (c *canvas) plot(x, hy int, color tcell.Color) {
	if x < 0 || x >= c.cols || hy < 0 || hy >= 2*c.rows {
		return
	}
	i := (hy/2)*c.cols + x
	if hy%2 == 0 {
		c.bits[i] |= halfTop
	} else {
		c.bits[i] |= halfBottom
	}
	c.colors[i] = color
}

// fillCircle marks half-cells whose centres fall inside the scaled ellipse; a ball always marks at least its centre
func (c *canvas) fillCircle(x, y, radius float64, color tcell.Color) {
	cx, cy := x*c.scaleX, y*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY
	c.plot(int(math.Floor(cx)), int(math.Floor(cy)), color)
	if rx <= 0 || ry <= 0 {
		return
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for hy := y0; hy <= y1; hy++ {
		dy := (float64(hy) + 0.5 - cy) / ry
		for col := x0; col <= x1; col++ {
			dx := (float64(col) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.plot(col, hy, color)
			}
		}
	}
}

// fillRect marks half-cells covered by the rectangle, at least one column wide
func (c *canvas) fillRect(x, y, w, h float64, color tcell.Color) {
	x0 := int(math.Floor(x * c.scaleX))
	x1 := max(x0, int(math.Ceil((x+w)*c.scaleX))-1)
	y0 := int(math.Floor(y * c.scaleY))
	y1 := max(y0, int(math.Ceil((y+h)*c.scaleY))-1)
	for hy := y0; hy <= y1; hy++ {
		for col := x0; col <= x1; col++ {
			c.plot(col, hy, color)
		}
	}
}

// flush writes occupied cells to the screen at row offset top
func (c *canvas) flush(screen tcell.Screen, top int, bg tcell.Color) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			var glyph rune
			switch c.bits[i] {
			case halfTop:
				glyph = '▀'
			case halfBottom:
				glyph = '▄'
			case halfTop | halfBottom:
				glyph = '█'
			default:
				continue
			}
			style := tcell.StyleDefault.Foreground(c.colors[i]).Background(bg)
			screen.SetContent(col, top+row, glyph, nil, style)
		}
	}
}
