package viz

import (
	"math"
	"strings"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
const brailleBlank = 0x2800

var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid of Width x Height terminal cells that maps a
// world rectangle onto its (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	world         orbit.Bounds
}

func NewCanvas(w, h int, world orbit.Bounds) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		world:  world,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// ToDot maps a world point to dot coordinates.
func (c *Canvas) ToDot(p orbit.Point) (int, int) {
	dw, dh := c.Dots()
	x := int(math.Floor(p.X / c.world.Width * float64(dw)))
	y := int(math.Floor(p.Y / c.world.Height * float64(dh)))
	return x, y
}

// CellToWorld maps a terminal cell to the world point at its centre.
func (c *Canvas) CellToWorld(col, row int) orbit.Point {
	return orbit.Point{
		X: (float64(col) + 0.5) / float64(c.Width) * c.world.Width,
		Y: (float64(row) + 0.5) / float64(c.Height) * c.world.Height,
	}
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dotMask[y%4][x%2]
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&dotMask[y%4][x%2] != 0
}

// DrawLine draws a dot line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Line(a, b orbit.Point) {
	x0, y0 := c.ToDot(a)
	x1, y1 := c.ToDot(b)
	c.DrawLine(x0, y0, x1, y1)
}

// Polyline joins consecutive points.
func (c *Canvas) Polyline(pts []orbit.Point) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i])
	}
}

// Circle outlines a circle of world radius r around centre.
func (c *Canvas) Circle(centre orbit.Point, r float64) {
	const segments = 48
	prev := orbit.Point{X: centre.X + r, Y: centre.Y}
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		next := orbit.Point{X: centre.X + r*math.Cos(a), Y: centre.Y + r*math.Sin(a)}
		c.Line(prev, next)
		prev = next
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
