package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// pixelLimit bounds projected coordinates so huge values cannot overflow int
// conversion or make Bresenham walk for ever.
const pixelLimit = 32768

// Canvas is an opaque RGB drawing surface. Every drawing operation clips to
// the image bounds; nothing outside is written and nothing panics.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width x height canvas filled with bg
func NewCanvas(width, height int, bg color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the underlying image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Set writes one pixel, skipping coordinates outside the canvas
func (c *Canvas) Set(x, y int, col color.RGBA) {
	r := c.img.Rect
	if x < r.Min.X || y < r.Min.Y || x >= r.Max.X || y >= r.Max.Y {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// DrawLine draws a 1-px line with integer Bresenham
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	c.drawLineOffset(x0, y0, x1, y1, col, 0, 0)
}

// DrawThickLine approximates a stroke of the given thickness by drawing
// shifted copies of the line along X and along Y.
func (c *Canvas) DrawThickLine(x0, y0, x1, y1 int, col color.RGBA, thickness int) {
	for i := 0; i < thickness; i++ {
		offset := i - thickness/2
		c.drawLineOffset(x0, y0, x1, y1, col, offset, 0)
		if offset != 0 {
			c.drawLineOffset(x0, y0, x1, y1, col, 0, offset)
		}
	}
}

func (c *Canvas) drawLineOffset(x0, y0, x1, y1 int, col color.RGBA, offsetX, offsetY int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0

	for {
		c.Set(x+offsetX, y+offsetY, col)
		if x == x1 && y == y1 {
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

// FillRect fills a w x h rectangle whose top-left corner is (x, y)
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// DrawRectOutline draws the 1-px border of a w x h rectangle
func (c *Canvas) DrawRectOutline(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		c.Set(px, y, col)
		c.Set(px, y+h-1, col)
	}
	for py := y; py < y+h; py++ {
		c.Set(x, py, col)
		c.Set(x+w-1, py, col)
	}
}

// rgba converts a dataset colour to an opaque color.RGBA
func rgba(c models.RGB) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// toPixel truncates toward zero after clamping to ±pixelLimit.
// ok is false for NaN.
func toPixel(v float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	if v > pixelLimit {
		v = pixelLimit
	} else if v < -pixelLimit {
		v = -pixelLimit
	}
	return int(v), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
