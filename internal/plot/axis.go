package plot

import (
	"image/color"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// Default tick divisions per axis; N divisions give N+1 ticks
const (
	PlotTickDivisions = 6
	TileTickDivisions = 3
)

// PlotArea is the pixel rectangle the data is mapped onto
type PlotArea struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right is the first column past the plot area
func (a PlotArea) Right() int {
	return a.Left + a.Width
}

// Bottom is the row of the X axis line
func (a PlotArea) Bottom() int {
	return a.Top + a.Height
}

// project maps a data point to pixels. ok is false for non-finite points
// or bounds that cannot be mapped.
func (a PlotArea) project(p models.Point, b Bounds) (x, y int, ok bool) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return 0, 0, false
	}
	dx, okX := toPixel((p.X - b.MinX) / (b.MaxX - b.MinX) * float64(a.Width))
	dy, okY := toPixel((p.Y - b.MinY) / (b.MaxY - b.MinY) * float64(a.Height))
	if !okX || !okY {
		return 0, 0, false
	}
	return a.Left + dx, a.Bottom() - dy, true
}

// Axis selects the horizontal or vertical axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Tick is one positioned axis tick
type Tick struct {
	Value float64
	Pixel int
	Label string
}

// TickValues returns the explicit values that fall inside [min, max], in the
// given order, or divisions+1 evenly spaced values from min to max when
// explicit is nil.
func TickValues(min, max float64, explicit []float64, divisions int) []float64 {
	if explicit != nil {
		values := make([]float64, 0, len(explicit))
		for _, v := range explicit {
			if v >= min && v <= max {
				values = append(values, v)
			}
		}
		return values
	}
	if divisions < 1 {
		divisions = 1
	}
	values := make([]float64, divisions+1)
	for i := range values {
		values[i] = min + (max-min)*(float64(i)/float64(divisions))
	}
	return values
}

// LayoutTicks positions tick values along one axis of area.
// X ticks grow rightwards from Left, Y ticks upwards from Bottom.
func LayoutTicks(axis Axis, values []float64, min, max float64, area PlotArea) []Tick {
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		var pixel int
		if axis == AxisX {
			d, ok := toPixel((v - min) / (max - min) * float64(area.Width))
			if !ok {
				continue
			}
			pixel = area.Left + d
		} else {
			d, ok := toPixel((v - min) / (max - min) * float64(area.Height))
			if !ok {
				continue
			}
			pixel = area.Bottom() - d
		}
		ticks = append(ticks, Tick{Value: v, Pixel: pixel, Label: FormatNumber(v)})
	}
	return ticks
}

// axisStyle holds the tick geometry of one export kind
type axisStyle struct {
	tickLength   int
	xLabelOffset int
	yLabelGap    int
	divisions    int
	gridCols     int
	gridRows     int
}

var (
	plotAxisStyle = axisStyle{tickLength: 8, xLabelOffset: 20, yLabelGap: 15, divisions: PlotTickDivisions, gridCols: 8, gridRows: 6}
	tileAxisStyle = axisStyle{tickLength: 5, xLabelOffset: 8, yLabelGap: 10, divisions: TileTickDivisions, gridCols: 6, gridRows: 4}
)

// drawGrid draws the dotted interior grid lines, lighting every pixel whose
// running coordinate is a multiple of 3.
func drawGrid(c *Canvas, area PlotArea, style axisStyle, col color.RGBA) {
	for i := 1; i < style.gridCols; i++ {
		x := area.Left + i*area.Width/style.gridCols
		for y := area.Top; y < area.Bottom(); y++ {
			if y%3 == 0 {
				c.Set(x, y, col)
			}
		}
	}
	for i := 1; i < style.gridRows; i++ {
		y := area.Top + i*area.Height/style.gridRows
		for x := area.Left; x < area.Right(); x++ {
			if x%3 == 0 {
				c.Set(x, y, col)
			}
		}
	}
}

// drawAxisLines draws the X axis along the bottom edge and the Y axis along the left edge
func drawAxisLines(c *Canvas, area PlotArea, col color.RGBA) {
	for x := area.Left; x < area.Right(); x++ {
		c.Set(x, area.Bottom(), col)
	}
	for y := area.Top; y < area.Bottom(); y++ {
		c.Set(area.Left, y, col)
	}
}

// drawTicks draws tick marks and their labels for both axes
func drawTicks(c *Canvas, area PlotArea, b Bounds, axis *models.AxisConfig, style axisStyle, col color.RGBA, scale float64) {
	var xExplicit, yExplicit []float64
	if axis != nil {
		xExplicit, yExplicit = axis.XTicks, axis.YTicks
	}

	xTicks := LayoutTicks(AxisX, TickValues(b.MinX, b.MaxX, xExplicit, style.divisions), b.MinX, b.MaxX, area)
	tickY := area.Bottom()
	for _, t := range xTicks {
		for dy := 0; dy < style.tickLength; dy++ {
			c.Set(t.Pixel, tickY+dy, col)
		}
		labelX := t.Pixel - TextWidth(t.Label, scale)/2
		if labelX < 0 {
			labelX = 0
		}
		c.DrawText(labelX, tickY+style.xLabelOffset, t.Label, col, scale)
	}

	yTicks := LayoutTicks(AxisY, TickValues(b.MinY, b.MaxY, yExplicit, style.divisions), b.MinY, b.MaxY, area)
	tickX := area.Left
	for _, t := range yTicks {
		for dx := 0; dx < style.tickLength; dx++ {
			c.Set(tickX-dx, t.Pixel, col)
		}
		labelX := tickX - TextWidth(t.Label, scale) - style.yLabelGap
		if labelX < 0 {
			labelX = 0
		}
		labelY := t.Pixel - charHeight(scale)/2
		if labelY < 0 {
			labelY = 0
		}
		c.DrawText(labelX, labelY, t.Label, col, scale)
	}
}
