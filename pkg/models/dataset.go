package models

import (
	"github.com/danielgtaylor/huma/v2"
)

// Point represents a single (x, y) sample of a dataset
type Point struct {
	X float64 `json:"x" doc:"X value"`
	Y float64 `json:"y" doc:"Y value"`
}

// RGB is an 8-bit per channel colour
type RGB [3]uint8

// Schema describes RGB as a three-element integer array rather than the
// base64 string huma would infer for a byte array.
func (RGB) Schema(r huma.Registry) *huma.Schema {
	three := 3
	lo, hi := 0.0, 255.0
	return &huma.Schema{
		Type:     huma.TypeArray,
		MinItems: &three,
		MaxItems: &three,
		Items: &huma.Schema{
			Type:    huma.TypeInteger,
			Minimum: &lo,
			Maximum: &hi,
		},
	}
}

// Dataset is a named, coloured, ordered sequence of points.
// Consecutive points form the line segments of the rendered polyline.
type Dataset struct {
	Name   string  `json:"name" maxLength:"200" doc:"Dataset name shown in legends"`
	Points []Point `json:"points" doc:"Ordered data points"`
	Color  RGB     `json:"color,omitempty" doc:"Line colour as [r, g, b]"`
}

// XRange returns the min and max X over all points.
// ok is false for an empty dataset.
func (d Dataset) XRange() (min, max float64, ok bool) {
	if len(d.Points) == 0 {
		return 0, 0, false
	}
	min, max = d.Points[0].X, d.Points[0].X
	for _, p := range d.Points[1:] {
		if p.X < min {
			min = p.X
		}
		if p.X > max {
			max = p.X
		}
	}
	return min, max, true
}

// YRange returns the min and max Y over all points.
// ok is false for an empty dataset.
func (d Dataset) YRange() (min, max float64, ok bool) {
	if len(d.Points) == 0 {
		return 0, 0, false
	}
	min, max = d.Points[0].Y, d.Points[0].Y
	for _, p := range d.Points[1:] {
		if p.Y < min {
			min = p.Y
		}
		if p.Y > max {
			max = p.Y
		}
	}
	return min, max, true
}

// AxisConfig overrides the automatic axis bounds and ticks for one export.
// Nil bounds fall back to the data bounds; padding values are fractions (0.05 = 5%).
type AxisConfig struct {
	XMin     *float64  `json:"x_min,omitempty" doc:"Fixed X minimum"`
	XMax     *float64  `json:"x_max,omitempty" doc:"Fixed X maximum"`
	YMin     *float64  `json:"y_min,omitempty" doc:"Fixed Y minimum"`
	YMax     *float64  `json:"y_max,omitempty" doc:"Fixed Y maximum"`
	XPadding float64   `json:"x_padding,omitempty" minimum:"0" doc:"X padding as a fraction of the range"`
	YPadding float64   `json:"y_padding,omitempty" minimum:"0" doc:"Y padding as a fraction of the range"`
	XTicks   []float64 `json:"x_ticks,omitempty" doc:"Explicit X tick values"`
	YTicks   []float64 `json:"y_ticks,omitempty" doc:"Explicit Y tick values"`
}

// Float returns a pointer to v, for populating optional bounds
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v, for populating optional toggles
func Bool(v bool) *bool {
	return &v
}
