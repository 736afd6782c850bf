package plot

import (
	"errors"
	"math"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// ErrNoData is returned by CustomBounds when no dataset holds a finite point
var ErrNoData = errors.New("no data available")

// autoPadding is the fraction added on each side by AutoBounds
const autoPadding = 0.05

// Bounds is the data-space rectangle mapped onto the plot area
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// DataBounds folds min and max X and Y over every finite point.
// ok is false when there is no finite point.
func DataBounds(datasets []models.Dataset) (b Bounds, ok bool) {
	for _, ds := range datasets {
		for _, p := range ds.Points {
			if !isFinite(p.X) || !isFinite(p.Y) {
				continue
			}
			if !ok {
				b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				ok = true
				continue
			}
			b.MinX = math.Min(b.MinX, p.X)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	return b, ok
}

// AutoBounds returns the padded data bounds, falling back to the unit square
// when there is no data. A zero-width axis is widened to center±1 before 5%
// padding; a strictly positive Y minimum is never padded below zero.
func AutoBounds(datasets []models.Dataset) Bounds {
	b, ok := DataBounds(datasets)
	if !ok {
		b = Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}
	b.MinX, b.MaxX = recenter(b.MinX, b.MaxX)
	b.MinY, b.MaxY = recenter(b.MinY, b.MaxY)

	xPad := (b.MaxX - b.MinX) * autoPadding
	yPad := (b.MaxY - b.MinY) * autoPadding

	minY := b.MinY - yPad
	if b.MinY > 0 {
		minY = math.Max(b.MinY-yPad, 0)
	}

	return Bounds{
		MinX: b.MinX - xPad,
		MaxX: b.MaxX + xPad,
		MinY: minY,
		MaxY: b.MaxY + yPad,
	}
}

// CustomBounds replaces data bounds with the configured overrides and pads
// the result symmetrically by the configured fractions.
func CustomBounds(datasets []models.Dataset, cfg models.AxisConfig) (Bounds, error) {
	data, ok := DataBounds(datasets)
	if !ok {
		return Bounds{}, ErrNoData
	}

	minX := override(cfg.XMin, data.MinX)
	maxX := override(cfg.XMax, data.MaxX)
	minY := override(cfg.YMin, data.MinY)
	maxY := override(cfg.YMax, data.MaxY)

	minX, maxX = recenter(minX, maxX)
	minY, maxY = recenter(minY, maxY)

	xPad := (maxX - minX) * cfg.XPadding
	yPad := (maxY - minY) * cfg.YPadding

	return Bounds{
		MinX: minX - xPad,
		MaxX: maxX + xPad,
		MinY: minY - yPad,
		MaxY: maxY + yPad,
	}, nil
}

// resolveBounds picks custom bounds when a config is given, auto bounds otherwise
func resolveBounds(datasets []models.Dataset, cfg *models.AxisConfig) (Bounds, error) {
	if cfg == nil {
		return AutoBounds(datasets), nil
	}
	return CustomBounds(datasets, *cfg)
}

func recenter(min, max float64) (float64, float64) {
	if math.Abs(max-min) < machineEpsilon {
		return min - 1, min + 1
	}
	return min, max
}

func override(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
