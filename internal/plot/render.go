package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// ErrEmptyInput is returned when there is nothing to export
var ErrEmptyInput = errors.New("nothing to export: no datasets or subplots")

// Single plot geometry
const (
	PlotWidth        = 1200
	PlotHeight       = 800
	plotMarginLeft   = 80
	plotMarginRight  = 40
	plotMarginTop    = 40
	plotMarginBottom = 60
)

// Subplot tile geometry
const (
	TileWidth        = 600
	TileHeight       = 400
	tileTitleBand    = 30
	tileMarginLeft   = 60
	tileMarginRight  = 20
	tileMarginTop    = 20
	tileMarginBottom = 40
)

const (
	lineThickness    = 2
	maxLegendEntries = 5
	maxLegendName    = 15
	legendNameKeep   = 12
	legendOffsetX    = 150
	legendOffsetY    = 10
	titleScale       = 1.2
	legendNameScale  = 0.8
)

// RenderOptions configures a single-plot export. RenderSubplots only uses
// DarkMode and FontSize; every other setting comes from each subplot's config.
type RenderOptions struct {
	ShowGrid    bool
	ShowLegend  bool
	DarkMode    bool
	FontSize    models.FontSize
	Title       string
	LegendTitle string
	Axis        *models.AxisConfig
}

// DefaultRenderOptions returns dark mode, legend on, grid off, medium labels
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ShowGrid:   false,
		ShowLegend: true,
		DarkMode:   true,
		FontSize:   models.FontMedium,
	}
}

// RenderPlot draws all datasets into one 1200x800 plot
func RenderPlot(datasets []models.Dataset, opts RenderOptions) (*image.RGBA, error) {
	if len(datasets) == 0 {
		return nil, ErrEmptyInput
	}

	bounds, err := resolveBounds(datasets, opts.Axis)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bounds: %w", err)
	}

	theme := ThemeFor(opts.DarkMode)
	scale := opts.FontSize.Scale()
	c := NewCanvas(PlotWidth, PlotHeight, theme.Background)

	area := PlotArea{
		Left:   plotMarginLeft,
		Top:    plotMarginTop,
		Width:  PlotWidth - plotMarginLeft - plotMarginRight,
		Height: PlotHeight - plotMarginTop - plotMarginBottom,
	}

	if opts.ShowGrid {
		drawGrid(c, area, plotAxisStyle, theme.Grid)
	}
	drawAxisLines(c, area, theme.Axis)
	drawTicks(c, area, bounds, opts.Axis, plotAxisStyle, theme.Text, scale)
	drawDatasets(c, area, bounds, datasets)

	if opts.ShowLegend {
		drawLegend(c, datasets, opts.LegendTitle, area.Right()-legendOffsetX, area.Top+legendOffsetY, theme.Text, scale)
	}

	if opts.Title != "" {
		ts := scale * titleScale
		x := (PlotWidth - TextWidth(opts.Title, ts)) / 2
		if x < 0 {
			x = 0
		}
		y := (plotMarginTop - charHeight(ts)) / 2
		c.DrawText(x, y, opts.Title, theme.Text, ts)
	}

	return c.Image(), nil
}

// renderTile draws one subplot into the TileWidth x TileHeight cell at (x0, y0).
// number is the 1-based subplot number shown in the title.
func renderTile(c *Canvas, sp models.Subplot, number, x0, y0 int, theme Theme, scale float64) error {
	if len(sp.Datasets) == 0 {
		drawTileTitle(c, sp.Config.Title, number, x0, y0, theme.Text, scale)
		c.DrawRectOutline(x0, y0+tileTitleBand, TileWidth, TileHeight-tileTitleBand, theme.Axis)
		return nil
	}

	axis := sp.Config.AxisConfig()
	bounds, err := resolveBounds(sp.Datasets, axis)
	if err != nil {
		return fmt.Errorf("subplot %d: %w", number, err)
	}

	drawTileTitle(c, sp.Config.Title, number, x0, y0, theme.Text, scale)

	plotTop := y0 + tileTitleBand
	plotHeight := TileHeight - tileTitleBand
	area := PlotArea{
		Left:   x0 + tileMarginLeft,
		Top:    plotTop + tileMarginTop,
		Width:  TileWidth - tileMarginLeft - tileMarginRight,
		Height: plotHeight - tileMarginTop - tileMarginBottom,
	}

	if sp.Config.ShowGrid {
		drawGrid(c, area, tileAxisStyle, theme.Grid)
	}
	drawAxisLines(c, area, theme.Axis)
	drawTicks(c, area, bounds, axis, tileAxisStyle, theme.Text, scale)
	drawDatasets(c, area, bounds, sp.Datasets)

	if sp.Config.ShowLegend {
		drawLegend(c, sp.Datasets, sp.Config.LegendTitle, x0+TileWidth-legendOffsetX, area.Top+legendOffsetY, theme.Text, scale)
	}
	return nil
}

// TileTitle returns the heading drawn above a subplot tile
func TileTitle(number int, title string) string {
	if title == "" {
		return fmt.Sprintf("Subplot %d", number)
	}
	return fmt.Sprintf("Subplot %d: %s", number, title)
}

func drawTileTitle(c *Canvas, title string, number, x0, y0 int, col color.RGBA, scale float64) {
	text := TileTitle(number, title)
	ts := scale * titleScale
	x := x0
	if w := TextWidth(text, ts); w < TileWidth {
		x += (TileWidth - w) / 2
	}
	c.DrawText(x, y0+5, text, col, ts)
}

// drawDatasets draws every dataset as a thick polyline, skipping segments
// with an endpoint that cannot be projected.
func drawDatasets(c *Canvas, area PlotArea, b Bounds, datasets []models.Dataset) {
	for _, ds := range datasets {
		col := rgba(ds.Color)
		for i := 1; i < len(ds.Points); i++ {
			x0, y0, ok0 := area.project(ds.Points[i-1], b)
			x1, y1, ok1 := area.project(ds.Points[i], b)
			if !ok0 || !ok1 {
				continue
			}
			c.DrawThickLine(x0, y0, x1, y1, col, lineThickness)
		}
	}
}

// drawLegend draws an optional heading and up to five swatch + name entries
func drawLegend(c *Canvas, datasets []models.Dataset, title string, x, y int, col color.RGBA, scale float64) {
	lineHeight := int(10 * scale)
	swatch := int(8 * scale)

	if title != "" {
		c.DrawText(x, y, title, col, scale)
		y += lineHeight + 5
	}

	for i, ds := range datasets {
		if i >= maxLegendEntries {
			break
		}
		c.FillRect(x, y, swatch, swatch, rgba(ds.Color))
		c.DrawText(x+swatch+5, y, LegendName(ds.Name), col, scale*legendNameScale)
		y += lineHeight
	}
}

// LegendName shortens names longer than 15 characters to their first 12
// characters followed by "..."
func LegendName(name string) string {
	runes := []rune(name)
	if len(runes) > maxLegendName {
		return string(runes[:legendNameKeep]) + "..."
	}
	return name
}
