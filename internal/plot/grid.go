package plot

import (
	"image"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// TileSpacing separates tiles from each other and from the canvas edge
const TileSpacing = 40

// titleReserve is the extra height added below the grid for tile titles
const titleReserve = 60

// GridSize returns the canvas dimensions of a subplot export
func GridSize(layout models.SubplotLayout) (width, height int) {
	rows, cols := layout.Dimensions()
	width = cols*TileWidth + (cols+1)*TileSpacing
	height = rows*TileHeight + (rows+1)*TileSpacing + titleReserve
	return width, height
}

// TileOrigin returns the top-left corner of tile index in layout
func TileOrigin(layout models.SubplotLayout, index int) (x, y int) {
	_, cols := layout.Dimensions()
	row, col := index/cols, index%cols
	return TileSpacing + col*(TileWidth+TileSpacing), TileSpacing + row*(TileHeight+TileSpacing)
}

// RenderSubplots tiles the subplots row-major into one canvas. Subplots past
// the layout's capacity are ignored.
func RenderSubplots(layout models.SubplotLayout, subplots []models.Subplot, opts RenderOptions) (*image.RGBA, error) {
	if len(subplots) == 0 {
		return nil, ErrEmptyInput
	}

	theme := ThemeFor(opts.DarkMode)
	scale := opts.FontSize.Scale()
	width, height := GridSize(layout)
	c := NewCanvas(width, height, theme.Background)

	capacity := layout.SubplotCount()
	for i, sp := range subplots {
		if i >= capacity {
			break
		}
		x, y := TileOrigin(layout, i)
		if err := renderTile(c, sp, i+1, x, y, theme, scale); err != nil {
			return nil, err
		}
	}

	return c.Image(), nil
}
