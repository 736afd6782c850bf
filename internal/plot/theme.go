package plot

import "image/color"

// Theme is the fixed colour set of an export
type Theme struct {
	Background color.RGBA
	Grid       color.RGBA
	Axis       color.RGBA
	Text       color.RGBA
}

var (
	DarkTheme = Theme{
		Background: color.RGBA{R: 27, G: 27, B: 27, A: 0xff},
		Grid:       color.RGBA{R: 60, G: 60, B: 60, A: 0xff},
		Axis:       color.RGBA{R: 180, G: 180, B: 180, A: 0xff},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 0xff},
	}
	LightTheme = Theme{
		Background: color.RGBA{R: 248, G: 248, B: 248, A: 0xff},
		Grid:       color.RGBA{R: 200, G: 200, B: 200, A: 0xff},
		Axis:       color.RGBA{R: 100, G: 100, B: 100, A: 0xff},
		Text:       color.RGBA{R: 0, G: 0, B: 0, A: 0xff},
	}
)

// ThemeFor returns DarkTheme or LightTheme
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
