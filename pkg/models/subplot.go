package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FontSize selects the tick label scale of an export
type FontSize string

const (
	FontSmall      FontSize = "small"
	FontMedium     FontSize = "medium"
	FontLarge      FontSize = "large"
	FontExtraLarge FontSize = "extra_large"
)

// Scale returns the multiplier applied to character advance and glyph size.
// Unknown values scale like FontMedium.
func (f FontSize) Scale() float64 {
	switch f {
	case FontSmall:
		return 0.8
	case FontLarge:
		return 1.3
	case FontExtraLarge:
		return 1.6
	default:
		return 1.0
	}
}

func (f FontSize) String() string {
	switch f {
	case FontSmall:
		return "Small"
	case FontLarge:
		return "Large"
	case FontExtraLarge:
		return "Extra Large"
	default:
		return "Medium"
	}
}

// ParseFontSize accepts the enum values case-insensitively
func ParseFontSize(s string) (FontSize, error) {
	switch FontSize(strings.ToLower(strings.TrimSpace(s))) {
	case FontSmall:
		return FontSmall, nil
	case FontMedium, "":
		return FontMedium, nil
	case FontLarge:
		return FontLarge, nil
	case FontExtraLarge, "extralarge", "extra-large":
		return FontExtraLarge, nil
	}
	return "", fmt.Errorf("invalid font size: %s (must be small, medium, large or extra_large)", s)
}

// SubplotLayout is a fixed rows x cols grid arrangement
type SubplotLayout string

const (
	LayoutSingle      SubplotLayout = "1x1"
	LayoutHorizontal2 SubplotLayout = "1x2"
	LayoutVertical2   SubplotLayout = "2x1"
	LayoutGrid2x2     SubplotLayout = "2x2"
	LayoutGrid3x1     SubplotLayout = "3x1"
	LayoutGrid1x3     SubplotLayout = "1x3"
	LayoutGrid3x2     SubplotLayout = "3x2"
	LayoutGrid2x3     SubplotLayout = "2x3"
)

// AllSubplotLayouts lists every supported layout in menu order
var AllSubplotLayouts = []SubplotLayout{
	LayoutSingle,
	LayoutHorizontal2,
	LayoutVertical2,
	LayoutGrid2x2,
	LayoutGrid3x1,
	LayoutGrid1x3,
	LayoutGrid3x2,
	LayoutGrid2x3,
}

// Dimensions returns (rows, cols). Unknown layouts behave as LayoutSingle.
func (l SubplotLayout) Dimensions() (int, int) {
	switch l {
	case LayoutHorizontal2:
		return 1, 2
	case LayoutVertical2:
		return 2, 1
	case LayoutGrid2x2:
		return 2, 2
	case LayoutGrid3x1:
		return 3, 1
	case LayoutGrid1x3:
		return 1, 3
	case LayoutGrid3x2:
		return 3, 2
	case LayoutGrid2x3:
		return 2, 3
	default:
		return 1, 1
	}
}

// SubplotCount returns rows * cols
func (l SubplotLayout) SubplotCount() int {
	rows, cols := l.Dimensions()
	return rows * cols
}

func (l SubplotLayout) String() string {
	switch l {
	case LayoutHorizontal2:
		return "Horizontal (1x2)"
	case LayoutVertical2:
		return "Vertical (2x1)"
	case LayoutGrid2x2:
		return "Grid (2x2)"
	case LayoutGrid3x1:
		return "Grid (3x1)"
	case LayoutGrid1x3:
		return "Grid (1x3)"
	case LayoutGrid3x2:
		return "Grid (3x2)"
	case LayoutGrid2x3:
		return "Grid (2x3)"
	default:
		return "Single (1x1)"
	}
}

// ParseSubplotLayout accepts "RxC" strings such as "2x3"
func ParseSubplotLayout(s string) (SubplotLayout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "single" {
		return LayoutSingle, nil
	}
	for _, l := range AllSubplotLayouts {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid layout: %s", s)
}

// SubplotConfig holds the per-subplot display settings
type SubplotConfig struct {
	ShowGrid        bool      `json:"show_grid,omitempty" doc:"Draw dotted grid lines"`
	ShowLegend      bool      `json:"show_legend,omitempty" default:"true" doc:"Draw the legend box"`
	LegendTitle     string    `json:"legend_title,omitempty" maxLength:"100" default:"Datasets" doc:"Optional legend heading"`
	UseCustomBounds bool      `json:"use_custom_bounds,omitempty" doc:"Apply the bounds and padding below"`
	XMin            *float64  `json:"x_min,omitempty"`
	XMax            *float64  `json:"x_max,omitempty"`
	YMin            *float64  `json:"y_min,omitempty"`
	YMax            *float64  `json:"y_max,omitempty"`
	XPaddingPercent float64   `json:"x_padding_percent,omitempty" minimum:"0" default:"5" doc:"X padding in percent"`
	YPaddingPercent float64   `json:"y_padding_percent,omitempty" minimum:"0" default:"5" doc:"Y padding in percent"`
	XTicks          []float64 `json:"x_ticks,omitempty" doc:"Explicit X tick values"`
	YTicks          []float64 `json:"y_ticks,omitempty" doc:"Explicit Y tick values"`
	Title           string    `json:"title,omitempty" maxLength:"200"`
}

// DefaultSubplotConfig returns legend on, grid off, 5% padding
func DefaultSubplotConfig() SubplotConfig {
	return SubplotConfig{
		ShowLegend:      true,
		LegendTitle:     "Datasets",
		XPaddingPercent: 5,
		YPaddingPercent: 5,
	}
}

// UnmarshalJSON starts from DefaultSubplotConfig so omitted fields keep
// their defaults
func (c *SubplotConfig) UnmarshalJSON(data []byte) error {
	type plain SubplotConfig
	cfg := plain(DefaultSubplotConfig())
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*c = SubplotConfig(cfg)
	return nil
}

// AxisConfig converts the subplot settings into an export axis config.
// It returns nil unless custom bounds are enabled, which selects the
// automatic bounds. Custom ticks only apply together with custom bounds.
func (c SubplotConfig) AxisConfig() *AxisConfig {
	if !c.UseCustomBounds {
		return nil
	}
	return &AxisConfig{
		XMin:     c.XMin,
		XMax:     c.XMax,
		YMin:     c.YMin,
		YMax:     c.YMax,
		XPadding: c.XPaddingPercent / 100,
		YPadding: c.YPaddingPercent / 100,
		XTicks:   c.XTicks,
		YTicks:   c.YTicks,
	}
}

// Subplot is one independent chart in a layout
type Subplot struct {
	ID       string        `json:"id,omitempty"`
	Datasets []Dataset     `json:"datasets,omitempty"`
	Config   SubplotConfig `json:"config,omitempty"`
}

// NewSubplot creates an empty subplot with default settings
func NewSubplot(id string) Subplot {
	return Subplot{
		ID:       id,
		Datasets: []Dataset{},
		Config:   DefaultSubplotConfig(),
	}
}

// UnmarshalJSON gives a subplot without a config the default settings
func (s *Subplot) UnmarshalJSON(data []byte) error {
	type plain Subplot
	sp := plain{Config: DefaultSubplotConfig()}
	if err := json.Unmarshal(data, &sp); err != nil {
		return err
	}
	*s = Subplot(sp)
	return nil
}

// Workspace groups subplots under a layout and tracks the active one
type Workspace struct {
	Layout   SubplotLayout
	Subplots []Subplot
	Active   int
}

// NewWorkspace creates a workspace with one empty subplot per layout cell
func NewWorkspace(layout SubplotLayout) *Workspace {
	w := &Workspace{Layout: layout}
	w.EnsureSubplotsMatchLayout()
	return w
}

// SetLayout switches the layout and resizes the subplot list to match
func (w *Workspace) SetLayout(layout SubplotLayout) {
	w.Layout = layout
	w.EnsureSubplotsMatchLayout()
}

// EnsureSubplotsMatchLayout truncates or pads the subplot list to the layout's
// subplot count and keeps the active index in range.
func (w *Workspace) EnsureSubplotsMatchLayout() {
	required := w.Layout.SubplotCount()

	if len(w.Subplots) > required {
		w.Subplots = w.Subplots[:required]
	}
	for len(w.Subplots) < required {
		w.Subplots = append(w.Subplots, NewSubplot(fmt.Sprintf("subplot_%d", len(w.Subplots))))
	}

	if w.Active < 0 || w.Active >= len(w.Subplots) {
		w.Active = 0
	}
}

// ActiveSubplot returns the active subplot, or nil if there is none
func (w *Workspace) ActiveSubplot() *Subplot {
	if w.Active < 0 || w.Active >= len(w.Subplots) {
		return nil
	}
	return &w.Subplots[w.Active]
}
