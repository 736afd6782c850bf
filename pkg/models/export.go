package models

import (
	"time"
)

// Export kinds
const (
	ExportKindPlot     = "plot"
	ExportKindSubplots = "subplots"
)

// Export statuses
const (
	ExportStatusRendering = "rendering"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// ExportRecord represents one PNG export (for internal use)
type ExportRecord struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Layout      string     `json:"layout"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Status      string     `json:"status"`
	StorageKey  *string    `json:"storage_key,omitempty"`
	ErrorMsg    *string    `json:"error_message,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PlotExportRequest is a single-plot export snapshot. Nil toggles and an
// empty font size fall back to the server's render defaults.
type PlotExportRequest struct {
	Datasets    []Dataset   `json:"datasets"`
	ShowGrid    bool        `json:"show_grid,omitempty"`
	ShowLegend  *bool       `json:"show_legend,omitempty" doc:"Draw the legend box, defaults to true"`
	DarkMode    *bool       `json:"dark_mode,omitempty" doc:"Use the dark theme, defaults to the server setting"`
	FontSize    FontSize    `json:"font_size,omitempty" enum:"small,medium,large,extra_large"`
	Title       string      `json:"title,omitempty"`
	LegendTitle string      `json:"legend_title,omitempty"`
	Axis        *AxisConfig `json:"axis,omitempty"`
}

// SubplotExportRequest is a grid export snapshot
type SubplotExportRequest struct {
	Layout   SubplotLayout `json:"layout" enum:"1x1,1x2,2x1,2x2,3x1,1x3,3x2,2x3"`
	Subplots []Subplot     `json:"subplots"`
	DarkMode *bool         `json:"dark_mode,omitempty" doc:"Use the dark theme, defaults to the server setting"`
	FontSize FontSize      `json:"font_size,omitempty" enum:"small,medium,large,extra_large"`
}
