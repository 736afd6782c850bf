package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreatePlotExportRequest represents a request to render a single plot
type CreatePlotExportRequest struct {
	Body PlotExportRequest
}

// CreateSubplotExportRequest represents a request to render a subplot grid
type CreateSubplotExportRequest struct {
	Body SubplotExportRequest
}

// ExportResponseBody is the body of every export response
type ExportResponseBody struct {
	ID          string     `json:"id" doc:"Export unique identifier"`
	Kind        string     `json:"kind" enum:"plot,subplots" doc:"Export kind"`
	Layout      string     `json:"layout" doc:"Subplot layout used for the export"`
	Width       int        `json:"width" doc:"Image width in pixels"`
	Height      int        `json:"height" doc:"Image height in pixels"`
	Status      string     `json:"status" enum:"rendering,completed,failed" doc:"Export status"`
	Message     string     `json:"message,omitempty" doc:"Error message when the export failed"`
	DownloadURL string     `json:"download_url,omitempty" doc:"URL of the rendered PNG"`
	ImageURL    string     `json:"image_url,omitempty" doc:"API path serving the rendered PNG"`
	CreatedAt   time.Time  `json:"created_at" doc:"Export creation timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" doc:"Export completion timestamp"`
}

// ExportResponse represents a single export record
type ExportResponse struct {
	Body ExportResponseBody
}

// GetExportRequest represents a request for one export record
type GetExportRequest struct {
	ID string `path:"id" doc:"Export ID"`
}

// ExportImageResponse carries the raw PNG of an export
type ExportImageResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// ListExportsRequest represents a request for the export history
type ListExportsRequest struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of records"`
}

// ListExportsResponse represents the export history, newest first
type ListExportsResponse struct {
	Body struct {
		Exports []ExportResponseBody `json:"exports" doc:"Export records"`
	}
}

// CreateFitRequest represents a request to fit a model to a dataset
type CreateFitRequest struct {
	Body struct {
		Model         FitModel `json:"model" enum:"linear,sigmoid,hill" required:"true" doc:"Curve model"`
		Dataset       Dataset  `json:"dataset" required:"true" doc:"Dataset to fit"`
		ExistingCount int      `json:"existing_count,omitempty" minimum:"0" doc:"Number of datasets already plotted, used to pick the fitted colour"`
	}
}

// CreateFitResponseBody is the body of the fit response
type CreateFitResponseBody struct {
	ID            string    `json:"id" doc:"Fit record identifier"`
	Result        FitResult `json:"result" doc:"Fit parameters and quality"`
	FittedDataset Dataset   `json:"fitted_dataset" doc:"Fitted curve ready to plot"`
}

// CreateFitResponse represents the outcome of a fit
type CreateFitResponse struct {
	Body CreateFitResponseBody
}

// ListFitsResponse represents the fit results list
type ListFitsResponse struct {
	Body struct {
		Fits []FitRecord `json:"fits" doc:"Stored fit results"`
	}
}

// ClearFitsResponse represents the response from clearing the results list
type ClearFitsResponse struct {
	Body struct {
		Removed int64 `json:"removed" doc:"Number of fit results removed"`
	}
}

// ParseDatasetRequest represents raw CSV or XVG text to turn into a dataset
type ParseDatasetRequest struct {
	Body struct {
		Name    string `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"Dataset name"`
		Format  string `json:"format" enum:"csv,xvg" required:"true" doc:"Text format"`
		Content string `json:"content" maxLength:"10485760" required:"true" doc:"File contents"`
		Index   int    `json:"index,omitempty" minimum:"0" doc:"Palette index for the dataset colour"`
	}
}

// DatasetResponse wraps a single dataset
type DatasetResponse struct {
	Body Dataset
}

// RollingAverageRequest represents a request for a rolling-average dataset
type RollingAverageRequest struct {
	Body struct {
		Dataset Dataset `json:"dataset" required:"true" doc:"Source dataset"`
		Window  int     `json:"window" minimum:"1" required:"true" doc:"Window size in points"`
	}
}

// RandomDatasetRequest represents a request for a random dataset
type RandomDatasetRequest struct {
	Body struct {
		Name   string `json:"name,omitempty" maxLength:"200" doc:"Dataset name, defaults to randomN"`
		Points int    `json:"points,omitempty" minimum:"0" maximum:"100000" doc:"Number of points, defaults to 120"`
		Index  int    `json:"index,omitempty" minimum:"0" doc:"Palette index for the dataset colour"`
	}
}

// LayoutInfo describes one subplot layout
type LayoutInfo struct {
	Layout       SubplotLayout `json:"layout" doc:"Layout identifier"`
	Name         string        `json:"name" doc:"Display name"`
	Rows         int           `json:"rows"`
	Cols         int           `json:"cols"`
	SubplotCount int           `json:"subplot_count"`
	Width        int           `json:"width" doc:"Exported canvas width"`
	Height       int           `json:"height" doc:"Exported canvas height"`
}

// ListLayoutsResponse represents all supported layouts
type ListLayoutsResponse struct {
	Body struct {
		Layouts []LayoutInfo `json:"layouts"`
	}
}
