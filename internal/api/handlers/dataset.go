package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/RMahshie/cactusplot/internal/dataset"
	"github.com/RMahshie/cactusplot/internal/plot"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// DatasetHandler handles dataset parsing and derivation
type DatasetHandler struct{}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler() *DatasetHandler {
	return &DatasetHandler{}
}

// ParseDataset turns CSV or XVG text into a dataset
func (h *DatasetHandler) ParseDataset(ctx context.Context, req *models.ParseDatasetRequest) (*models.DatasetResponse, error) {
	points, err := dataset.Parse(req.Body.Format, strings.NewReader(req.Body.Content))
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to parse dataset", err)
	}
	if len(points) == 0 {
		return nil, huma.Error400BadRequest("No valid data points found. Expected two numeric columns.")
	}

	log.Info().Str("dataset", req.Body.Name).Str("format", req.Body.Format).Int("points", len(points)).Msg("Dataset parsed")
	return &models.DatasetResponse{
		Body: models.Dataset{
			Name:   req.Body.Name,
			Points: points,
			Color:  dataset.DefaultColor(req.Body.Index),
		},
	}, nil
}

// RollingAverage derives a rolling-average dataset
func (h *DatasetHandler) RollingAverage(ctx context.Context, req *models.RollingAverageRequest) (*models.DatasetResponse, error) {
	ds, err := dataset.RollingAverageDataset(req.Body.Dataset, req.Body.Window)
	if err != nil {
		if errors.Is(err, dataset.ErrZeroWindow) || errors.Is(err, dataset.ErrWindowTooLarge) {
			return nil, huma.Error400BadRequest(err.Error(), err)
		}
		return nil, huma.Error500InternalServerError("Failed to compute rolling average", err)
	}

	return &models.DatasetResponse{Body: ds}, nil
}

// RandomDataset generates a random dataset
func (h *DatasetHandler) RandomDataset(ctx context.Context, req *models.RandomDatasetRequest) (*models.DatasetResponse, error) {
	n := req.Body.Points
	if n <= 0 {
		n = dataset.RandomPoints
	}
	name := req.Body.Name
	if name == "" {
		name = fmt.Sprintf("random%d", req.Body.Index+1)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ds := dataset.Random(name, n, rng)
	ds.Color = dataset.DefaultColor(req.Body.Index)

	return &models.DatasetResponse{Body: ds}, nil
}

// ListLayouts returns every subplot layout with its export size
func (h *DatasetHandler) ListLayouts(ctx context.Context, _ *struct{}) (*models.ListLayoutsResponse, error) {
	resp := &models.ListLayoutsResponse{}
	for _, layout := range models.AllSubplotLayouts {
		rows, cols := layout.Dimensions()
		width, height := plot.GridSize(layout)
		resp.Body.Layouts = append(resp.Body.Layouts, models.LayoutInfo{
			Layout:       layout,
			Name:         layout.String(),
			Rows:         rows,
			Cols:         cols,
			SubplotCount: layout.SubplotCount(),
			Width:        width,
			Height:       height,
		})
	}
	return resp, nil
}
