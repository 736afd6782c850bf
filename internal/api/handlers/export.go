package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/RMahshie/cactusplot/internal/export"
	"github.com/RMahshie/cactusplot/internal/plot"
	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/internal/storage"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	exportSvc export.Service
	repo      repository.ExportRepository
	store     storage.ArtifactStore
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportSvc export.Service, repo repository.ExportRepository, store storage.ArtifactStore) *ExportHandler {
	return &ExportHandler{
		exportSvc: exportSvc,
		repo:      repo,
		store:     store,
	}
}

// CreatePlotExport renders a single plot and returns its download URL
func (h *ExportHandler) CreatePlotExport(ctx context.Context, req *models.CreatePlotExportRequest) (*models.ExportResponse, error) {
	log.Info().Int("datasets", len(req.Body.Datasets)).Str("fontSize", string(req.Body.FontSize)).Msg("Plot export request received")

	record, err := h.exportSvc.ExportPlot(ctx, req.Body)
	if err != nil {
		return nil, exportError(err)
	}

	return &models.ExportResponse{Body: h.responseBody(ctx, record)}, nil
}

// CreateSubplotExport renders a subplot grid and returns its download URL
func (h *ExportHandler) CreateSubplotExport(ctx context.Context, req *models.CreateSubplotExportRequest) (*models.ExportResponse, error) {
	log.Info().Str("layout", string(req.Body.Layout)).Int("subplots", len(req.Body.Subplots)).Msg("Subplot export request received")

	record, err := h.exportSvc.ExportSubplots(ctx, req.Body)
	if err != nil {
		return nil, exportError(err)
	}

	return &models.ExportResponse{Body: h.responseBody(ctx, record)}, nil
}

// GetExport returns one export record
func (h *ExportHandler) GetExport(ctx context.Context, req *models.GetExportRequest) (*models.ExportResponse, error) {
	record, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &models.ExportResponse{Body: h.responseBody(ctx, record)}, nil
}

// GetExportImage returns the stored PNG of a completed export
func (h *ExportHandler) GetExportImage(ctx context.Context, req *models.GetExportRequest) (*models.ExportImageResponse, error) {
	record, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.ExportStatusCompleted || record.StorageKey == nil {
		return nil, huma.Error409Conflict(fmt.Sprintf("Export is %s, no image available", record.Status))
	}

	data, err := h.store.DownloadFile(ctx, *record.StorageKey)
	if err != nil {
		log.Error().Err(err).Str("exportID", record.ID).Msg("Failed to download export")
		return nil, huma.Error500InternalServerError("Failed to read export image", err)
	}

	return &models.ExportImageResponse{
		ContentType: storage.ContentTypePNG,
		Body:        data,
	}, nil
}

func (h *ExportHandler) lookup(ctx context.Context, id string) (*models.ExportRecord, error) {
	exportID, err := uuid.Parse(id)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid export ID", err)
	}

	record, err := h.repo.GetByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error404NotFound("Export not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to get export", err)
	}
	return record, nil
}

// ListExports returns the export history, newest first
func (h *ExportHandler) ListExports(ctx context.Context, req *models.ListExportsRequest) (*models.ListExportsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	records, err := h.repo.List(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list exports", err)
	}

	resp := &models.ListExportsResponse{}
	resp.Body.Exports = make([]models.ExportResponseBody, 0, len(records))
	for _, record := range records {
		resp.Body.Exports = append(resp.Body.Exports, h.responseBody(ctx, record))
	}
	return resp, nil
}

// responseBody converts a record, attaching a download URL once the PNG is stored
func (h *ExportHandler) responseBody(ctx context.Context, record *models.ExportRecord) models.ExportResponseBody {
	body := models.ExportResponseBody{
		ID:          record.ID,
		Kind:        record.Kind,
		Layout:      record.Layout,
		Width:       record.Width,
		Height:      record.Height,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
		CompletedAt: record.CompletedAt,
	}
	if record.ErrorMsg != nil {
		body.Message = *record.ErrorMsg
	}

	if record.Status == models.ExportStatusCompleted && record.StorageKey != nil {
		body.ImageURL = ImagePath(record.ID)
		url, err := h.store.GenerateDownloadURL(ctx, *record.StorageKey)
		if err != nil {
			log.Warn().Err(err).Str("exportID", record.ID).Msg("Failed to generate download URL")
		} else {
			body.DownloadURL = url
		}
	}
	return body
}

// ImagePath returns the API path serving an export's PNG
func ImagePath(id string) string {
	return "/api/exports/" + id + "/image"
}

// exportError maps export failures to user-facing HTTP errors
func exportError(err error) error {
	switch {
	case errors.Is(err, plot.ErrEmptyInput):
		return huma.Error400BadRequest("Nothing to export. Add at least one dataset.", err)
	case errors.Is(err, plot.ErrNoData):
		return huma.Error400BadRequest("Custom bounds need at least one finite data point.", err)
	case errors.Is(err, export.ErrInvalidRequest):
		return huma.Error400BadRequest("Invalid export request.", err)
	default:
		return huma.Error500InternalServerError("Failed to export plot. Please try again.", err)
	}
}
