// Package export renders plot snapshots to PNG, stores them in an artifact
// store and records each export.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/RMahshie/cactusplot/internal/plot"
	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/internal/storage"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidRequest is returned for snapshots that cannot be exported
var ErrInvalidRequest = errors.New("invalid export request")

type Service interface {
	ExportPlot(ctx context.Context, req models.PlotExportRequest) (*models.ExportRecord, error)
	ExportSubplots(ctx context.Context, req models.SubplotExportRequest) (*models.ExportRecord, error)
}

type exportService struct {
	store      storage.ArtifactStore
	repository repository.ExportRepository
	defaults   plot.RenderOptions
}

// NewExportService creates an export service. defaults supplies the legend,
// theme and font size for requests that leave them unset.
func NewExportService(store storage.ArtifactStore, repo repository.ExportRepository, defaults plot.RenderOptions) Service {
	return &exportService{
		store:      store,
		repository: repo,
		defaults:   defaults,
	}
}

// StorageKey returns the artifact key of an export
func StorageKey(id string) string {
	return fmt.Sprintf("exports/%s.png", id)
}

func (s *exportService) ExportPlot(ctx context.Context, req models.PlotExportRequest) (*models.ExportRecord, error) {
	if len(req.Datasets) == 0 {
		return nil, plot.ErrEmptyInput
	}

	opts := s.renderOptions(req.DarkMode, req.FontSize)
	opts.ShowGrid = req.ShowGrid
	if req.ShowLegend != nil {
		opts.ShowLegend = *req.ShowLegend
	}
	opts.Title = req.Title
	opts.LegendTitle = req.LegendTitle
	opts.Axis = req.Axis

	return s.run(ctx, models.ExportKindPlot, models.LayoutSingle, plot.PlotWidth, plot.PlotHeight, func() (*image.RGBA, error) {
		return plot.RenderPlot(req.Datasets, opts)
	})
}

func (s *exportService) ExportSubplots(ctx context.Context, req models.SubplotExportRequest) (*models.ExportRecord, error) {
	if len(req.Subplots) == 0 {
		return nil, plot.ErrEmptyInput
	}

	layout, err := models.ParseSubplotLayout(string(req.Layout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	// Pad or truncate to the layout the same way the workspace does
	ws := &models.Workspace{Layout: layout, Subplots: append([]models.Subplot(nil), req.Subplots...)}
	ws.EnsureSubplotsMatchLayout()

	opts := s.renderOptions(req.DarkMode, req.FontSize)
	width, height := plot.GridSize(layout)

	return s.run(ctx, models.ExportKindSubplots, layout, width, height, func() (*image.RGBA, error) {
		return plot.RenderSubplots(ws.Layout, ws.Subplots, opts)
	})
}

// renderOptions applies the request's theme and font size over the defaults
func (s *exportService) renderOptions(darkMode *bool, fontSize models.FontSize) plot.RenderOptions {
	opts := s.defaults
	if darkMode != nil {
		opts.DarkMode = *darkMode
	}
	if fontSize != "" {
		opts.FontSize = fontSize
	}
	return opts
}

// run records the export, renders it and stores the PNG. Failures after the
// record exists are written back to it before being returned.
func (s *exportService) run(ctx context.Context, kind string, layout models.SubplotLayout, width, height int, render func() (*image.RGBA, error)) (*models.ExportRecord, error) {
	id := uuid.New()
	now := time.Now()
	record := &models.ExportRecord{
		ID:        id.String(),
		Kind:      kind,
		Layout:    string(layout),
		Width:     width,
		Height:    height,
		Status:    models.ExportStatusRendering,
		CreatedAt: now,
		UpdatedAt: now,
	}

	log.Info().Str("exportID", record.ID).Str("kind", kind).Str("layout", record.Layout).Msg("Creating export record")
	if err := s.repository.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create export record: %w", err)
	}

	img, err := render()
	if err != nil {
		return nil, s.fail(ctx, record, fmt.Errorf("failed to render export: %w", err))
	}

	data, err := plot.EncodePNGBytes(img)
	if err != nil {
		return nil, s.fail(ctx, record, err)
	}

	key := StorageKey(record.ID)
	if err := s.store.Upload(ctx, key, storage.ContentTypePNG, data); err != nil {
		return nil, s.fail(ctx, record, fmt.Errorf("failed to store export: %w", err))
	}

	bounds := img.Bounds()
	if err := s.repository.MarkCompleted(ctx, id, key, bounds.Dx(), bounds.Dy()); err != nil {
		if delErr := s.store.DeleteFile(ctx, key); delErr != nil {
			log.Error().Err(delErr).Str("exportID", record.ID).Str("key", key).Msg("Failed to delete orphaned export")
		}
		return nil, s.fail(ctx, record, fmt.Errorf("failed to complete export record: %w", err))
	}

	completed := time.Now()
	record.Status = models.ExportStatusCompleted
	record.StorageKey = &key
	record.Width = bounds.Dx()
	record.Height = bounds.Dy()
	record.UpdatedAt = completed
	record.CompletedAt = &completed

	log.Info().Str("exportID", record.ID).Int("width", record.Width).Int("height", record.Height).Int("bytes", len(data)).Msg("Export completed")
	return record, nil
}

func (s *exportService) fail(ctx context.Context, record *models.ExportRecord, cause error) error {
	log.Error().Err(cause).Str("exportID", record.ID).Msg("Export failed")

	id, _ := uuid.Parse(record.ID)
	if err := s.repository.UpdateError(ctx, id, cause.Error()); err != nil {
		log.Error().Err(err).Str("exportID", record.ID).Msg("Failed to record export error")
	}

	msg := cause.Error()
	record.Status = models.ExportStatusFailed
	record.ErrorMsg = &msg
	return cause
}
