package handlers

import (
	"context"
	"time"

	"github.com/RMahshie/cactusplot/internal/fitting"
	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FitHandler handles curve fitting and the fit results list
type FitHandler struct {
	repo repository.FitRepository
}

// NewFitHandler creates a new fit handler
func NewFitHandler(repo repository.FitRepository) *FitHandler {
	return &FitHandler{repo: repo}
}

// CreateFit fits a model to a dataset and appends the result to the results list
func (h *FitHandler) CreateFit(ctx context.Context, req *models.CreateFitRequest) (*models.CreateFitResponse, error) {
	ds := req.Body.Dataset
	log.Info().Str("model", string(req.Body.Model)).Str("dataset", ds.Name).Int("points", len(ds.Points)).Msg("Fit request received")

	model, err := models.ParseFitModel(string(req.Body.Model))
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid fit model", err)
	}

	result := fitting.Fit(model, ds)
	if result == nil {
		return nil, huma.Error422UnprocessableEntity("Cannot fit this dataset. At least 3 finite points with distinct X values are required, and values must not overflow.")
	}

	record := &models.FitRecord{
		ID:          uuid.New().String(),
		DatasetName: ds.Name,
		Result:      *result,
		CreatedAt:   time.Now(),
	}
	if err := h.repo.StoreFit(ctx, record); err != nil {
		return nil, huma.Error500InternalServerError("Failed to store fit result", err)
	}

	log.Info().Str("fitID", record.ID).Float64("rSquared", result.RSquared).Msg("Fit stored")
	return &models.CreateFitResponse{
		Body: models.CreateFitResponseBody{
			ID:            record.ID,
			Result:        *result,
			FittedDataset: fitting.FittedDataset(ds, result, req.Body.ExistingCount),
		},
	}, nil
}

// ListFits returns the fit results list
func (h *FitHandler) ListFits(ctx context.Context, _ *struct{}) (*models.ListFitsResponse, error) {
	fits, err := h.repo.ListFits(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list fit results", err)
	}

	resp := &models.ListFitsResponse{}
	resp.Body.Fits = make([]models.FitRecord, 0, len(fits))
	for _, fit := range fits {
		resp.Body.Fits = append(resp.Body.Fits, *fit)
	}
	return resp, nil
}

// ClearFits empties the fit results list
func (h *FitHandler) ClearFits(ctx context.Context, _ *struct{}) (*models.ClearFitsResponse, error) {
	removed, err := h.repo.ClearFits(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to clear fit results", err)
	}

	log.Info().Int64("removed", removed).Msg("Fit results cleared")
	resp := &models.ClearFitsResponse{}
	resp.Body.Removed = removed
	return resp, nil
}
