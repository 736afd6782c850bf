package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// ExportRepository defines the interface for export history operations
type ExportRepository interface {
	Create(ctx context.Context, export *models.ExportRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error)
	List(ctx context.Context, limit int) ([]*models.ExportRecord, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, storageKey string, width, height int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
}

// FitRepository defines the interface for the fit results list
type FitRepository interface {
	StoreFit(ctx context.Context, fit *models.FitRecord) error
	ListFits(ctx context.Context) ([]*models.FitRecord, error)
	ClearFits(ctx context.Context) (int64, error)
}
