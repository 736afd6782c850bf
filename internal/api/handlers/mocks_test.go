package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockExportService implements export.Service for testing
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportPlot(ctx context.Context, req models.PlotExportRequest) (*models.ExportRecord, error) {
	args := m.Called(ctx, req)
	record, _ := args.Get(0).(*models.ExportRecord)
	return record, args.Error(1)
}

func (m *MockExportService) ExportSubplots(ctx context.Context, req models.SubplotExportRequest) (*models.ExportRecord, error) {
	args := m.Called(ctx, req)
	record, _ := args.Get(0).(*models.ExportRecord)
	return record, args.Error(1)
}

// MockExportRepository implements repository.ExportRepository for testing
type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) Create(ctx context.Context, export *models.ExportRecord) error {
	args := m.Called(ctx, export)
	return args.Error(0)
}

func (m *MockExportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*models.ExportRecord)
	return record, args.Error(1)
}

func (m *MockExportRepository) List(ctx context.Context, limit int) ([]*models.ExportRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]*models.ExportRecord)
	return records, args.Error(1)
}

func (m *MockExportRepository) MarkCompleted(ctx context.Context, id uuid.UUID, storageKey string, width, height int) error {
	args := m.Called(ctx, id, storageKey, width, height)
	return args.Error(0)
}

func (m *MockExportRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

// MockFitRepository implements repository.FitRepository for testing
type MockFitRepository struct {
	mock.Mock
}

func (m *MockFitRepository) StoreFit(ctx context.Context, fit *models.FitRecord) error {
	args := m.Called(ctx, fit)
	return args.Error(0)
}

func (m *MockFitRepository) ListFits(ctx context.Context) ([]*models.FitRecord, error) {
	args := m.Called(ctx)
	fits, _ := args.Get(0).([]*models.FitRecord)
	return fits, args.Error(1)
}

func (m *MockFitRepository) ClearFits(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockArtifactStore implements storage.ArtifactStore for testing
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *MockArtifactStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockArtifactStore) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// statusOf returns the HTTP status carried by a huma error, or 0
func statusOf(err error) int {
	var se huma.StatusError
	if errors.As(err, &se) {
		return se.GetStatus()
	}
	return 0
}
