package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/RMahshie/cactusplot/internal/export"
	"github.com/RMahshie/cactusplot/internal/plot"
	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/internal/storage"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memExportRepository is an in-memory ExportRepository
type memExportRepository struct {
	mu      sync.Mutex
	records map[string]*models.ExportRecord
	order   []string
}

func newMemExportRepository() *memExportRepository {
	return &memExportRepository{records: map[string]*models.ExportRecord{}}
}

func (r *memExportRepository) Create(ctx context.Context, export *models.ExportRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *export
	r.records[export.ID] = &copied
	r.order = append(r.order, export.ID)
	return nil
}

func (r *memExportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id.String()]
	if !ok {
		return nil, fmt.Errorf("export %s: %w", id, repository.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (r *memExportRepository) List(ctx context.Context, limit int) ([]*models.ExportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := []*models.ExportRecord{}
	for i := len(r.order) - 1; i >= 0 && len(records) < limit; i-- {
		copied := *r.records[r.order[i]]
		records = append(records, &copied)
	}
	return records, nil
}

func (r *memExportRepository) MarkCompleted(ctx context.Context, id uuid.UUID, storageKey string, width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := r.records[id.String()]
	now := time.Now()
	record.Status = models.ExportStatusCompleted
	record.StorageKey = &storageKey
	record.Width = width
	record.Height = height
	record.CompletedAt = &now
	return nil
}

func (r *memExportRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := r.records[id.String()]
	record.Status = models.ExportStatusFailed
	record.ErrorMsg = &errorMsg
	return nil
}

// memFitRepository is an in-memory FitRepository
type memFitRepository struct {
	mu   sync.Mutex
	fits []*models.FitRecord
}

func (r *memFitRepository) StoreFit(ctx context.Context, fit *models.FitRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fits = append(r.fits, fit)
	return nil
}

func (r *memFitRepository) ListFits(ctx context.Context) ([]*models.FitRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.FitRecord{}, r.fits...), nil
}

func (r *memFitRepository) ClearFits(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.fits))
	r.fits = nil
	return n, nil
}

func setupAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	exportRepo := newMemExportRepository()
	svc := export.NewExportService(store, exportRepo, plot.DefaultRenderOptions())

	_, api := humatest.New(t)
	RegisterRoutes(api, svc, exportRepo, &memFitRepository{}, store)
	return api
}

func TestHealth(t *testing.T) {
	api := setupAPI(t)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"healthy"`)
}

func TestPlotExport_EndToEnd(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/exports/plot", map[string]any{
		"datasets": []map[string]any{{
			"name":   "growth",
			"points": []map[string]any{{"x": 0, "y": 0}, {"x": 1, "y": 1}, {"x": 2, "y": 4}},
			"color":  []int{31, 120, 180},
		}},
		"show_grid":   true,
		"show_legend": true,
		"dark_mode":   true,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body models.ExportResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, models.ExportStatusCompleted, body.Status)
	assert.Equal(t, 1200, body.Width)
	assert.Equal(t, 800, body.Height)
	require.True(t, strings.HasPrefix(body.DownloadURL, "file://"), body.DownloadURL)

	data, err := os.ReadFile(strings.TrimPrefix(body.DownloadURL, "file://"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))

	resp = api.Get("/api/exports/" + body.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	require.NotEmpty(t, body.ImageURL)
	resp = api.Get(body.ImageURL)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, data, resp.Body.Bytes())

	resp = api.Get("/api/exports")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), body.ID)
}

func TestPlotExport_EmptyInput(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/exports/plot", map[string]any{"datasets": []any{}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Get("/api/exports")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"exports":[]`)
}

func TestSubplotExport_EndToEnd(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/exports/subplots", map[string]any{
		"layout": "2x2",
		"subplots": []map[string]any{{
			"id": "subplot_0",
			"datasets": []map[string]any{{
				"name":   "a",
				"points": []map[string]any{{"x": 0, "y": 1}, {"x": 1, "y": 2}},
			}},
			"config": map[string]any{"show_legend": true, "title": "fit"},
		}},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body models.ExportResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "2x2", body.Layout)
	assert.Equal(t, 1320, body.Width)
	assert.Equal(t, 980, body.Height)
}

func TestSubplotExport_RejectsUnknownLayout(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/exports/subplots", map[string]any{
		"layout":   "4x4",
		"subplots": []map[string]any{{"id": "subplot_0"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetExport_Errors(t *testing.T) {
	api := setupAPI(t)

	assert.Equal(t, http.StatusBadRequest, api.Get("/api/exports/not-a-uuid").Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/api/exports/"+uuid.New().String()).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/api/exports/"+uuid.New().String()+"/image").Code)
}

func TestFits_Lifecycle(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/fits", map[string]any{
		"model": "linear",
		"dataset": map[string]any{
			"name":   "line",
			"points": []map[string]any{{"x": 0, "y": 1}, {"x": 1, "y": 3}, {"x": 2, "y": 5}},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.CreateFitResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "y = 2.0000x + 1.0000", created.Result.Equation)
	assert.Equal(t, "line_fitted", created.FittedDataset.Name)

	resp = api.Post("/api/fits", map[string]any{
		"model": "hill",
		"dataset": map[string]any{
			"name":   "short",
			"points": []map[string]any{{"x": 0, "y": 1}},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Get("/api/fits")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), created.ID)

	resp = api.Delete("/api/fits")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"removed":1`)
}

func TestDatasets(t *testing.T) {
	api := setupAPI(t)

	resp := api.Post("/api/datasets/parse", map[string]any{
		"name":    "upload",
		"format":  "csv",
		"content": "x,y\n1,2\n3,4\n",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"name":"upload"`)

	resp = api.Post("/api/datasets/parse", map[string]any{
		"name":    "upload",
		"format":  "json",
		"content": "[]",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Post("/api/datasets/random", map[string]any{"points": 5})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"name":"random1"`)

	resp = api.Get("/api/layouts")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Grid (2x3)"`)
}
