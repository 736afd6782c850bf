package handlers

import (
	"context"
	"testing"

	"github.com/RMahshie/cactusplot/internal/dataset"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lineDataset() models.Dataset {
	return models.Dataset{
		Name:   "line",
		Points: []models.Point{{X: 0, Y: 3}, {X: 1, Y: 5}, {X: 2, Y: 7}, {X: 3, Y: 9}},
		Color:  dataset.DefaultColor(0),
	}
}

func TestCreateFit(t *testing.T) {
	tests := []struct {
		name      string
		model     models.FitModel
		ds        models.Dataset
		mockSetup func(*MockFitRepository)
		wantCode  int
	}{
		{
			name:  "linear fit is stored",
			model: models.FitLinear,
			ds:    lineDataset(),
			mockSetup: func(repo *MockFitRepository) {
				repo.On("StoreFit", mock.Anything, mock.MatchedBy(func(r *models.FitRecord) bool {
					return r.DatasetName == "line" && r.Result.Model == models.FitLinear && r.ID != ""
				})).Return(nil)
			},
		},
		{
			name:      "too few points",
			model:     models.FitSigmoid,
			ds:        models.Dataset{Name: "short", Points: []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			mockSetup: func(*MockFitRepository) {},
			wantCode:  422,
		},
		{
			name:  "degenerate linear fit",
			model: models.FitLinear,
			ds: models.Dataset{Name: "vertical", Points: []models.Point{
				{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
			}},
			mockSetup: func(*MockFitRepository) {},
			wantCode:  422,
		},
		{
			name:  "overflowing values",
			model: models.FitSigmoid,
			ds: models.Dataset{Name: "huge", Points: []models.Point{
				{X: 0, Y: -1e308}, {X: 1, Y: 0}, {X: 2, Y: 1e308},
			}},
			mockSetup: func(*MockFitRepository) {},
			wantCode:  422,
		},
		{
			name:      "unknown model",
			model:     models.FitModel("cubic"),
			ds:        lineDataset(),
			mockSetup: func(*MockFitRepository) {},
			wantCode:  400,
		},
		{
			name:  "database failure",
			model: models.FitHill,
			ds:    lineDataset(),
			mockSetup: func(repo *MockFitRepository) {
				repo.On("StoreFit", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockFitRepository{}
			tt.mockSetup(repo)

			handler := NewFitHandler(repo)

			req := &models.CreateFitRequest{}
			req.Body.Model = tt.model
			req.Body.Dataset = tt.ds
			req.Body.ExistingCount = 1
			resp, err := handler.CreateFit(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, statusOf(err))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Body.ID)
				assert.InDelta(t, 2.0, resp.Body.Result.Parameters[0], 1e-9)
				assert.InDelta(t, 3.0, resp.Body.Result.Parameters[1], 1e-9)
				assert.Equal(t, "line_fitted", resp.Body.FittedDataset.Name)
				assert.Equal(t, dataset.DefaultColor(2), resp.Body.FittedDataset.Color)
				assert.Len(t, resp.Body.FittedDataset.Points, 100)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestListFits(t *testing.T) {
	repo := &MockFitRepository{}
	repo.On("ListFits", mock.Anything).Return([]*models.FitRecord{
		{ID: "a", DatasetName: "one"},
		{ID: "b", DatasetName: "two"},
	}, nil)

	resp, err := NewFitHandler(repo).ListFits(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resp.Body.Fits, 2)
	assert.Equal(t, "two", resp.Body.Fits[1].DatasetName)

	repo.AssertExpectations(t)
}

func TestListFits_Empty(t *testing.T) {
	repo := &MockFitRepository{}
	repo.On("ListFits", mock.Anything).Return([]*models.FitRecord{}, nil)

	resp, err := NewFitHandler(repo).ListFits(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Body.Fits)
	assert.Empty(t, resp.Body.Fits)
}

func TestClearFits(t *testing.T) {
	repo := &MockFitRepository{}
	repo.On("ClearFits", mock.Anything).Return(int64(3), nil)

	resp, err := NewFitHandler(repo).ClearFits(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Body.Removed)

	failing := &MockFitRepository{}
	failing.On("ClearFits", mock.Anything).Return(int64(0), assert.AnError)

	_, err = NewFitHandler(failing).ClearFits(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 500, statusOf(err))
}
