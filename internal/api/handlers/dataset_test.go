package handlers

import (
	"context"
	"testing"

	"github.com/RMahshie/cactusplot/internal/dataset"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		content  string
		wantLen  int
		wantCode int
	}{
		{name: "csv with header", format: "csv", content: "x,y\n0,1\n1,2\n", wantLen: 2},
		{name: "xvg", format: "xvg", content: "# comment\n@ title\n0 1\n1 2\n2 3\n", wantLen: 3},
		{name: "no numeric rows", format: "csv", content: "a,b\nc,d\n", wantCode: 400},
		{name: "unknown format", format: "json", content: "[]", wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.ParseDatasetRequest{}
			req.Body.Name = "upload"
			req.Body.Format = tt.format
			req.Body.Content = tt.content
			req.Body.Index = 2

			resp, err := NewDatasetHandler().ParseDataset(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, statusOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "upload", resp.Body.Name)
			assert.Len(t, resp.Body.Points, tt.wantLen)
			assert.Equal(t, dataset.DefaultColor(2), resp.Body.Color)
		})
	}
}

func TestRollingAverage(t *testing.T) {
	req := &models.RollingAverageRequest{}
	req.Body.Dataset = models.Dataset{
		Name:   "rmsd",
		Points: []models.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}},
	}
	req.Body.Window = 2

	resp, err := NewDatasetHandler().RollingAverage(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "rmsd_rolling_avg_2", resp.Body.Name)
	assert.Equal(t, []models.Point{{X: 0.5, Y: 1}, {X: 1.5, Y: 3}}, resp.Body.Points)

	req.Body.Window = 4
	_, err = NewDatasetHandler().RollingAverage(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 400, statusOf(err))
}

func TestRandomDataset(t *testing.T) {
	req := &models.RandomDatasetRequest{}
	req.Body.Index = 1

	resp, err := NewDatasetHandler().RandomDataset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "random2", resp.Body.Name)
	assert.Len(t, resp.Body.Points, dataset.RandomPoints)
	assert.Equal(t, dataset.DefaultColor(1), resp.Body.Color)

	req.Body.Name = "noise"
	req.Body.Points = 10
	resp, err = NewDatasetHandler().RandomDataset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "noise", resp.Body.Name)
	assert.Len(t, resp.Body.Points, 10)
}

func TestListLayouts(t *testing.T) {
	resp, err := NewDatasetHandler().ListLayouts(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, resp.Body.Layouts, len(models.AllSubplotLayouts))
	first := resp.Body.Layouts[0]
	assert.Equal(t, models.LayoutSingle, first.Layout)
	assert.Equal(t, "Single (1x1)", first.Name)
	assert.Equal(t, 1, first.SubplotCount)

	for _, l := range resp.Body.Layouts {
		if l.Layout == models.LayoutGrid2x3 {
			assert.Equal(t, 2, l.Rows)
			assert.Equal(t, 3, l.Cols)
			assert.Equal(t, 6, l.SubplotCount)
			assert.Equal(t, 1960, l.Width)
			assert.Equal(t, 980, l.Height)
		}
	}
}
