package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	input := "time,value\n0,1.5\n1, 2.5\nbad,row\n2,3.5,extra\n3\n"

	points, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []models.Point{{X: 0, Y: 1.5}, {X: 1, Y: 2.5}, {X: 2, Y: 3.5}}, points)
}

func TestParseCSV_Empty(t *testing.T) {
	points, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestParseXVG(t *testing.T) {
	input := `# GROMACS output
@    title "RMSD"
@    xaxis  label "Time (ns)"

0.0    0.10
1.0\t0.25
  2.0   0.30   0.99
garbage line
`
	points, err := ParseXVG(strings.NewReader(strings.ReplaceAll(input, `\t`, "\t")))
	require.NoError(t, err)

	assert.Equal(t, []models.Point{{X: 0, Y: 0.1}, {X: 1, Y: 0.25}, {X: 2, Y: 0.3}}, points)
}

func TestParse_Format(t *testing.T) {
	points, err := Parse("CSV", strings.NewReader("1,2\n"))
	require.NoError(t, err)
	assert.Len(t, points, 1)

	points, err = Parse("xvg", strings.NewReader("1 2\n"))
	require.NoError(t, err)
	assert.Len(t, points, 1)

	_, err = Parse("json", strings.NewReader("{}"))
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"x", "y"},
		{0, 10},
		{1.5, 20.25},
		{"n/a", 3},
	})

	points, err := LoadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 0, Y: 10}, {X: 1.5, Y: 20.25}}, points)
}

func TestLoadXLSX_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]interface{}{{2, 4}})

	points, err := LoadXLSX(path, "Data")
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 2, Y: 4}}, points)

	_, err = LoadXLSX(path, "Missing")
	assert.Error(t, err)
}

func TestLoadXLSX_MissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "growth.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("x,y\n0,1\n1,2\n"), 0o644))
	xvgPath := filepath.Join(dir, "rmsd.xvg")
	require.NoError(t, os.WriteFile(xvgPath, []byte("@ title\n0 0.5\n"), 0o644))

	ds, err := LoadFile(csvPath, 0)
	require.NoError(t, err)
	assert.Equal(t, "growth", ds.Name)
	assert.Len(t, ds.Points, 2)
	assert.Equal(t, Palette[0], ds.Color)

	ds, err = LoadFile(xvgPath, 9)
	require.NoError(t, err)
	assert.Equal(t, "rmsd", ds.Name)
	assert.Equal(t, []models.Point{{X: 0, Y: 0.5}}, ds.Points)
	assert.Equal(t, Palette[1], ds.Color)

	xlsxPath := writeWorkbook(t, "Sheet1", [][]interface{}{{1, 1}})
	ds, err = LoadFile(xlsxPath, 2)
	require.NoError(t, err)
	assert.Equal(t, "test", ds.Name)
	assert.Len(t, ds.Points, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"), 0)
	assert.Error(t, err)
}
