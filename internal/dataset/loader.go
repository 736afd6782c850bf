// Package dataset loads datasets from CSV, XVG and XLSX files and derives new
// datasets from existing ones.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ParseCSV reads the first two columns of every row as X and Y. Rows with
// fewer than two columns or values that do not parse, headers included, are
// skipped.
func ParseCSV(r io.Reader) ([]models.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var points []models.Point
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if p, ok := parsePair(record); ok {
			points = append(points, p)
		}
	}
	return points, nil
}

// ParseXVG reads whitespace separated X and Y values. Blank lines and lines
// starting with '#' or '@' are skipped, as are lines that do not parse.
func ParseXVG(r io.Reader) ([]models.Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var points []models.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}
		if p, ok := parsePair(strings.Fields(line)); ok {
			points = append(points, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read xvg: %w", err)
	}
	return points, nil
}

// LoadXLSX reads the first two columns of a worksheet with the same skip
// policy as ParseCSV. An empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) ([]models.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	var points []models.Point
	for _, row := range rows {
		if p, ok := parsePair(row); ok {
			points = append(points, p)
		}
	}
	return points, nil
}

// LoadFile loads a dataset by file extension (.csv, .xlsx, otherwise XVG
// style whitespace columns). The dataset is named after the file stem and
// coloured from the palette by index.
func LoadFile(path string, index int) (models.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var points []models.Point
	var err error
	switch ext {
	case ".xlsx", ".xlsm":
		points, err = LoadXLSX(path, "")
	default:
		var file *os.File
		file, err = os.Open(path)
		if err != nil {
			return models.Dataset{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		if ext == ".csv" {
			points, err = ParseCSV(file)
		} else {
			points, err = ParseXVG(file)
		}
	}
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return models.Dataset{
		Name:   name,
		Points: points,
		Color:  DefaultColor(index),
	}, nil
}

// Parse reads text in the named format ("csv" or "xvg")
func Parse(format string, r io.Reader) ([]models.Point, error) {
	switch strings.ToLower(format) {
	case "csv":
		return ParseCSV(r)
	case "xvg":
		return ParseXVG(r)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func parsePair(fields []string) (models.Point, bool) {
	if len(fields) < 2 {
		return models.Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return models.Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return models.Point{}, false
	}
	return models.Point{X: x, Y: y}, true
}
