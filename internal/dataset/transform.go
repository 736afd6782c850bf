package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/RMahshie/cactusplot/pkg/models"
)

var (
	// ErrZeroWindow is returned for a rolling average window of 0
	ErrZeroWindow = errors.New("window size must be greater than 0")
	// ErrWindowTooLarge is returned when the window exceeds the dataset
	ErrWindowTooLarge = errors.New("window size cannot be larger than dataset size")
)

// RandomPoints is the size of a generated random dataset
const RandomPoints = 120

// Palette is the default dataset colour cycle
var Palette = [8]models.RGB{
	{31, 120, 180},  // blue
	{255, 127, 14},  // orange
	{44, 160, 44},   // green
	{214, 39, 40},   // red
	{148, 103, 189}, // purple
	{140, 86, 75},   // brown
	{227, 119, 194}, // pink
	{127, 127, 127}, // gray
}

// DefaultColor returns the palette colour for index, wrapping around
func DefaultColor(index int) models.RGB {
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}

// RollingAverage averages X and Y over every window of consecutive points,
// producing len(points)-window+1 points.
func RollingAverage(points []models.Point, window int) ([]models.Point, error) {
	if window <= 0 {
		return nil, ErrZeroWindow
	}
	if len(points) < window {
		return nil, ErrWindowTooLarge
	}

	out := make([]models.Point, 0, len(points)-window+1)
	for i := 0; i+window <= len(points); i++ {
		var sumX, sumY float64
		for _, p := range points[i : i+window] {
			sumX += p.X
			sumY += p.Y
		}
		out = append(out, models.Point{X: sumX / float64(window), Y: sumY / float64(window)})
	}
	return out, nil
}

// RollingAverageDataset derives "<name>_rolling_avg_<window>" from ds,
// keeping its colour.
func RollingAverageDataset(ds models.Dataset, window int) (models.Dataset, error) {
	points, err := RollingAverage(ds.Points, window)
	if err != nil {
		return models.Dataset{}, err
	}
	return models.Dataset{
		Name:   fmt.Sprintf("%s_rolling_avg_%d", ds.Name, window),
		Points: points,
		Color:  ds.Color,
	}, nil
}

// Random generates n points with X spread evenly over [0, 10) and Y uniform
// in [-2, 2).
func Random(name string, n int, rng *rand.Rand) models.Dataset {
	points := make([]models.Point, n)
	for i := range points {
		points[i] = models.Point{
			X: float64(i) / float64(n) * 10,
			Y: rng.Float64()*4 - 2,
		}
	}
	return models.Dataset{Name: name, Points: points}
}

// ParseTicks parses a comma separated tick list, dropping entries that are
// not numbers. It returns nil for a blank string.
func ParseTicks(s string) []float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	ticks := []float64{}
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}
