// Package fitting estimates Linear, Sigmoid and Hill curves for a dataset.
//
// Only the linear model is a least-squares fit. Sigmoid and Hill parameters
// are heuristic estimates (fixed steepness and fixed Hill coefficient) and
// their R² is measured against that heuristic curve.
package fitting

import (
	"fmt"
	"math"

	"github.com/RMahshie/cactusplot/internal/dataset"
	"github.com/RMahshie/cactusplot/pkg/models"
)

const (
	// MinPoints is the smallest dataset that can be fitted
	MinPoints = 3
	// Samples is the number of points on every fitted curve
	Samples = 100

	sigmoidSteepness = 1.0
	hillCoefficient  = 2.0
	hillMinX         = 0.001
	hillDefaultK     = 1.0
)

// Fit fits model to the finite points of ds. It returns nil when fewer than
// three finite points remain, when the linear fit is degenerate, when the
// values overflow to a non-finite parameter, R² or curve point, or for an
// unknown model.
func Fit(model models.FitModel, ds models.Dataset) *models.FitResult {
	finite := models.Dataset{Name: ds.Name, Points: finitePoints(ds.Points)}
	if len(finite.Points) < MinPoints {
		return nil
	}

	var result *models.FitResult
	switch model {
	case models.FitLinear:
		result = fitLinear(finite)
	case models.FitSigmoid:
		result = fitSigmoid(finite)
	case models.FitHill:
		result = fitHill(finite)
	}
	if result == nil || !isFiniteResult(result) {
		return nil
	}
	return result
}

// FittedDataset turns a fit result into a plottable dataset named
// "<source>_fitted". existing is the number of datasets already plotted and
// picks the palette colour.
func FittedDataset(source models.Dataset, result *models.FitResult, existing int) models.Dataset {
	points := make([]models.Point, len(result.FittedPoints))
	copy(points, result.FittedPoints)
	return models.Dataset{
		Name:   source.Name + "_fitted",
		Points: points,
		Color:  dataset.DefaultColor((existing + 1) % len(dataset.Palette)),
	}
}

func fitLinear(ds models.Dataset) *models.FitResult {
	points := ds.Points
	n := float64(len(points))
	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return nil
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	predict := func(x float64) float64 { return slope*x + intercept }
	xMin, xMax, _ := ds.XRange()

	return &models.FitResult{
		Model:          models.FitLinear,
		Parameters:     []float64{slope, intercept},
		ParameterNames: []string{"slope", "intercept"},
		RSquared:       rSquared(points, predict),
		FittedPoints:   sample(xMin, xMax, predict, nil),
		Equation:       fmt.Sprintf("y = %.4fx + %.4f", slope, intercept),
	}
}

func fitSigmoid(ds models.Dataset) *models.FitResult {
	points := ds.Points
	yMin, yMax, _ := ds.YRange()
	a := yMax - yMin
	offset := yMin
	b := sigmoidSteepness
	c := meanX(points)

	predict := func(x float64) float64 { return offset + a/(1+math.Exp(-b*(x-c))) }
	xMin, xMax, _ := ds.XRange()

	return &models.FitResult{
		Model:          models.FitSigmoid,
		Parameters:     []float64{a, b, c, offset},
		ParameterNames: []string{"amplitude", "steepness", "inflection", "offset"},
		RSquared:       rSquared(points, predict),
		FittedPoints:   sample(xMin, xMax, predict, nil),
		Equation:       fmt.Sprintf("y = %.4f + %.4f / (1 + exp(-%.4f(x - %.4f)))", offset, a, b, c),
	}
}

func fitHill(ds models.Dataset) *models.FitResult {
	points := ds.Points
	_, yMax, _ := ds.YRange()
	a := yMax
	n := hillCoefficient
	k := halfMaxX(points, a/2)

	predict := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		xn := math.Pow(x, n)
		return a * xn / (math.Pow(k, n) + xn)
	}
	xMin, xMax, _ := ds.XRange()
	xMin = math.Max(xMin, hillMinX)

	return &models.FitResult{
		Model:          models.FitHill,
		Parameters:     []float64{a, k, n},
		ParameterNames: []string{"max_response", "k_half", "hill_coeff"},
		RSquared:       rSquared(points, predict),
		FittedPoints:   sample(xMin, xMax, predict, func(x float64) bool { return x > 0 }),
		Equation:       fmt.Sprintf("y = (%.4f * x^%.2f) / (%.4f^%.2f + x^%.2f)", a, n, k, n, n),
	}
}

// halfMaxX returns the X of the first point whose Y is closest to target
func halfMaxX(points []models.Point, target float64) float64 {
	k := hillDefaultK
	best := math.Inf(1)
	for _, p := range points {
		if d := math.Abs(p.Y - target); d < best {
			best = d
			k = p.X
		}
	}
	return k
}

// sample evaluates predict at Samples evenly spaced X values from xMin to
// xMax, dropping X values rejected by keep.
func sample(xMin, xMax float64, predict func(float64) float64, keep func(float64) bool) []models.Point {
	out := make([]models.Point, 0, Samples)
	for i := 0; i < Samples; i++ {
		x := xMin + (xMax-xMin)*(float64(i)/float64(Samples-1))
		if keep != nil && !keep(x) {
			continue
		}
		out = append(out, models.Point{X: x, Y: predict(x)})
	}
	return out
}

// rSquared is 1 - SS_res/SS_tot. Constant Y data scores 1 when predicted
// exactly and 0 otherwise.
func rSquared(points []models.Point, predict func(float64) float64) float64 {
	var sumY float64
	for _, p := range points {
		sumY += p.Y
	}
	mean := sumY / float64(len(points))

	var ssTot, ssRes float64
	for _, p := range points {
		ssTot += (p.Y - mean) * (p.Y - mean)
		r := p.Y - predict(p.X)
		ssRes += r * r
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

func isFiniteResult(r *models.FitResult) bool {
	if !isFinite(r.RSquared) {
		return false
	}
	for _, v := range r.Parameters {
		if !isFinite(v) {
			return false
		}
	}
	for _, p := range r.FittedPoints {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return false
		}
	}
	return true
}

func finitePoints(points []models.Point) []models.Point {
	out := make([]models.Point, 0, len(points))
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func meanX(points []models.Point) float64 {
	var sum float64
	for _, p := range points {
		sum += p.X
	}
	return sum / float64(len(points))
}
