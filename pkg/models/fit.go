package models

import (
	"fmt"
	"strings"
	"time"
)

// FitModel identifies a curve model
type FitModel string

const (
	FitLinear  FitModel = "linear"
	FitSigmoid FitModel = "sigmoid"
	FitHill    FitModel = "hill"
)

func (m FitModel) String() string {
	switch m {
	case FitLinear:
		return "Linear (y = ax + b)"
	case FitSigmoid:
		return "Sigmoid (y = a / (1 + exp(-b(x-c))))"
	case FitHill:
		return "Hill (y = (a * x^n) / (k^n + x^n))"
	default:
		return "Unknown"
	}
}

// ParseFitModel accepts the enum values case-insensitively
func ParseFitModel(s string) (FitModel, error) {
	switch m := FitModel(strings.ToLower(strings.TrimSpace(s))); m {
	case FitLinear, FitSigmoid, FitHill:
		return m, nil
	}
	return "", fmt.Errorf("invalid fit model: %s (must be linear, sigmoid or hill)", s)
}

// FitResult is the outcome of fitting one model to one dataset
type FitResult struct {
	Model          FitModel  `json:"model" enum:"linear,sigmoid,hill"`
	Parameters     []float64 `json:"parameters" doc:"Fitted parameter values"`
	ParameterNames []string  `json:"parameter_names" doc:"Names matching parameters"`
	RSquared       float64   `json:"r_squared" doc:"Coefficient of determination"`
	FittedPoints   []Point   `json:"fitted_points" doc:"Sampled fitted curve"`
	Equation       string    `json:"equation"`
}

// FitRecord is one stored entry of the fit results list
type FitRecord struct {
	ID          string    `json:"id"`
	DatasetName string    `json:"dataset_name"`
	Result      FitResult `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}
