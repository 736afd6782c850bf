package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/pkg/models"
)

// PostgresFitRepository implements FitRepository for PostgreSQL
type PostgresFitRepository struct {
	db *sql.DB
}

// NewPostgresFitRepository creates a new PostgreSQL fit repository
func NewPostgresFitRepository(db *sql.DB) repository.FitRepository {
	return &PostgresFitRepository{db: db}
}

// StoreFit appends a fit result to the results list
func (r *PostgresFitRepository) StoreFit(ctx context.Context, fit *models.FitRecord) error {
	params, err := json.Marshal(fit.Result.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}

	names, err := json.Marshal(fit.Result.ParameterNames)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter names: %w", err)
	}

	points, err := json.Marshal(fit.Result.FittedPoints)
	if err != nil {
		return fmt.Errorf("failed to marshal fitted points: %w", err)
	}

	query := `
		INSERT INTO fit_results (id, dataset_name, model, parameters, parameter_names, r_squared, fitted_points, equation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query,
		fit.ID,
		fit.DatasetName,
		string(fit.Result.Model),
		string(params),
		string(names),
		fit.Result.RSquared,
		string(points),
		fit.Result.Equation,
		fit.CreatedAt)

	return err
}

// ListFits returns the results list in insertion order
func (r *PostgresFitRepository) ListFits(ctx context.Context) ([]*models.FitRecord, error) {
	query := `
		SELECT id, dataset_name, model, parameters, parameter_names, r_squared, fitted_points, equation, created_at
		FROM fit_results
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fits := []*models.FitRecord{}
	for rows.Next() {
		var fit models.FitRecord
		var model string
		var params, names, points []byte

		err := rows.Scan(
			&fit.ID,
			&fit.DatasetName,
			&model,
			&params,
			&names,
			&fit.Result.RSquared,
			&points,
			&fit.Result.Equation,
			&fit.CreatedAt)

		if err != nil {
			return nil, err
		}

		fit.Result.Model = models.FitModel(model)
		if err := json.Unmarshal(params, &fit.Result.Parameters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parameters: %w", err)
		}
		if err := json.Unmarshal(names, &fit.Result.ParameterNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parameter names: %w", err)
		}
		if err := json.Unmarshal(points, &fit.Result.FittedPoints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fitted points: %w", err)
		}

		fits = append(fits, &fit)
	}

	return fits, rows.Err()
}

// ClearFits empties the results list and reports how many were removed
func (r *PostgresFitRepository) ClearFits(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fit_results`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
