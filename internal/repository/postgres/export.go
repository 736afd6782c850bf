package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RMahshie/cactusplot/internal/repository"
	"github.com/RMahshie/cactusplot/pkg/models"
	"github.com/google/uuid"
)

// PostgresExportRepository implements ExportRepository for PostgreSQL
type PostgresExportRepository struct {
	db *sql.DB
}

// NewPostgresExportRepository creates a new PostgreSQL export repository
func NewPostgresExportRepository(db *sql.DB) repository.ExportRepository {
	return &PostgresExportRepository{db: db}
}

const exportColumns = `id, kind, layout, width, height, status, storage_key, error_message, created_at, updated_at, completed_at`

// Create inserts a new export record
func (r *PostgresExportRepository) Create(ctx context.Context, export *models.ExportRecord) error {
	query := `
		INSERT INTO exports (id, kind, layout, width, height, status, storage_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		export.ID,
		export.Kind,
		export.Layout,
		export.Width,
		export.Height,
		export.Status,
		export.StorageKey,
		export.CreatedAt,
		export.UpdatedAt)

	return err
}

// GetByID retrieves an export record by ID
func (r *PostgresExportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	query := `SELECT ` + exportColumns + ` FROM exports WHERE id = $1`

	export, err := scanExport(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("export %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return export, nil
}

// List retrieves the most recent export records, newest first
func (r *PostgresExportRepository) List(ctx context.Context, limit int) ([]*models.ExportRecord, error) {
	query := `SELECT ` + exportColumns + ` FROM exports ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exports := []*models.ExportRecord{}
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}

	return exports, rows.Err()
}

// MarkCompleted records the stored artifact and completes the export
func (r *PostgresExportRepository) MarkCompleted(ctx context.Context, id uuid.UUID, storageKey string, width, height int) error {
	query := `
		UPDATE exports
		SET status = 'completed', storage_key = $1, width = $2, height = $3,
		    updated_at = NOW(), completed_at = NOW()
		WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, storageKey, width, height, id)
	return err
}

// UpdateError updates the error message for an export
func (r *PostgresExportRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE exports
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, errorMsg, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (*models.ExportRecord, error) {
	var export models.ExportRecord
	var storageKey, errorMsg sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&export.ID,
		&export.Kind,
		&export.Layout,
		&export.Width,
		&export.Height,
		&export.Status,
		&storageKey,
		&errorMsg,
		&export.CreatedAt,
		&export.UpdatedAt,
		&completedAt)

	if err != nil {
		return nil, err
	}

	if storageKey.Valid {
		export.StorageKey = &storageKey.String
	}
	if errorMsg.Valid {
		export.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		export.CompletedAt = &completedAt.Time
	}

	return &export, nil
}
