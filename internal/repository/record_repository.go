package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

// UpdateStatusParams describes an optimistic status change of one record.
type UpdateStatusParams struct {
	Resource  string
	ID        string
	From      string
	To        string
	Payload   []byte
	UpdatedAt time.Time
}

// RecordRepository persists dashboard records as JSONB payloads in Postgres.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository constructs the repository.
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// List returns every record of a resource in display order.
func (r *RecordRepository) List(ctx context.Context, resource string) ([]models.RecordRow, error) {
	const query = `SELECT id, resource, position, status, payload, created_at, updated_at
FROM records WHERE resource = $1 ORDER BY position ASC, id ASC`
	var rows []models.RecordRow
	if err := r.db.SelectContext(ctx, &rows, query, resource); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return rows, nil
}

// FindByID fetches one record. sql.ErrNoRows is returned untouched.
func (r *RecordRepository) FindByID(ctx context.Context, resource, id string) (*models.RecordRow, error) {
	const query = `SELECT id, resource, position, status, payload, created_at, updated_at
FROM records WHERE resource = $1 AND id = $2`
	var row models.RecordRow
	if err := r.db.GetContext(ctx, &row, query, resource, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus replaces status and payload when the stored status still equals
// params.From. sql.ErrNoRows signals the record is gone or was changed meanwhile.
func (r *RecordRepository) UpdateStatus(ctx context.Context, params UpdateStatusParams) error {
	if params.UpdatedAt.IsZero() {
		params.UpdatedAt = time.Now().UTC()
	}
	const query = `UPDATE records SET status = :to, payload = :payload, updated_at = :updated_at
WHERE resource = :resource AND id = :id AND status = :from`
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"resource":   params.Resource,
		"id":         params.ID,
		"from":       params.From,
		"to":         params.To,
		"payload":    params.Payload,
		"updated_at": params.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update record status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check record update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Upsert writes rows, replacing existing ones with the same resource and id.
func (r *RecordRepository) Upsert(ctx context.Context, rows []models.RecordRow) error {
	if len(rows) == 0 {
		return nil
	}
	const query = `INSERT INTO records (id, resource, position, status, payload, created_at, updated_at)
VALUES (:id, :resource, :position, :status, :payload, :created_at, :updated_at)
ON CONFLICT (resource, id) DO UPDATE SET position = EXCLUDED.position, status = EXCLUDED.status,
payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert records: %w", err)
	}
	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert record %s/%s: %w", row.Resource, row.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert records: %w", err)
	}
	return nil
}
