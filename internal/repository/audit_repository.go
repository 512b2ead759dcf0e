package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

// AuditRepository stores the status history of records.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository constructs the repository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts an audit entry, filling id and timestamp when empty.
func (r *AuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, action, resource, resource_id, from_status, to_status, note, actor_id, actor_role, created_at)
VALUES (:id, :action, :resource, :resource_id, :from_status, :to_status, :note, :actor_id, :actor_role, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// ListByRecord returns the history of one record, oldest first.
func (r *AuditRepository) ListByRecord(ctx context.Context, resource, id string) ([]models.AuditLog, error) {
	const query = `SELECT id, action, resource, resource_id, from_status, to_status, note, actor_id, actor_role, created_at
FROM audit_logs WHERE resource = $1 AND resource_id = $2 ORDER BY created_at ASC`
	var entries []models.AuditLog
	if err := r.db.SelectContext(ctx, &entries, query, resource, id); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return entries, nil
}
