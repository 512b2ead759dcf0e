package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

type (
	// MemoryDB keeps records, audit logs and export jobs in process memory.
	// Repositories built on it mirror the Postgres ones, including
	// sql.ErrNoRows for missing rows and failed optimistic updates.
	MemoryDB struct {
		records *recordTable
		audit   *auditTable
		exports *exportJobTable
	}

	recordKey struct {
		resource string
		id       string
	}

	recordTable struct {
		t     map[recordKey]*models.RecordRow
		mutex sync.RWMutex
	}

	auditTable struct {
		t     []models.AuditLog
		mutex sync.RWMutex
	}

	exportJobTable struct {
		t     map[string]*models.ExportJob
		mutex sync.RWMutex
	}
)

// OpenMemoryDB creates an empty in-memory database.
func OpenMemoryDB() *MemoryDB {
	return &MemoryDB{
		records: &recordTable{t: make(map[recordKey]*models.RecordRow)},
		audit:   &auditTable{},
		exports: &exportJobTable{t: make(map[string]*models.ExportJob)},
	}
}

func cloneRow(row models.RecordRow) models.RecordRow {
	row.Payload = append([]byte(nil), row.Payload...)
	return row
}

// MemoryRecordRepository is the in-memory counterpart of RecordRepository.
type MemoryRecordRepository struct {
	db *recordTable
}

// NewMemoryRecordRepository constructs the repository.
func NewMemoryRecordRepository(db *MemoryDB) *MemoryRecordRepository {
	return &MemoryRecordRepository{db: db.records}
}

// List returns every record of a resource in display order.
func (r *MemoryRecordRepository) List(_ context.Context, resource string) ([]models.RecordRow, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	rows := make([]models.RecordRow, 0)
	for key, row := range r.db.t {
		if key.resource == resource {
			rows = append(rows, cloneRow(*row))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

// FindByID fetches one record.
func (r *MemoryRecordRepository) FindByID(_ context.Context, resource, id string) (*models.RecordRow, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	row, ok := r.db.t[recordKey{resource: resource, id: id}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := cloneRow(*row)
	return &clone, nil
}

// UpdateStatus swaps status and payload when the stored status equals params.From.
func (r *MemoryRecordRepository) UpdateStatus(_ context.Context, params UpdateStatusParams) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	row, ok := r.db.t[recordKey{resource: params.Resource, id: params.ID}]
	if !ok || row.Status != params.From {
		return sql.ErrNoRows
	}
	if params.UpdatedAt.IsZero() {
		params.UpdatedAt = time.Now().UTC()
	}
	row.Status = params.To
	row.Payload = append([]byte(nil), params.Payload...)
	row.UpdatedAt = params.UpdatedAt
	return nil
}

// Upsert writes rows, replacing existing ones with the same resource and id.
func (r *MemoryRecordRepository) Upsert(_ context.Context, rows []models.RecordRow) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, row := range rows {
		if row.ID == "" || row.Resource == "" {
			return fmt.Errorf("upsert record: resource and id are required")
		}
		clone := cloneRow(row)
		r.db.t[recordKey{resource: row.Resource, id: row.ID}] = &clone
	}
	return nil
}

// MemoryAuditRepository is the in-memory counterpart of AuditRepository.
type MemoryAuditRepository struct {
	db *auditTable
}

// NewMemoryAuditRepository constructs the repository.
func NewMemoryAuditRepository(db *MemoryDB) *MemoryAuditRepository {
	return &MemoryAuditRepository{db: db.audit}
}

// Create appends an audit entry.
func (r *MemoryAuditRepository) Create(_ context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	r.db.t = append(r.db.t, *entry)
	return nil
}

// ListByRecord returns the history of one record in insertion order.
func (r *MemoryAuditRepository) ListByRecord(_ context.Context, resource, id string) ([]models.AuditLog, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	entries := make([]models.AuditLog, 0)
	for _, entry := range r.db.t {
		if entry.Resource == resource && entry.ResourceID == id {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// MemoryExportJobRepository is the in-memory counterpart of ExportJobRepository.
type MemoryExportJobRepository struct {
	db *exportJobTable
}

// NewMemoryExportJobRepository constructs the repository.
func NewMemoryExportJobRepository(db *MemoryDB) *MemoryExportJobRepository {
	return &MemoryExportJobRepository{db: db.exports}
}

// Create stores a new job with generated defaults.
func (r *MemoryExportJobRepository) Create(_ context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.ExportStatusQueued
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	clone := *job
	r.db.t[job.ID] = &clone
	return nil
}

// GetByID returns a job by its identifier.
func (r *MemoryExportJobRepository) GetByID(_ context.Context, id string) (*models.ExportJob, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	job, ok := r.db.t[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *job
	return &clone, nil
}

// Update applies the provided changes to a job.
func (r *MemoryExportJobRepository) Update(_ context.Context, id string, params UpdateExportJobParams) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	job, ok := r.db.t[id]
	if !ok {
		return sql.ErrNoRows
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Progress != nil {
		job.Progress = *params.Progress
	}
	if params.ResultURL != nil {
		url := *params.ResultURL
		job.ResultURL = &url
	}
	if params.ErrorMessage != nil {
		msg := *params.ErrorMessage
		job.ErrorMessage = &msg
	}
	if params.FinishedAt != nil {
		at := *params.FinishedAt
		job.FinishedAt = &at
	}
	return nil
}

// ListQueued returns queued jobs, oldest first.
func (r *MemoryExportJobRepository) ListQueued(_ context.Context, limit int) ([]models.ExportJob, error) {
	if limit <= 0 {
		limit = 20
	}
	return r.collect(limit, func(job *models.ExportJob) bool {
		return job.Status == models.ExportStatusQueued
	}, func(a, b *models.ExportJob) bool { return a.CreatedAt.Before(b.CreatedAt) }), nil
}

// ListFinishedBefore returns finished jobs completed before cutoff.
func (r *MemoryExportJobRepository) ListFinishedBefore(_ context.Context, cutoff time.Time, limit int) ([]models.ExportJob, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.collect(limit, func(job *models.ExportJob) bool {
		return job.Status == models.ExportStatusFinished && job.FinishedAt != nil && job.FinishedAt.Before(cutoff)
	}, func(a, b *models.ExportJob) bool { return a.FinishedAt.Before(*b.FinishedAt) }), nil
}

// ListByCreator returns the most recent jobs of one user.
func (r *MemoryExportJobRepository) ListByCreator(_ context.Context, createdBy string, limit int) ([]models.ExportJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return r.collect(limit, func(job *models.ExportJob) bool {
		return job.CreatedBy == createdBy
	}, func(a, b *models.ExportJob) bool { return a.CreatedAt.After(b.CreatedAt) }), nil
}

func (r *MemoryExportJobRepository) collect(limit int, keep func(*models.ExportJob) bool, less func(a, b *models.ExportJob) bool) []models.ExportJob {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	matched := make([]*models.ExportJob, 0)
	for _, job := range r.db.t {
		if keep(job) {
			matched = append(matched, job)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	jobs := make([]models.ExportJob, len(matched))
	for i, job := range matched {
		jobs[i] = *job
	}
	return jobs
}
