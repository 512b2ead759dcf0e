package dto

import "github.com/noah-isme/sma-dashboard-api/internal/models"

// ExportRequest captures POST /exports payload.
type ExportRequest struct {
	Resource string              `json:"resource" validate:"required"`
	Format   models.ExportFormat `json:"format" validate:"required,oneof=csv pdf"`
	Search   string              `json:"search"`
	Filters  map[string]string   `json:"filters"`
}

// ExportJobResponse is returned after enqueueing an export.
type ExportJobResponse struct {
	ID       string              `json:"id"`
	Status   models.ExportStatus `json:"status"`
	Progress int                 `json:"progress"`
}

// ExportStatusResponse exposes job progress metadata.
type ExportStatusResponse struct {
	ID        string              `json:"id"`
	Resource  string              `json:"resource"`
	Status    models.ExportStatus `json:"status"`
	Progress  int                 `json:"progress"`
	ResultURL *string             `json:"result_url,omitempty"`
	Error     *string             `json:"error,omitempty"`
}
