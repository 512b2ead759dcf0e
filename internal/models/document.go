package models

// DocumentStatus enumerates the publishing lifecycle of a document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusReview    DocumentStatus = "review"
	DocumentStatusPublished DocumentStatus = "published"
	DocumentStatusArchived  DocumentStatus = "archived"
)

// Document represents a policy or circular managed in the dashboard.
type Document struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Owner     string         `json:"owner"`
	Category  string         `json:"category"`
	Version   string         `json:"version"`
	UpdatedAt string         `json:"updated_at"`
	Status    DocumentStatus `json:"status"`
}
