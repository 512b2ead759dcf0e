package models

import "time"

// AuditActionStatusTransition marks a record status change.
const AuditActionStatusTransition = "STATUS_TRANSITION"

// AuditLog represents one entry of a record's status history.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID string    `db:"resource_id" json:"resource_id"`
	FromStatus string    `db:"from_status" json:"from_status"`
	ToStatus   string    `db:"to_status" json:"to_status"`
	Note       *string   `db:"note" json:"note,omitempty"`
	ActorID    *string   `db:"actor_id" json:"actor_id,omitempty"`
	ActorRole  *string   `db:"actor_role" json:"actor_role,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
