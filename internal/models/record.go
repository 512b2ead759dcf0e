package models

import "time"

// RecordRow is the storage envelope shared by every dashboard resource. The
// typed model is kept as JSON in Payload; Status mirrors the payload's status
// so stores can guard updates on it.
type RecordRow struct {
	ID        string    `db:"id" json:"id"`
	Resource  string    `db:"resource" json:"resource"`
	Position  int       `db:"position" json:"position"`
	Status    string    `db:"status" json:"status"`
	Payload   []byte    `db:"payload" json:"payload"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
