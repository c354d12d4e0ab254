package models

import "time"

// AuditLog represents a row of the append-only audit_logs table.
// Meta is stored as JSONB.
type AuditLog struct {
	AuditID   string         `db:"audit_id"`
	Action    string         `db:"action"`
	Entity    string         `db:"entity"`
	EntityID  string         `db:"entity_id"`
	Meta      map[string]any `db:"meta"`
	CreatedAt time.Time      `db:"created_at"`
}
