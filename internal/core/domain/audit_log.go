package domain

import "time"

// AuditAction identifies the kind of mutating operation being recorded.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditLog is an append-only provenance record written after a mutating
// operation commits. It references its subject entity but does not own it.
type AuditLog struct {
	AuditID   string         `json:"auditID"`
	Action    AuditAction    `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entityID"`
	Meta      map[string]any `json:"meta"`
	CreatedAt time.Time      `json:"createdAt"`
}
