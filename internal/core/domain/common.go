package domain

import "time"

// AuditFields holds standard timestamp information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
