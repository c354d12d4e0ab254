package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditLogRepository creates a new repository for the append-only audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{pool: pool}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepository
var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

// SaveAuditLog appends one audit entry. Meta is stored as JSONB.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	var meta []byte
	if entry.Meta != nil {
		var err error
		meta, err = json.Marshal(entry.Meta)
		if err != nil {
			return fmt.Errorf("failed to marshal audit meta for %s: %w", entry.AuditID, err)
		}
	}

	query := `
		INSERT INTO audit_logs (audit_id, action, entity, entity_id, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.pool.Exec(ctx, query,
		entry.AuditID,
		string(entry.Action),
		entry.Entity,
		entry.EntityID,
		meta,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", entry.AuditID, err)
	}
	return nil
}
