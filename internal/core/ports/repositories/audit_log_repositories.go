package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// AuditLogRepository appends provenance records. The table is append-only:
// there is no update or delete operation.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}
