package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/google/uuid"
)

// AuditService appends provenance records after mutating operations commit.
type AuditService struct {
	auditRepo portsrepo.AuditLogRepository
}

var _ portssvc.AuditRecorder = (*AuditService)(nil)

func NewAuditService(repo portsrepo.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: repo}
}

// Record appends one audit record. It must be called strictly after the primary
// write has committed. The primary operation has already succeeded by then, so a
// failure here is logged and swallowed; there is no compensating rollback.
func (s *AuditService) Record(ctx context.Context, action domain.AuditAction, entity string, entityID string, meta map[string]any) {
	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Meta:      meta,
		CreatedAt: time.Now(),
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit record",
			slog.String("error", err.Error()),
			slog.String("entity", entity),
			slog.String("entity_id", entityID),
			slog.String("action", string(action)),
		)
	}
}
