package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// SettlementRepository defines persistence operations for settlements and their
// owned lines. Lines are composition, not shared reference: they are inserted
// with the header in one atomic unit and removed with it on delete.
type SettlementRepository interface {
	// SaveSettlement inserts the header and all lines in a single database
	// transaction; a failure partway through leaves no orphaned lines.
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error
	FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error)
	FindSettlementByNo(ctx context.Context, settlementNo string) (*domain.Settlement, error)
	// ListSettlements returns settlements newest first, lines and partner
	// summaries attached.
	ListSettlements(ctx context.Context) ([]domain.Settlement, error)
	// UpdateSettlement persists header fields only; lines are untouched.
	// Returns apperrors.ErrNotFound when the row does not exist.
	UpdateSettlement(ctx context.Context, settlement domain.Settlement) error
	// DeleteSettlement removes the header; owned lines go with it via the
	// storage-level cascade. Returns apperrors.ErrNotFound when absent.
	DeleteSettlement(ctx context.Context, settlementID string) error
}
