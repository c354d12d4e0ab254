package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/aqarerp/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementService enforces the settlement invariants: required fields
// including a non-empty line sequence, unique settlementNo, atomic header+lines
// creation, partial update, cascading delete.
type SettlementService struct {
	settlementRepo portsrepo.SettlementRepository
	audit          *AuditService
	// enforceTotal rejects settlements whose header total differs from the sum
	// of line amounts. Off by default: headers may carry rounding or fees.
	enforceTotal bool
}

func NewSettlementService(repo portsrepo.SettlementRepository, audit *AuditService, enforceTotal bool) *SettlementService {
	return &SettlementService{settlementRepo: repo, audit: audit, enforceTotal: enforceTotal}
}

// CreateSettlement validates and persists a settlement with its lines.
// The header and every line are written in one atomic unit: all succeed or none do.
func (s *SettlementService) CreateSettlement(ctx context.Context, req dto.CreateSettlementRequest) (*domain.Settlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SettlementNo == "" || req.Date == "" || req.SettlementType == "" || len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: settlementNo, date, type and at least one line are required", apperrors.ErrMissingFields)
	}

	existing, err := s.settlementRepo.FindSettlementByNo(ctx, req.SettlementNo)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check settlement number uniqueness", slog.String("error", err.Error()), slog.String("settlement_no", req.SettlementNo))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: settlement number %s", apperrors.ErrDuplicate, req.SettlementNo)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %s", apperrors.ErrValidation, err.Error())
	}

	totalAmount := decimal.Zero
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}
	status := req.Status
	if status == "" {
		status = "draft"
	}

	now := time.Now()
	settlement := domain.Settlement{
		SettlementID:   uuid.NewString(),
		SettlementNo:   req.SettlementNo,
		Date:           date,
		SettlementType: req.SettlementType,
		Status:         status,
		TotalAmount:    totalAmount,
		Note:           req.Note,
		Lines:          make([]domain.SettlementLine, len(req.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i, line := range req.Lines {
		settlement.Lines[i] = domain.SettlementLine{
			LineID:       uuid.NewString(),
			SettlementID: settlement.SettlementID,
			PartnerID:    line.PartnerID,
			Amount:       line.Amount,
			LineType:     line.LineType,
			Description:  line.Description,
			CreatedAt:    now,
		}
	}

	if s.enforceTotal && req.TotalAmount != nil && !settlement.LineTotal().Equal(totalAmount) {
		return nil, fmt.Errorf("%w: totalAmount %s does not match sum of lines %s",
			apperrors.ErrValidation, totalAmount.String(), settlement.LineTotal().String())
	}

	if err := s.settlementRepo.SaveSettlement(ctx, settlement); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save settlement in repository", slog.String("error", err.Error()), slog.String("settlement_id", settlement.SettlementID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Settlement", settlement.SettlementID, map[string]any{
		"settlementNo": settlement.SettlementNo,
		"type":         settlement.SettlementType,
		"lines":        len(settlement.Lines),
	})

	logger.Info("Settlement created successfully",
		slog.String("settlement_id", settlement.SettlementID),
		slog.String("settlement_no", settlement.SettlementNo),
		slog.Int("line_count", len(settlement.Lines)),
	)
	return &settlement, nil
}

// ListSettlements retrieves settlements with lines and partner summaries.
func (s *SettlementService) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	settlements, err := s.settlementRepo.ListSettlements(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list settlements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	if settlements == nil {
		return []domain.Settlement{}, nil
	}
	return settlements, nil
}

// UpdateSettlement applies a partial update to the settlement header: only
// supplied fields change, absent fields are left untouched.
func (s *SettlementService) UpdateSettlement(ctx context.Context, settlementID string, req dto.UpdateSettlementRequest) (*domain.Settlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	settlement, err := s.settlementRepo.FindSettlementByID(ctx, settlementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find settlement for update", slog.String("error", err.Error()), slog.String("settlement_id", settlementID))
		}
		return nil, err
	}

	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date: %s", apperrors.ErrValidation, err.Error())
		}
		settlement.Date = date
	}
	if req.SettlementType != nil {
		settlement.SettlementType = *req.SettlementType
	}
	if req.Status != nil {
		settlement.Status = *req.Status
	}
	if req.TotalAmount != nil {
		settlement.TotalAmount = *req.TotalAmount
	}
	if req.Note != nil {
		settlement.Note = *req.Note
	}
	settlement.UpdatedAt = time.Now()

	if err := s.settlementRepo.UpdateSettlement(ctx, *settlement); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update settlement in repository", slog.String("error", err.Error()), slog.String("settlement_id", settlementID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditUpdate, "Settlement", settlement.SettlementID, map[string]any{
		"settlementNo": settlement.SettlementNo,
		"status":       settlement.Status,
	})

	logger.Info("Settlement updated successfully", slog.String("settlement_id", settlement.SettlementID))
	return settlement, nil
}

// DeleteSettlement removes a settlement; its owned lines are removed with it in
// the same atomic operation.
func (s *SettlementService) DeleteSettlement(ctx context.Context, settlementID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	settlement, err := s.settlementRepo.FindSettlementByID(ctx, settlementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find settlement for delete", slog.String("error", err.Error()), slog.String("settlement_id", settlementID))
		}
		return err
	}

	if err := s.settlementRepo.DeleteSettlement(ctx, settlementID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete settlement in repository", slog.String("error", err.Error()), slog.String("settlement_id", settlementID))
		}
		return err
	}

	s.audit.Record(ctx, domain.AuditDelete, "Settlement", settlementID, map[string]any{
		"settlementNo": settlement.SettlementNo,
	})

	logger.Info("Settlement deleted successfully", slog.String("settlement_id", settlementID))
	return nil
}
