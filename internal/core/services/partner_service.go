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
	"github.com/google/uuid"
)

// PartnerService enforces the partner invariants: unique code.
type PartnerService struct {
	partnerRepo portsrepo.PartnerRepository
	audit       *AuditService
}

func NewPartnerService(repo portsrepo.PartnerRepository, audit *AuditService) *PartnerService {
	return &PartnerService{partnerRepo: repo, audit: audit}
}

// CreatePartner validates and persists a new settlement partner.
func (s *PartnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.partnerRepo.FindPartnerByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check partner code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: partner code %s", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now()
	partner := domain.Partner{
		PartnerID: uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		Phone:     req.Phone,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save partner in repository", slog.String("error", err.Error()), slog.String("partner_id", partner.PartnerID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Partner", partner.PartnerID, map[string]any{
		"code": partner.Code,
		"name": partner.Name,
	})

	logger.Info("Partner created successfully", slog.String("partner_id", partner.PartnerID), slog.String("code", partner.Code))
	return &partner, nil
}

// ListPartners retrieves all partners, newest first.
func (s *PartnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list partners", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	if partners == nil {
		return []domain.Partner{}, nil
	}
	return partners, nil
}
