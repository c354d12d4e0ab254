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

// SupplierService enforces the supplier invariants: unique code.
type SupplierService struct {
	supplierRepo portsrepo.SupplierRepository
	audit        *AuditService
}

func NewSupplierService(repo portsrepo.SupplierRepository, audit *AuditService) *SupplierService {
	return &SupplierService{supplierRepo: repo, audit: audit}
}

// CreateSupplier validates and persists a new supplier.
func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.supplierRepo.FindSupplierByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check supplier code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: supplier code %s", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save supplier in repository", slog.String("error", err.Error()), slog.String("supplier_id", supplier.SupplierID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Supplier", supplier.SupplierID, map[string]any{
		"code": supplier.Code,
		"name": supplier.Name,
	})

	logger.Info("Supplier created successfully", slog.String("supplier_id", supplier.SupplierID), slog.String("code", supplier.Code))
	return &supplier, nil
}

// ListSuppliers retrieves suppliers with invoice counts, optionally filtered by
// a case-insensitive search over name, code and phone.
func (s *SupplierService) ListSuppliers(ctx context.Context, search string) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, search)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list suppliers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}
