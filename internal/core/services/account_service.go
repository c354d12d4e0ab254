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

// AccountService enforces the chart-of-accounts invariants that field-level
// schema validation cannot express: code uniqueness and parent consistency.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
	audit       *AuditService
}

func NewAccountService(repo portsrepo.AccountRepository, audit *AuditService) *AccountService {
	return &AccountService{accountRepo: repo, audit: audit}
}

// CreateAccount validates and persists a new account.
// Rule order: duplicate code, then parent existence, then parent type match.
// A missing parent is never reported as a type mismatch.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Fast-path duplicate check for a friendly message; the unique constraint on
	// accounts.code remains the authoritative guard under concurrent writers.
	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check account code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, req.Code)
	}

	parentID := ""
	if req.ParentID != nil && *req.ParentID != "" {
		parentID = *req.ParentID
		parent, err := s.accountRepo.FindAccountByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s", apperrors.ErrNotFound, parentID)
			}
			logger.Error("Failed to look up parent account", slog.String("error", err.Error()), slog.String("parent_id", parentID))
			return nil, err
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: parent account type is %s, requested %s", apperrors.ErrTypeMismatch, parent.AccountType, req.AccountType)
		}
	}

	now := time.Now()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		ParentID:    parentID,
		IsActive:    isActive,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Account", account.AccountID, map[string]any{
		"code": account.Code,
		"name": account.Name,
		"type": string(account.AccountType),
	})

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// ListAccounts retrieves all accounts with their usage counts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
