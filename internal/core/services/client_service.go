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

// Distinct duplicate rejections so handlers can render distinct messages.
// Both satisfy errors.Is(err, apperrors.ErrDuplicate); the email variant also
// matches apperrors.ErrDuplicateEmail, same as a raced storage-level violation.
var (
	ErrClientCodeTaken  = fmt.Errorf("%w: client code already in use", apperrors.ErrDuplicate)
	ErrClientEmailTaken = fmt.Errorf("%w: client email already in use", apperrors.ErrDuplicateEmail)
)

// ClientService enforces the client invariants: unique code, and unique email
// among clients when a non-empty email is supplied.
type ClientService struct {
	clientRepo portsrepo.ClientRepository
	audit      *AuditService
}

func NewClientService(repo portsrepo.ClientRepository, audit *AuditService) *ClientService {
	return &ClientService{clientRepo: repo, audit: audit}
}

// CreateClient validates and persists a new client.
// The code check runs before the email check: a payload violating both reports
// the code error only (fail-fast, first violation wins).
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.clientRepo.FindClientByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check client code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}
	if existing != nil {
		return nil, ErrClientCodeTaken
	}

	// Empty email means absent; the uniqueness check is skipped entirely.
	if req.Email != "" {
		byEmail, err := s.clientRepo.FindClientByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check client email uniqueness", slog.String("error", err.Error()))
			return nil, err
		}
		if byEmail != nil {
			return nil, ErrClientEmailTaken
		}
	}

	now := time.Now()
	client := domain.Client{
		ClientID: uuid.NewString(),
		Code:     req.Code,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Note:     req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save client in repository", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Client", client.ClientID, map[string]any{
		"code": client.Code,
		"name": client.Name,
	})

	logger.Info("Client created successfully", slog.String("client_id", client.ClientID), slog.String("code", client.Code))
	return &client, nil
}

// ListClients retrieves clients with usage counts, optionally filtered by a
// case-insensitive search over name, code and phone.
func (s *ClientService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, search)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list clients", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}
