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

// InvoiceService enforces the invoice invariants: required fields ahead of the
// duplicate check, unique invoiceNo, and counterparty resolution by type.
type InvoiceService struct {
	invoiceRepo portsrepo.InvoiceRepository
	audit       *AuditService
}

func NewInvoiceService(repo portsrepo.InvoiceRepository, audit *AuditService) *InvoiceService {
	return &InvoiceService{invoiceRepo: repo, audit: audit}
}

// CreateInvoice validates and persists a new invoice.
// The counterparty reference is taken from clientId only for sales invoices and
// from supplierId only for purchase invoices; the opposing reference is dropped
// silently even when present in the payload.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InvoiceNo == "" || req.Date == "" || req.InvoiceType == "" || req.TotalAmount == nil {
		return nil, fmt.Errorf("%w: invoiceNo, date, type and totalAmount are required", apperrors.ErrMissingFields)
	}

	existing, err := s.invoiceRepo.FindInvoiceByNo(ctx, req.InvoiceNo)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check invoice number uniqueness", slog.String("error", err.Error()), slog.String("invoice_no", req.InvoiceNo))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, req.InvoiceNo)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %s", apperrors.ErrValidation, err.Error())
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := utils.ParseDate(req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate: %s", apperrors.ErrValidation, err.Error())
		}
		dueDate = &d
	}

	clientID := ""
	supplierID := ""
	switch domain.InvoiceType(req.InvoiceType) {
	case domain.SalesInvoice:
		clientID = req.ClientID
	case domain.PurchaseInvoice:
		supplierID = req.SupplierID
	}

	taxAmount := decimal.Zero
	if req.TaxAmount != nil {
		taxAmount = *req.TaxAmount
	}
	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}
	status := req.Status
	if status == "" {
		status = "draft"
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		InvoiceNo:   req.InvoiceNo,
		Date:        date,
		InvoiceType: domain.InvoiceType(req.InvoiceType),
		ClientID:    clientID,
		SupplierID:  supplierID,
		TotalAmount: *req.TotalAmount,
		TaxAmount:   taxAmount,
		Discount:    discount,
		Status:      status,
		DueDate:     dueDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Invoice", invoice.InvoiceID, map[string]any{
		"invoiceNo": invoice.InvoiceNo,
		"type":      string(invoice.InvoiceType),
	})

	logger.Info("Invoice created successfully", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_no", invoice.InvoiceNo))
	return &invoice, nil
}

// ListInvoices retrieves invoices with counterparty summaries, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list invoices", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}
