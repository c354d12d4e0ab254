package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// SaveInvoice inserts a new invoice. A storage-level unique violation on
	// invoice_no surfaces as apperrors.ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByNo(ctx context.Context, invoiceNo string) (*domain.Invoice, error)
	// ListInvoices returns invoices newest first with counterparty summaries.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}
