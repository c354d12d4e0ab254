package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/aqarerp/backend/internal/models"
	"github.com/aqarerp/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{pool: pool}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepository
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInvoice := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, invoice_no, invoice_date, invoice_type, client_id, supplier_id, total_amount, tax_amount, discount, status, due_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	// client_id and supplier_id are nullable FKs; only the one matching the
	// invoice type is set.
	var clientID, supplierID sql.NullString
	if modelInvoice.ClientID != "" {
		clientID = sql.NullString{String: modelInvoice.ClientID, Valid: true}
	}
	if modelInvoice.SupplierID != "" {
		supplierID = sql.NullString{String: modelInvoice.SupplierID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelInvoice.InvoiceID,
		modelInvoice.InvoiceNo,
		modelInvoice.InvoiceDate,
		modelInvoice.InvoiceType,
		clientID,
		supplierID,
		modelInvoice.TotalAmount,
		modelInvoice.TaxAmount,
		modelInvoice.Discount,
		modelInvoice.Status,
		modelInvoice.DueDate,
		modelInvoice.Notes,
		modelInvoice.CreatedAt,
		modelInvoice.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: invoice with number %s already exists", apperrors.ErrDuplicate, modelInvoice.InvoiceNo)
			}
		}
		return fmt.Errorf("failed to save invoice %s: %w", modelInvoice.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByNo retrieves an invoice by its unique invoice number.
func (r *PgxInvoiceRepository) FindInvoiceByNo(ctx context.Context, invoiceNo string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_no, invoice_date, invoice_type, client_id, supplier_id, total_amount, tax_amount, discount, status, due_date, notes, created_at, updated_at
		FROM invoices
		WHERE invoice_no = $1;
	`
	var modelInvoice models.Invoice
	var clientID, supplierID sql.NullString

	err := r.pool.QueryRow(ctx, query, invoiceNo).Scan(
		&modelInvoice.InvoiceID,
		&modelInvoice.InvoiceNo,
		&modelInvoice.InvoiceDate,
		&modelInvoice.InvoiceType,
		&clientID,
		&supplierID,
		&modelInvoice.TotalAmount,
		&modelInvoice.TaxAmount,
		&modelInvoice.Discount,
		&modelInvoice.Status,
		&modelInvoice.DueDate,
		&modelInvoice.Notes,
		&modelInvoice.CreatedAt,
		&modelInvoice.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by number %s: %w", invoiceNo, err)
	}

	if clientID.Valid {
		modelInvoice.ClientID = clientID.String
	}
	if supplierID.Valid {
		modelInvoice.SupplierID = supplierID.String
	}

	domainInvoice := mapping.ToDomainInvoice(modelInvoice)
	return &domainInvoice, nil
}

// ListInvoices retrieves invoices newest first with counterparty summaries
// joined from clients and suppliers.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT i.invoice_id, i.invoice_no, i.invoice_date, i.invoice_type, i.client_id, i.supplier_id, i.total_amount, i.tax_amount, i.discount, i.status, i.due_date, i.notes, i.created_at, i.updated_at,
		       c.code, c.name, s.code, s.name
		FROM invoices i
		LEFT JOIN clients c ON c.client_id = i.client_id
		LEFT JOIN suppliers s ON s.supplier_id = i.supplier_id
		ORDER BY i.invoice_date DESC, i.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var modelInvoice models.Invoice
		var clientID, supplierID sql.NullString
		var clientCode, clientName, supplierCode, supplierName sql.NullString
		err := rows.Scan(
			&modelInvoice.InvoiceID,
			&modelInvoice.InvoiceNo,
			&modelInvoice.InvoiceDate,
			&modelInvoice.InvoiceType,
			&clientID,
			&supplierID,
			&modelInvoice.TotalAmount,
			&modelInvoice.TaxAmount,
			&modelInvoice.Discount,
			&modelInvoice.Status,
			&modelInvoice.DueDate,
			&modelInvoice.Notes,
			&modelInvoice.CreatedAt,
			&modelInvoice.UpdatedAt,
			&clientCode,
			&clientName,
			&supplierCode,
			&supplierName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}

		if clientID.Valid {
			modelInvoice.ClientID = clientID.String
		}
		if supplierID.Valid {
			modelInvoice.SupplierID = supplierID.String
		}
		modelInvoice.ClientCode = clientCode.String
		modelInvoice.ClientName = clientName.String
		modelInvoice.SupplierCode = supplierCode.String
		modelInvoice.SupplierName = supplierName.String
		invoices = append(invoices, mapping.ToDomainInvoice(modelInvoice))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return invoices, nil
}
