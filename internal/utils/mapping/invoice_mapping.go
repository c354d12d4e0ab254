package mapping

import (
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		InvoiceNo:   d.InvoiceNo,
		InvoiceDate: d.Date,
		InvoiceType: models.InvoiceType(d.InvoiceType),
		ClientID:    d.ClientID,
		SupplierID:  d.SupplierID,
		TotalAmount: d.TotalAmount,
		TaxAmount:   d.TaxAmount,
		Discount:    d.Discount,
		Status:      d.Status,
		DueDate:     d.DueDate,
		Notes:       d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice.
// Counterparty summaries are attached when the joined columns are present.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:   m.InvoiceID,
		InvoiceNo:   m.InvoiceNo,
		Date:        m.InvoiceDate,
		InvoiceType: domain.InvoiceType(m.InvoiceType),
		ClientID:    m.ClientID,
		SupplierID:  m.SupplierID,
		TotalAmount: m.TotalAmount,
		TaxAmount:   m.TaxAmount,
		Discount:    m.Discount,
		Status:      m.Status,
		DueDate:     m.DueDate,
		Notes:       m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if m.ClientID != "" && m.ClientName != "" {
		d.Client = &domain.PartyRef{ID: m.ClientID, Code: m.ClientCode, Name: m.ClientName}
	}
	if m.SupplierID != "" && m.SupplierName != "" {
		d.Supplier = &domain.PartyRef{ID: m.SupplierID, Code: m.SupplierCode, Name: m.SupplierName}
	}
	return d
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
