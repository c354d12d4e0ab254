package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes sales from purchase invoices.
type InvoiceType string

const (
	SalesInvoice    InvoiceType = "sales"
	PurchaseInvoice InvoiceType = "purchase"
)

// Invoice represents a row of the invoices table.
// ClientID and SupplierID are nullable foreign keys; exactly one is set,
// matching InvoiceType.
type Invoice struct {
	InvoiceID   string          `db:"invoice_id"`
	InvoiceNo   string          `db:"invoice_no"`
	InvoiceDate time.Time       `db:"invoice_date"`
	InvoiceType InvoiceType     `db:"invoice_type"`
	ClientID    string          `db:"client_id"`   // Nullable
	SupplierID  string          `db:"supplier_id"` // Nullable
	TotalAmount decimal.Decimal `db:"total_amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	Discount    decimal.Decimal `db:"discount"`
	Status      string          `db:"status"`
	DueDate     *time.Time      `db:"due_date"` // Nullable
	Notes       string          `db:"notes"`
	AuditFields
	// Joined counterparty summary, list queries only.
	ClientCode   string `db:"client_code"`
	ClientName   string `db:"client_name"`
	SupplierCode string `db:"supplier_code"`
	SupplierName string `db:"supplier_name"`
}
