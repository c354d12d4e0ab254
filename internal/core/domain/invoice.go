package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes sales invoices (issued to clients) from purchase
// invoices (received from suppliers).
type InvoiceType string

const (
	SalesInvoice    InvoiceType = "sales"
	PurchaseInvoice InvoiceType = "purchase"
)

// PartyRef is a lightweight reference to the invoice counterparty.
type PartyRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Invoice represents a sales or purchase invoice.
// InvoiceNo is the business key. Exactly one of ClientID/SupplierID is set,
// matching InvoiceType; the opposing reference is never attached.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"`
	InvoiceNo   string          `json:"invoiceNo"`
	Date        time.Time       `json:"date"`
	InvoiceType InvoiceType     `json:"type"`
	ClientID    string          `json:"clientID"`   // set only for sales invoices
	SupplierID  string          `json:"supplierID"` // set only for purchase invoices
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Discount    decimal.Decimal `json:"discount"`
	Status      string          `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
	Notes       string          `json:"notes"`
	Client      *PartyRef       `json:"client"`
	Supplier    *PartyRef       `json:"supplier"`
	AuditFields
}
