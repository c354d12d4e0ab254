package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the raw invoice payload. Fields bind loosely;
// the required-field precondition (invoiceNo, date, type, totalAmount) is
// checked by the service ahead of the duplicate check so that it reports as a
// missing-fields failure rather than a schema failure.
type CreateInvoiceRequest struct {
	InvoiceNo   string           `json:"invoiceNo"`
	Date        string           `json:"date"`
	InvoiceType string           `json:"type"`
	ClientID    string           `json:"clientId"`
	SupplierID  string           `json:"supplierId"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	TaxAmount   *decimal.Decimal `json:"taxAmount"` // defaults to 0
	Discount    *decimal.Decimal `json:"discount"`  // defaults to 0
	Status      string           `json:"status"`    // defaults to draft
	DueDate     string           `json:"dueDate"`
	Notes       string           `json:"notes"`
}

// PartySummary is a lightweight counterparty reference returned with invoices.
type PartySummary struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID   string          `json:"invoiceID"`
	InvoiceNo   string          `json:"invoiceNo"`
	Date        time.Time       `json:"date"`
	InvoiceType string          `json:"type"`
	ClientID    string          `json:"clientID,omitempty"`
	SupplierID  string          `json:"supplierID,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Discount    decimal.Decimal `json:"discount"`
	Status      string          `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
	Notes       string          `json:"notes"`
	Client      *PartySummary   `json:"client"`
	Supplier    *PartySummary   `json:"supplier"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		InvoiceNo:   inv.InvoiceNo,
		Date:        inv.Date,
		InvoiceType: string(inv.InvoiceType),
		ClientID:    inv.ClientID,
		SupplierID:  inv.SupplierID,
		TotalAmount: inv.TotalAmount,
		TaxAmount:   inv.TaxAmount,
		Discount:    inv.Discount,
		Status:      inv.Status,
		DueDate:     inv.DueDate,
		Notes:       inv.Notes,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if inv.Client != nil {
		resp.Client = &PartySummary{ID: inv.Client.ID, Code: inv.Client.Code, Name: inv.Client.Name}
	}
	if inv.Supplier != nil {
		resp.Supplier = &PartySummary{ID: inv.Supplier.ID, Code: inv.Supplier.Code, Name: inv.Supplier.Name}
	}
	return resp
}

// ToInvoiceResponseList converts a slice of domain.Invoice to response DTOs.
func ToInvoiceResponseList(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
