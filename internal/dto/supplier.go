package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a supplier record.
type CreateSupplierRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Search string `form:"search"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID   string    `json:"supplierID"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Note         string    `json:"note"`
	InvoiceCount int       `json:"invoiceCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.SupplierID,
		Code:         s.Code,
		Name:         s.Name,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		Note:         s.Note,
		InvoiceCount: s.InvoiceCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToSupplierResponseList converts a slice of domain.Supplier to response DTOs.
func ToSupplierResponseList(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
