package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to create a partner record.
type CreatePartnerRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	PartnerID string    `json:"partnerID"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPartnerResponse converts a domain.Partner to PartnerResponse DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID: p.PartnerID,
		Code:      p.Code,
		Name:      p.Name,
		Phone:     p.Phone,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPartnerResponseList converts a slice of domain.Partner to response DTOs.
func ToPartnerResponseList(partners []domain.Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(partners))
	for i := range partners {
		res[i] = ToPartnerResponse(&partners[i])
	}
	return res
}
