package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSettlementLineRequest is one partner credit/debit entry inside a
// settlement creation payload.
type CreateSettlementLineRequest struct {
	PartnerID   string          `json:"partnerId"`
	Amount      decimal.Decimal `json:"amount"`
	LineType    string          `json:"type"`
	Description string          `json:"description"`
}

// CreateSettlementRequest defines the raw settlement payload. Fields bind
// loosely; the required-field precondition (settlementNo, date, type and a
// non-empty line sequence) is checked by the service ahead of the duplicate check.
type CreateSettlementRequest struct {
	SettlementNo   string                        `json:"settlementNo"`
	Date           string                        `json:"date"`
	SettlementType string                        `json:"type"`
	Status         string                        `json:"status"`      // defaults to draft
	TotalAmount    *decimal.Decimal              `json:"totalAmount"` // defaults to 0
	Note           string                        `json:"note"`
	Lines          []CreateSettlementLineRequest `json:"lines"`
}

// UpdateSettlementRequest defines the partial-update payload: only supplied
// fields are changed, absent fields are left untouched.
type UpdateSettlementRequest struct {
	Date           *string          `json:"date"`
	SettlementType *string          `json:"type"`
	Status         *string          `json:"status"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"`
	Note           *string          `json:"note"`
}

// SettlementLineResponse defines the data returned for a settlement line.
type SettlementLineResponse struct {
	LineID      string           `json:"lineID"`
	PartnerID   string           `json:"partnerID"`
	Amount      decimal.Decimal  `json:"amount"`
	LineType    string           `json:"type"`
	Description string           `json:"description"`
	Partner     *PartnerResponse `json:"partner"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// SettlementResponse defines the data returned for a settlement with its lines.
type SettlementResponse struct {
	SettlementID   string                   `json:"settlementID"`
	SettlementNo   string                   `json:"settlementNo"`
	Date           time.Time                `json:"date"`
	SettlementType string                   `json:"type"`
	Status         string                   `json:"status"`
	TotalAmount    decimal.Decimal          `json:"totalAmount"`
	Note           string                   `json:"note"`
	Lines          []SettlementLineResponse `json:"lines"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	resp := SettlementResponse{
		SettlementID:   s.SettlementID,
		SettlementNo:   s.SettlementNo,
		Date:           s.Date,
		SettlementType: s.SettlementType,
		Status:         s.Status,
		TotalAmount:    s.TotalAmount,
		Note:           s.Note,
		Lines:          make([]SettlementLineResponse, len(s.Lines)),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for i := range s.Lines {
		line := &s.Lines[i]
		lineResp := SettlementLineResponse{
			LineID:      line.LineID,
			PartnerID:   line.PartnerID,
			Amount:      line.Amount,
			LineType:    line.LineType,
			Description: line.Description,
			CreatedAt:   line.CreatedAt,
		}
		if line.Partner != nil {
			p := ToPartnerResponse(line.Partner)
			lineResp.Partner = &p
		}
		resp.Lines[i] = lineResp
	}
	return resp
}

// ToSettlementResponseList converts a slice of domain.Settlement to response DTOs.
func ToSettlementResponseList(settlements []domain.Settlement) []SettlementResponse {
	res := make([]SettlementResponse, len(settlements))
	for i := range settlements {
		res[i] = ToSettlementResponse(&settlements[i])
	}
	return res
}
