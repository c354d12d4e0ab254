package mapping

import (
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/models"
)

// ToModelSettlement converts a domain Settlement header to a model Settlement
func ToModelSettlement(d domain.Settlement) models.Settlement {
	return models.Settlement{
		SettlementID:   d.SettlementID,
		SettlementNo:   d.SettlementNo,
		SettlementDate: d.Date,
		SettlementType: d.SettlementType,
		Status:         d.Status,
		TotalAmount:    d.TotalAmount,
		Note:           d.Note,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToModelSettlementLine converts a domain SettlementLine to a model SettlementLine
func ToModelSettlementLine(d domain.SettlementLine) models.SettlementLine {
	return models.SettlementLine{
		LineID:       d.LineID,
		SettlementID: d.SettlementID,
		PartnerID:    d.PartnerID,
		Amount:       d.Amount,
		LineType:     d.LineType,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainSettlement converts a model Settlement header to a domain Settlement
// (lines attached separately by the repository).
func ToDomainSettlement(m models.Settlement) domain.Settlement {
	return domain.Settlement{
		SettlementID:   m.SettlementID,
		SettlementNo:   m.SettlementNo,
		Date:           m.SettlementDate,
		SettlementType: m.SettlementType,
		Status:         m.Status,
		TotalAmount:    m.TotalAmount,
		Note:           m.Note,
		Lines:          []domain.SettlementLine{},
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainSettlementLine converts a model SettlementLine to a domain
// SettlementLine, attaching the joined partner summary when present.
func ToDomainSettlementLine(m models.SettlementLine) domain.SettlementLine {
	d := domain.SettlementLine{
		LineID:       m.LineID,
		SettlementID: m.SettlementID,
		PartnerID:    m.PartnerID,
		Amount:       m.Amount,
		LineType:     m.LineType,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
	if m.PartnerName != "" {
		d.Partner = &domain.Partner{
			PartnerID: m.PartnerID,
			Code:      m.PartnerCode,
			Name:      m.PartnerName,
		}
	}
	return d
}
