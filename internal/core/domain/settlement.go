package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementLine is an owned child record of a Settlement holding one partner's
// credit or debit entry. Lines live and die with their settlement.
type SettlementLine struct {
	LineID       string          `json:"lineID"`
	SettlementID string          `json:"settlementID"`
	PartnerID    string          `json:"partnerID"`
	Amount       decimal.Decimal `json:"amount"`
	LineType     string          `json:"type"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
	Partner      *Partner        `json:"partner"`
}

// Settlement represents a partner settlement owning an ordered, non-empty
// sequence of lines. SettlementNo is the business key.
type Settlement struct {
	SettlementID   string           `json:"settlementID"`
	SettlementNo   string           `json:"settlementNo"`
	Date           time.Time        `json:"date"`
	SettlementType string           `json:"type"`
	Status         string           `json:"status"`
	TotalAmount    decimal.Decimal  `json:"totalAmount"`
	Note           string           `json:"note"`
	Lines          []SettlementLine `json:"lines"`
	AuditFields
}

// LineTotal sums the line amounts. Compared against TotalAmount only when the
// optional aggregate check is enabled.
func (s *Settlement) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Amount)
	}
	return total
}
