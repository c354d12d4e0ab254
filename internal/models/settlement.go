package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement represents a row of the settlements table.
type Settlement struct {
	SettlementID   string          `db:"settlement_id"`
	SettlementNo   string          `db:"settlement_no"`
	SettlementDate time.Time       `db:"settlement_date"`
	SettlementType string          `db:"settlement_type"`
	Status         string          `db:"status"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Note           string          `db:"note"`
	AuditFields
}

// SettlementLine represents a row of the settlement_lines table.
// Rows are owned by their settlement and removed with it (ON DELETE CASCADE).
type SettlementLine struct {
	LineID       string          `db:"line_id"`
	SettlementID string          `db:"settlement_id"`
	PartnerID    string          `db:"partner_id"`
	Amount       decimal.Decimal `db:"amount"`
	LineType     string          `db:"line_type"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
	// Joined partner summary, list queries only.
	PartnerCode string `db:"partner_code"`
	PartnerName string `db:"partner_name"`
}
