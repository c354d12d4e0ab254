package models

// Partner represents a row of the partners table.
type Partner struct {
	PartnerID string `db:"partner_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Note      string `db:"note"`
	AuditFields
}
