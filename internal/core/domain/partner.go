package domain

// Partner represents a settlement counterparty (an investor or co-contractor
// carrying credit/debit entries inside partner settlements).
type Partner struct {
	PartnerID string `json:"partnerID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`
	AuditFields
}
