package models

// Client represents a row of the clients table.
// Count columns are derived aggregates attached by list queries only.
type Client struct {
	ClientID         string `db:"client_id"`
	Code             string `db:"code"`
	Name             string `db:"name"`
	Phone            string `db:"phone"`
	Email            string `db:"email"` // Nullable; empty string means absent
	Address          string `db:"address"`
	Note             string `db:"note"`
	ContractCount    int    `db:"contract_count"`
	ProjectCount     int    `db:"project_count"`
	InstallmentCount int    `db:"installment_count"`
	AuditFields
}
