package models

// Supplier represents a row of the suppliers table.
type Supplier struct {
	SupplierID   string `db:"supplier_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	Address      string `db:"address"`
	Note         string `db:"note"`
	InvoiceCount int    `db:"invoice_count"` // derived, list queries only
	AuditFields
}
