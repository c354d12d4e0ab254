package domain

// Supplier represents a vendor the business purchases from.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Note       string `json:"note"`
	// InvoiceCount is a derived usage aggregate owned by the store.
	InvoiceCount int `json:"invoiceCount"`
	AuditFields
}
