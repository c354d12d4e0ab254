package domain

// Client represents a customer of the business.
// Code is unique among clients; Email, when non-empty, must also be unique.
type Client struct {
	ClientID string `json:"clientID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Note     string `json:"note"`
	// Derived usage aggregates owned by the store.
	ContractCount    int `json:"contractCount"`
	ProjectCount     int `json:"projectCount"`
	InstallmentCount int `json:"installmentCount"`
	AuditFields
}
