package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// Account represents one node of the chart of accounts.
// Code is the user-facing business key; ParentID is empty for root accounts.
// Invariant: when ParentID is set, the parent must exist and share AccountType.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"type"`
	ParentID    string      `json:"parentID"` // empty when root
	IsActive    bool        `json:"isActive"`
	Description string      `json:"description"`
	// JournalLineCount is a derived usage aggregate owned by the store.
	JournalLineCount int `json:"journalLineCount"`
	AuditFields
}
