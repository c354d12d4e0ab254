package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// Account represents a row of the accounts table.
// ParentID uses string for the nullable self-referencing foreign key; the
// repository maps empty string to NULL.
type Account struct {
	AccountID        string      `db:"account_id"`
	Code             string      `db:"code"`
	Name             string      `db:"name"`
	AccountType      AccountType `db:"account_type"`
	ParentID         string      `db:"parent_id"` // Nullable
	IsActive         bool        `db:"is_active"`
	Description      string      `db:"description"`
	JournalLineCount int         `db:"journal_line_count"` // derived, list queries only
	AuditFields
}
