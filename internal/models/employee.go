package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a row of the employees table.
type Employee struct {
	EmployeeID   string          `db:"employee_id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone"`
	Email        string          `db:"email"`
	Position     string          `db:"position"`
	Department   string          `db:"department"`
	Salary       decimal.Decimal `db:"salary"`
	HireDate     time.Time       `db:"hire_date"`
	IsActive     bool            `db:"is_active"`
	Note         string          `db:"note"`
	PayrollCount int             `db:"payroll_count"` // derived, list queries only
	AuditFields
}
