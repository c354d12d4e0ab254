package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a member of staff.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hireDate"`
	IsActive   bool            `json:"isActive"`
	Note       string          `json:"note"`
	// PayrollCount is a derived usage aggregate owned by the store.
	PayrollCount int `json:"payrollCount"`
	AuditFields
}
