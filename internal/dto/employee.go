package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create an employee record.
// Salary must be strictly positive; HireDate is a date string parsed at
// persistence time.
type CreateEmployeeRequest struct {
	Code       string          `json:"code" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email" binding:"omitempty,email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary" binding:"required,gt=0"`
	HireDate   string          `json:"hireDate" binding:"required"`
	IsActive   *bool           `json:"isActive"` // Optional, defaults to true
	Note       string          `json:"note"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID   string          `json:"employeeID"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Position     string          `json:"position"`
	Department   string          `json:"department"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hireDate"`
	IsActive     bool            `json:"isActive"`
	Note         string          `json:"note"`
	PayrollCount int             `json:"payrollCount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		Code:         e.Code,
		Name:         e.Name,
		Phone:        e.Phone,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		Salary:       e.Salary,
		HireDate:     e.HireDate,
		IsActive:     e.IsActive,
		Note:         e.Note,
		PayrollCount: e.PayrollCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEmployeeResponseList converts a slice of domain.Employee to response DTOs.
func ToEmployeeResponseList(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
