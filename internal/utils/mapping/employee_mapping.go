package mapping

import (
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID: d.EmployeeID,
		Code:       d.Code,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		Position:   d.Position,
		Department: d.Department,
		Salary:     d.Salary,
		HireDate:   d.HireDate,
		IsActive:   d.IsActive,
		Note:       d.Note,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		Code:         m.Code,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Position:     m.Position,
		Department:   m.Department,
		Salary:       m.Salary,
		HireDate:     m.HireDate,
		IsActive:     m.IsActive,
		Note:         m.Note,
		PayrollCount: m.PayrollCount,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
