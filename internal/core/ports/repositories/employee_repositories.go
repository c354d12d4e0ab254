package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error)
	// ListEmployees returns employees newest first, with payroll counts.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}
