package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/aqarerp/backend/internal/models"
	"github.com/aqarerp/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	pool *pgxpool.Pool
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{pool: pool}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepository
var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmployee := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (employee_id, code, name, phone, email, position, department, salary, hire_date, is_active, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.pool.Exec(ctx, query,
		modelEmployee.EmployeeID,
		modelEmployee.Code,
		modelEmployee.Name,
		modelEmployee.Phone,
		modelEmployee.Email,
		modelEmployee.Position,
		modelEmployee.Department,
		modelEmployee.Salary,
		modelEmployee.HireDate,
		modelEmployee.IsActive,
		modelEmployee.Note,
		modelEmployee.CreatedAt,
		modelEmployee.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: employee with code %s already exists", apperrors.ErrDuplicate, modelEmployee.Code)
			}
		}
		return fmt.Errorf("failed to save employee %s: %w", modelEmployee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByCode retrieves an employee by its unique code.
func (r *PgxEmployeeRepository) FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, code, name, phone, email, position, department, salary, hire_date, is_active, note, created_at, updated_at
		FROM employees
		WHERE code = $1;
	`
	var modelEmployee models.Employee

	err := r.pool.QueryRow(ctx, query, code).Scan(
		&modelEmployee.EmployeeID,
		&modelEmployee.Code,
		&modelEmployee.Name,
		&modelEmployee.Phone,
		&modelEmployee.Email,
		&modelEmployee.Position,
		&modelEmployee.Department,
		&modelEmployee.Salary,
		&modelEmployee.HireDate,
		&modelEmployee.IsActive,
		&modelEmployee.Note,
		&modelEmployee.CreatedAt,
		&modelEmployee.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by code %s: %w", code, err)
	}

	domainEmployee := mapping.ToDomainEmployee(modelEmployee)
	return &domainEmployee, nil
}

// ListEmployees retrieves employees newest first with payroll counts.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT e.employee_id, e.code, e.name, e.phone, e.email, e.position, e.department, e.salary, e.hire_date, e.is_active, e.note, e.created_at, e.updated_at,
		       (SELECT COUNT(*) FROM payrolls p WHERE p.employee_id = e.employee_id) AS payroll_count
		FROM employees e
		ORDER BY e.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var modelEmployee models.Employee
		err := rows.Scan(
			&modelEmployee.EmployeeID,
			&modelEmployee.Code,
			&modelEmployee.Name,
			&modelEmployee.Phone,
			&modelEmployee.Email,
			&modelEmployee.Position,
			&modelEmployee.Department,
			&modelEmployee.Salary,
			&modelEmployee.HireDate,
			&modelEmployee.IsActive,
			&modelEmployee.Note,
			&modelEmployee.CreatedAt,
			&modelEmployee.UpdatedAt,
			&modelEmployee.PayrollCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(modelEmployee))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}

	return employees, nil
}
