package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/aqarerp/backend/internal/utils"
	"github.com/google/uuid"
)

// EmployeeService enforces the employee invariants: unique code. Salary
// positivity is a field-level schema concern handled before this service runs.
type EmployeeService struct {
	employeeRepo portsrepo.EmployeeRepository
	audit        *AuditService
}

func NewEmployeeService(repo portsrepo.EmployeeRepository, audit *AuditService) *EmployeeService {
	return &EmployeeService{employeeRepo: repo, audit: audit}
}

// CreateEmployee validates and persists a new employee. The hireDate string is
// parsed to a calendar date here, at persistence time.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.employeeRepo.FindEmployeeByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check employee code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: employee code %s", apperrors.ErrDuplicate, req.Code)
	}

	hireDate, err := utils.ParseDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: hireDate: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HireDate:   hireDate,
		IsActive:   isActive,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save employee in repository", slog.String("error", err.Error()), slog.String("employee_id", employee.EmployeeID))
		}
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditCreate, "Employee", employee.EmployeeID, map[string]any{
		"code":       employee.Code,
		"name":       employee.Name,
		"position":   employee.Position,
		"department": employee.Department,
	})

	logger.Info("Employee created successfully", slog.String("employee_id", employee.EmployeeID), slog.String("code", employee.Code))
	return &employee, nil
}

// ListEmployees retrieves employees with payroll counts, newest first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list employees", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}
