package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aqarerp/backend/internal/apperrors"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(r *gin.Engine, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := r.Group("/employees")
	{
		employees.GET("", middleware.NoCache(), h.listEmployees)
		employees.POST("", h.createEmployee)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Creates an employee; the code must be unique, salary must be positive and hireDate must parse
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Validation error, duplicate code or unparseable hire date"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorBody("بيانات غير صحيحة", err))
		return
	}

	newEmployee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate employee code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": "كود الموظف موجود بالفعل"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating employee", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة", "message": err.Error()})
		default:
			logger.Error("Failed to create employee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء الموظف"})
		}
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", newEmployee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(newEmployee))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves employees newest first with payroll counts
// @Tags employees
// @Produce  json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الموظفين"})
		return
	}

	logger.Info("Employees listed successfully", slog.Int("count", len(employees)))
	c.JSON(http.StatusOK, dto.ToEmployeeResponseList(employees))
}
