package services_test

import (
	"context"
	"testing"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/core/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockEmployeeRepository
	mockAuditRepo *MockAuditLogRepository
	service       *services.EmployeeService
	ctx           context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo, services.NewAuditService(suite.mockAuditRepo))
	suite.ctx = context.Background()
}

func (suite *EmployeeServiceTestSuite) validRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Code:     "EMP-001",
		Name:     "أحمد محمد",
		Salary:   decimal.NewFromInt(5000),
		HireDate: "2024-01-01",
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	req := suite.validRequest()

	suite.mockRepo.On("FindEmployeeByCode", suite.ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveEmployee", suite.ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), employee)
	assert.NotEmpty(suite.T(), employee.EmployeeID)
	assert.True(suite.T(), employee.IsActive)
	assert.Equal(suite.T(), 2024, employee.HireDate.Year())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateCode() {
	req := suite.validRequest()
	existing := &domain.Employee{EmployeeID: uuid.NewString(), Code: "EMP-001"}

	suite.mockRepo.On("FindEmployeeByCode", suite.ctx, "EMP-001").Return(existing, nil).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	assert.Nil(suite.T(), employee)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InvalidHireDate() {
	req := suite.validRequest()
	req.HireDate = "01/13/2024"

	suite.mockRepo.On("FindEmployeeByCode", suite.ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	assert.Nil(suite.T(), employee)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ExplicitInactive() {
	req := suite.validRequest()
	inactive := false
	req.IsActive = &inactive

	suite.mockRepo.On("FindEmployeeByCode", suite.ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveEmployee", suite.ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return !e.IsActive
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), employee.IsActive)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
