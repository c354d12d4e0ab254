package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/core/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByCode(ctx context.Context, code string) (*domain.Client, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockClientRepository
	mockAuditRepo *MockAuditLogRepository
	service       *services.ClientService
	ctx           context.Context
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewClientService(suite.mockRepo, services.NewAuditService(suite.mockAuditRepo))
	suite.ctx = context.Background()
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	req := dto.CreateClientRequest{
		Code:  "C-001",
		Name:  "Al Amal Ltd",
		Email: "info@alamal.example",
	}

	suite.mockRepo.On("FindClientByCode", suite.ctx, "C-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindClientByEmail", suite.ctx, "info@alamal.example").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), client)
	assert.Equal(suite.T(), "C-001", client.Code)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

// An empty email skips the email uniqueness check entirely.
func (suite *ClientServiceTestSuite) TestCreateClient_EmptyEmailSkipsEmailCheck() {
	req := dto.CreateClientRequest{Code: "C-002", Name: "Cash Client"}

	suite.mockRepo.On("FindClientByCode", suite.ctx, "C-002").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), client)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateEmail() {
	req := dto.CreateClientRequest{
		Code:  "C-003",
		Name:  "New Client",
		Email: "taken@example.com",
	}
	other := &domain.Client{ClientID: uuid.NewString(), Code: "C-999", Email: "taken@example.com"}

	suite.mockRepo.On("FindClientByCode", suite.ctx, "C-003").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindClientByEmail", suite.ctx, "taken@example.com").Return(other, nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	assert.Nil(suite.T(), client)
	assert.ErrorIs(suite.T(), err, services.ErrClientEmailTaken)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateEmail)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

// A duplicate slipping past the pre-checks and surfacing from the storage
// constraint keeps its duplicate identity through the service.
func (suite *ClientServiceTestSuite) TestCreateClient_ConstraintViolationStaysDuplicate() {
	req := dto.CreateClientRequest{
		Code:  "C-004",
		Name:  "New Client",
		Email: "raced@example.com",
	}

	suite.mockRepo.On("FindClientByCode", suite.ctx, "C-004").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindClientByEmail", suite.ctx, "raced@example.com").Return(nil, apperrors.ErrNotFound).Once()
	racedErr := fmt.Errorf("%w: client with email raced@example.com already exists", apperrors.ErrDuplicateEmail)
	suite.mockRepo.On("SaveClient", suite.ctx, mock.AnythingOfType("domain.Client")).Return(racedErr).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	assert.Nil(suite.T(), client)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateEmail)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditLog", mock.Anything, mock.Anything)
}

// When both the code and the email are taken, the code violation wins and the
// email is never checked.
func (suite *ClientServiceTestSuite) TestCreateClient_CodeCheckedBeforeEmail() {
	req := dto.CreateClientRequest{
		Code:  "C-001",
		Name:  "New Client",
		Email: "taken@example.com",
	}
	existing := &domain.Client{ClientID: uuid.NewString(), Code: "C-001"}

	suite.mockRepo.On("FindClientByCode", suite.ctx, "C-001").Return(existing, nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, req)

	assert.Nil(suite.T(), client)
	assert.ErrorIs(suite.T(), err, services.ErrClientCodeTaken)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestListClients_PassesSearch() {
	expected := []domain.Client{{ClientID: uuid.NewString(), Code: "C-001", Name: "Al Amal Ltd"}}
	suite.mockRepo.On("ListClients", suite.ctx, "amal").Return(expected, nil).Once()

	clients, err := suite.service.ListClients(suite.ctx, "amal")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, clients)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
