package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	args := m.Called(ctx, settlementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) FindSettlementByNo(ctx context.Context, settlementNo string) (*domain.Settlement, error) {
	args := m.Called(ctx, settlementNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) UpdateSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) DeleteSettlement(ctx context.Context, settlementID string) error {
	args := m.Called(ctx, settlementID)
	return args.Error(0)
}

// --- Test Suite ---
type SettlementServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockSettlementRepository
	mockAuditRepo *MockAuditLogRepository
	service       *services.SettlementService
	ctx           context.Context
	partnerID     string
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettlementRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewSettlementService(suite.mockRepo, services.NewAuditService(suite.mockAuditRepo), false)
	suite.ctx = context.Background()
	suite.partnerID = uuid.NewString()
}

func (suite *SettlementServiceTestSuite) validRequest() dto.CreateSettlementRequest {
	return dto.CreateSettlementRequest{
		SettlementNo:   "ST-001",
		Date:           "2025-06-15",
		SettlementType: "partner",
		Lines: []dto.CreateSettlementLineRequest{
			{PartnerID: suite.partnerID, Amount: decimal.NewFromInt(500), LineType: "credit"},
			{PartnerID: suite.partnerID, Amount: decimal.NewFromInt(250), LineType: "debit"},
		},
	}
}

func (suite *SettlementServiceTestSuite) TestCreateSettlement_Success() {
	req := suite.validRequest()

	suite.mockRepo.On("FindSettlementByNo", suite.ctx, "ST-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettlement", suite.ctx, mock.AnythingOfType("domain.Settlement")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	settlement, err := suite.service.CreateSettlement(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), settlement)
	assert.Equal(suite.T(), "draft", settlement.Status)
	assert.True(suite.T(), settlement.TotalAmount.IsZero())
	assert.Len(suite.T(), settlement.Lines, 2)
	for _, line := range settlement.Lines {
		assert.NotEmpty(suite.T(), line.LineID)
		assert.Equal(suite.T(), settlement.SettlementID, line.SettlementID)
	}
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

// A settlement without lines fails the required-field precondition before the
// duplicate number check runs.
func (suite *SettlementServiceTestSuite) TestCreateSettlement_EmptyLinesRejectedBeforeDuplicateCheck() {
	req := suite.validRequest()
	req.Lines = nil

	settlement, err := suite.service.CreateSettlement(suite.ctx, req)

	assert.Nil(suite.T(), settlement)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingFields)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSettlementByNo", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestCreateSettlement_DuplicateNumber() {
	req := suite.validRequest()
	existing := &domain.Settlement{SettlementID: uuid.NewString(), SettlementNo: "ST-001"}

	suite.mockRepo.On("FindSettlementByNo", suite.ctx, "ST-001").Return(existing, nil).Once()

	settlement, err := suite.service.CreateSettlement(suite.ctx, req)

	assert.Nil(suite.T(), settlement)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestCreateSettlement_TotalMismatchRejectedWhenEnforced() {
	strict := services.NewSettlementService(suite.mockRepo, services.NewAuditService(suite.mockAuditRepo), true)
	req := suite.validRequest()
	total := decimal.NewFromInt(999)
	req.TotalAmount = &total

	suite.mockRepo.On("FindSettlementByNo", suite.ctx, "ST-001").Return(nil, apperrors.ErrNotFound).Once()

	settlement, err := strict.CreateSettlement(suite.ctx, req)

	assert.Nil(suite.T(), settlement)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestCreateSettlement_TotalMismatchAllowedByDefault() {
	req := suite.validRequest()
	total := decimal.NewFromInt(999)
	req.TotalAmount = &total

	suite.mockRepo.On("FindSettlementByNo", suite.ctx, "ST-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettlement", suite.ctx, mock.AnythingOfType("domain.Settlement")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	settlement, err := suite.service.CreateSettlement(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), settlement.TotalAmount.Equal(total))
}

func (suite *SettlementServiceTestSuite) TestUpdateSettlement_PartialUpdate() {
	settlementID := uuid.NewString()
	existing := &domain.Settlement{
		SettlementID:   settlementID,
		SettlementNo:   "ST-001",
		Date:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		SettlementType: "partner",
		Status:         "draft",
		TotalAmount:    decimal.NewFromInt(750),
		Note:           "original note",
	}
	newStatus := "approved"
	req := dto.UpdateSettlementRequest{Status: &newStatus}

	suite.mockRepo.On("FindSettlementByID", suite.ctx, settlementID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateSettlement", suite.ctx, mock.MatchedBy(func(s domain.Settlement) bool {
		return s.Status == "approved" && s.Note == "original note" && s.TotalAmount.Equal(decimal.NewFromInt(750))
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	updated, err := suite.service.UpdateSettlement(suite.ctx, settlementID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "approved", updated.Status)
	assert.Equal(suite.T(), "original note", updated.Note)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestUpdateSettlement_NotFound() {
	settlementID := uuid.NewString()
	req := dto.UpdateSettlementRequest{}

	suite.mockRepo.On("FindSettlementByID", suite.ctx, settlementID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateSettlement(suite.ctx, settlementID, req)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSettlement", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestDeleteSettlement_Success() {
	settlementID := uuid.NewString()
	existing := &domain.Settlement{SettlementID: settlementID, SettlementNo: "ST-001"}

	suite.mockRepo.On("FindSettlementByID", suite.ctx, settlementID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteSettlement", suite.ctx, settlementID).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", suite.ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	err := suite.service.DeleteSettlement(suite.ctx, settlementID)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestDeleteSettlement_NotFound() {
	settlementID := uuid.NewString()

	suite.mockRepo.On("FindSettlementByID", suite.ctx, settlementID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSettlement(suite.ctx, settlementID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteSettlement", mock.Anything, mock.Anything)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditLog", mock.Anything, mock.Anything)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
