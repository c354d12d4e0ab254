package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/handlers"
	"github.com/aqarerp/backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) CreateSettlement(ctx context.Context, req dto.CreateSettlementRequest) (*domain.Settlement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementService) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

func (m *MockSettlementService) UpdateSettlement(ctx context.Context, settlementID string, req dto.UpdateSettlementRequest) (*domain.Settlement, error) {
	args := m.Called(ctx, settlementID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementService) DeleteSettlement(ctx context.Context, settlementID string) error {
	args := m.Called(ctx, settlementID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

// stubPinger satisfies the health handler's database dependency.
type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

// newTestRouter builds a router with the full route table, wiring the given
// container of mock facades and a healthy database stub.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidations()
	r := gin.New()
	cfg := &config.Config{Environment: "test", IsProduction: true}
	handlers.RegisterRoutes(r, cfg, services, stubPinger{})
	return r
}

// --- Test Suite ---
type SettlementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSettlementService
}

func (suite *SettlementHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockSettlementService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Settlement: suite.mockService})
}

func (suite *SettlementHandlerTestSuite) sampleSettlement() *domain.Settlement {
	now := time.Now()
	settlementID := uuid.NewString()
	return &domain.Settlement{
		SettlementID:   settlementID,
		SettlementNo:   "ST-001",
		Date:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		SettlementType: "partner",
		Status:         "draft",
		TotalAmount:    decimal.NewFromInt(750),
		Lines: []domain.SettlementLine{
			{
				LineID:       uuid.NewString(),
				SettlementID: settlementID,
				PartnerID:    uuid.NewString(),
				Amount:       decimal.NewFromInt(750),
				LineType:     "credit",
				CreatedAt:    now,
			},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

func (suite *SettlementHandlerTestSuite) TestCreateSettlement_Success() {
	expected := suite.sampleSettlement()

	suite.mockService.On("CreateSettlement", mock.Anything, mock.MatchedBy(func(req dto.CreateSettlementRequest) bool {
		return req.SettlementNo == "ST-001" && len(req.Lines) == 1
	})).Return(expected, nil).Once()

	body := `{"settlementNo":"ST-001","date":"2025-06-15","type":"partner","lines":[{"partnerId":"` +
		expected.Lines[0].PartnerID + `","amount":750,"type":"credit"}]}`
	req, _ := http.NewRequest(http.MethodPost, "/settlements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettlementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SettlementID, resp.SettlementID)
	suite.Len(resp.Lines, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SettlementHandlerTestSuite) TestCreateSettlement_MissingFields() {
	suite.mockService.On("CreateSettlement", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrMissingFields).Once()

	body := `{"settlementNo":"ST-001"}`
	req, _ := http.NewRequest(http.MethodPost, "/settlements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("جميع الحقول المطلوبة يجب ملؤها", resp["error"])
}

func (suite *SettlementHandlerTestSuite) TestCreateSettlement_DuplicateNumber() {
	suite.mockService.On("CreateSettlement", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body := `{"settlementNo":"ST-001","date":"2025-06-15","type":"partner","lines":[{"partnerId":"p1","amount":10,"type":"credit"}]}`
	req, _ := http.NewRequest(http.MethodPost, "/settlements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("رقم المخالصة موجود مسبقاً", resp["error"])
}

func (suite *SettlementHandlerTestSuite) TestUpdateSettlement_MissingID() {
	req, _ := http.NewRequest(http.MethodPut, "/settlements", bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("معرف المخالصة مطلوب", resp["error"])
	suite.mockService.AssertNotCalled(suite.T(), "UpdateSettlement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementHandlerTestSuite) TestUpdateSettlement_NotFound() {
	settlementID := uuid.NewString()
	suite.mockService.On("UpdateSettlement", mock.Anything, settlementID, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPut, "/settlements?id="+settlementID, bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("المخالصة غير موجودة", resp["error"])
}

func (suite *SettlementHandlerTestSuite) TestUpdateSettlement_Success() {
	expected := suite.sampleSettlement()
	expected.Status = "approved"

	suite.mockService.On("UpdateSettlement", mock.Anything, expected.SettlementID, mock.MatchedBy(func(req dto.UpdateSettlementRequest) bool {
		return req.Status != nil && *req.Status == "approved" && req.Date == nil
	})).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/settlements?id="+expected.SettlementID, bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettlementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("approved", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SettlementHandlerTestSuite) TestDeleteSettlement_Success() {
	settlementID := uuid.NewString()
	suite.mockService.On("DeleteSettlement", mock.Anything, settlementID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/settlements?id="+settlementID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SettlementHandlerTestSuite) TestDeleteSettlement_MissingID() {
	req, _ := http.NewRequest(http.MethodDelete, "/settlements", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteSettlement", mock.Anything, mock.Anything)
}

func (suite *SettlementHandlerTestSuite) TestListSettlements_Success() {
	expected := suite.sampleSettlement()
	suite.mockService.On("ListSettlements", mock.Anything).Return([]domain.Settlement{*expected}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/settlements", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Cache-Control"), "no-store")
	var resp []dto.SettlementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(expected.SettlementNo, resp[0].SettlementNo)
}

func TestSettlementHandler(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}
