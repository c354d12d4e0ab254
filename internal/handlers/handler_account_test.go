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
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockAccountService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Account: suite.mockService})
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	now := time.Now()
	expected := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1100",
		Name:        "النقدية",
		AccountType: domain.Asset,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	suite.mockService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Code == "1100" && req.AccountType == domain.Asset
	})).Return(expected, nil).Once()

	body := `{"code":"1100","name":"النقدية","type":"asset"}`
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.AccountID, resp.AccountID)
	suite.Nil(resp.Parent)
	suite.Empty(resp.Children)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidType() {
	body := `{"code":"1100","name":"النقدية","type":"bogus"}`
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("بيانات غير صحيحة", resp["error"])
	suite.NotEmpty(resp["details"])
	suite.mockService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	suite.mockService.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body := `{"code":"1100","name":"النقدية","type":"asset"}`
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("رقم الحساب موجود بالفعل", resp["error"])
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ParentNotFound() {
	suite.mockService.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	parentID := uuid.NewString()
	body := `{"code":"1110","name":"الصندوق","type":"asset","parentId":"` + parentID + `"}`
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("الحساب الرئيسي غير موجود", resp["error"])
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ParentTypeMismatch() {
	suite.mockService.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrTypeMismatch).Once()

	parentID := uuid.NewString()
	body := `{"code":"2100","name":"الدائنون","type":"liability","parentId":"` + parentID + `"}`
	req, _ := http.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("نوع الحساب يجب أن يكون متطابق مع نوع الحساب الرئيسي", resp["error"])
}

// A flat list from the service is returned as a tree view: each node carries
// its resolved parent summary and child summaries.
func (suite *AccountHandlerTestSuite) TestListAccounts_ResolvesParentAndChildren() {
	now := time.Now()
	parentID := uuid.NewString()
	childID := uuid.NewString()
	accounts := []domain.Account{
		{
			AccountID:   parentID,
			Code:        "1000",
			Name:        "الأصول",
			AccountType: domain.Asset,
			IsActive:    true,
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		},
		{
			AccountID:   childID,
			Code:        "1100",
			Name:        "النقدية",
			AccountType: domain.Asset,
			ParentID:    parentID,
			IsActive:    true,
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		},
	}

	suite.mockService.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/accounts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)

	suite.Nil(resp[0].Parent)
	suite.Len(resp[0].Children, 1)
	suite.Equal(childID, resp[0].Children[0].AccountID)

	suite.NotNil(resp[1].Parent)
	suite.Equal(parentID, resp[1].Parent.AccountID)
	suite.Empty(resp[1].Children)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_ServiceError() {
	suite.mockService.On("ListAccounts", mock.Anything).Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodGet, "/accounts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("حدث خطأ في جلب الحسابات", resp["error"])
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
