package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockClientService
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockClientService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Client: suite.mockService})
}

func (suite *ClientHandlerTestSuite) postClient(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	now := time.Now()
	expected := &domain.Client{
		ClientID:    uuid.NewString(),
		Code:        "C-001",
		Name:        "شركة البناء",
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	suite.mockService.On("CreateClient", mock.Anything, mock.MatchedBy(func(req dto.CreateClientRequest) bool {
		return req.Code == "C-001"
	})).Return(expected, nil).Once()

	w := suite.postClient(`{"code":"C-001","name":"شركة البناء"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ClientID, resp.ClientID)
	suite.mockService.AssertExpectations(suite.T())
}

// A duplicate code surfacing from the storage constraint instead of the service
// pre-check still maps to the 400 duplicate-code message.
func (suite *ClientHandlerTestSuite) TestCreateClient_ConstraintLevelDuplicateCode() {
	racedErr := fmt.Errorf("%w: client with code C-001 already exists", apperrors.ErrDuplicate)
	suite.mockService.On("CreateClient", mock.Anything, mock.Anything).Return(nil, racedErr).Once()

	w := suite.postClient(`{"code":"C-001","name":"شركة البناء"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("كود العميل موجود بالفعل", resp["error"])
}

func (suite *ClientHandlerTestSuite) TestCreateClient_ConstraintLevelDuplicateEmail() {
	racedErr := fmt.Errorf("%w: client with email a@b.com already exists", apperrors.ErrDuplicateEmail)
	suite.mockService.On("CreateClient", mock.Anything, mock.Anything).Return(nil, racedErr).Once()

	w := suite.postClient(`{"code":"C-001","name":"شركة البناء","email":"a@b.com"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("البريد الإلكتروني مستخدم بالفعل", resp["error"])
}

func (suite *ClientHandlerTestSuite) TestCreateClient_ServiceError() {
	suite.mockService.On("CreateClient", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("connection refused")).Once()

	w := suite.postClient(`{"code":"C-001","name":"شركة البناء"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("حدث خطأ في إنشاء العميل", resp["error"])
}

func (suite *ClientHandlerTestSuite) TestListClients_PassesSearchAndDisablesCaching() {
	suite.mockService.On("ListClients", mock.Anything, "ahmed").Return([]domain.Client{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/clients?search=ahmed", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Cache-Control"), "no-store")
	suite.mockService.AssertExpectations(suite.T())
}

func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
