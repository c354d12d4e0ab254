package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to chart-of-accounts nodes.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(r *gin.Engine, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := r.Group("/accounts")
	{
		accounts.GET("", middleware.NoCache(), h.listAccounts)
		accounts.POST("", h.createAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a chart-of-accounts node, optionally under a parent of the same type
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Validation error, duplicate code, unknown parent or parent type mismatch"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorBody("بيانات غير صحيحة", err))
		return
	}

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate account code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": "رقم الحساب موجود بالفعل"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Parent account not found", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "الحساب الرئيسي غير موجود"})
		case errors.Is(err, apperrors.ErrTypeMismatch):
			logger.Warn("Account type does not match parent", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "نوع الحساب يجب أن يكون متطابق مع نوع الحساب الرئيسي"})
		default:
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء الحساب"})
		}
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount, nil, nil))
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves all accounts ordered by code, each with parent, children and journal-line usage count
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الحسابات"})
		return
	}

	// Resolve parent and children references from the flat list.
	byID := make(map[string]*domain.Account, len(accounts))
	childrenOf := make(map[string][]domain.Account)
	for i := range accounts {
		byID[accounts[i].AccountID] = &accounts[i]
	}
	for i := range accounts {
		if accounts[i].ParentID != "" {
			childrenOf[accounts[i].ParentID] = append(childrenOf[accounts[i].ParentID], accounts[i])
		}
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		var parent *domain.Account
		if accounts[i].ParentID != "" {
			parent = byID[accounts[i].ParentID]
		}
		responses[i] = dto.ToAccountResponse(&accounts[i], parent, childrenOf[accounts[i].AccountID])
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}
