package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts node.
type CreateAccountRequest struct {
	Code        string             `json:"code" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"type" binding:"required,oneof=asset liability equity revenue expense"`
	ParentID    *string            `json:"parentId"` // Optional, use pointer for nullability
	IsActive    *bool              `json:"isActive"` // Optional, defaults to true
	Description string             `json:"description"`
}

// AccountSummary is a shallow reference to a related account (parent or child).
type AccountSummary struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"type"`
}

// AccountResponse defines the data returned for an account, including its
// parent, children and usage count.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	Code             string             `json:"code"`
	Name             string             `json:"name"`
	AccountType      domain.AccountType `json:"type"`
	ParentID         string             `json:"parentID,omitempty"`
	IsActive         bool               `json:"isActive"`
	Description      string             `json:"description"`
	Parent           *AccountSummary    `json:"parent"`
	Children         []AccountSummary   `json:"children"`
	JournalLineCount int                `json:"journalLineCount"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// ToAccountSummary converts a domain.Account to its shallow reference form.
func ToAccountSummary(acc *domain.Account) AccountSummary {
	return AccountSummary{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
	}
}

// ToAccountResponse converts a domain.Account plus its resolved relations to a response DTO.
func ToAccountResponse(acc *domain.Account, parent *domain.Account, children []domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:        acc.AccountID,
		Code:             acc.Code,
		Name:             acc.Name,
		AccountType:      acc.AccountType,
		ParentID:         acc.ParentID,
		IsActive:         acc.IsActive,
		Description:      acc.Description,
		Children:         []AccountSummary{},
		JournalLineCount: acc.JournalLineCount,
		CreatedAt:        acc.CreatedAt,
		UpdatedAt:        acc.UpdatedAt,
	}
	if parent != nil {
		p := ToAccountSummary(parent)
		resp.Parent = &p
	}
	for i := range children {
		resp.Children = append(resp.Children, ToAccountSummary(&children[i]))
	}
	return resp
}
