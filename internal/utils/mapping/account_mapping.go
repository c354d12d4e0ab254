package mapping

import (
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		ParentID:    d.ParentID,
		IsActive:    d.IsActive,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		Code:             m.Code,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		ParentID:         m.ParentID,
		IsActive:         m.IsActive,
		Description:      m.Description,
		JournalLineCount: m.JournalLineCount,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
