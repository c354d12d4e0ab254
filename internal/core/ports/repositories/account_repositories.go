package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// AccountRepository defines persistence operations for chart-of-accounts nodes.
// Find methods return apperrors.ErrNotFound when no row matches.
type AccountRepository interface {
	// SaveAccount inserts a new account. A storage-level unique violation on the
	// code column surfaces as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// ListAccounts returns all accounts ordered by code, each carrying its
	// journal-line usage count.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
