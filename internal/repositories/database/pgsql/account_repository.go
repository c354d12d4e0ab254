package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aqarerp/backend/internal/apperrors"
	"github.com/aqarerp/backend/internal/core/domain"
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/aqarerp/backend/internal/models"
	"github.com/aqarerp/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, code, name, account_type, parent_id, is_active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	// Use sql.NullString for the potentially NULL parent_id
	var parentID sql.NullString
	if modelAcc.ParentID != "" {
		parentID = sql.NullString{String: modelAcc.ParentID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Code,
		modelAcc.Name,
		modelAcc.AccountType,
		parentID,
		modelAcc.IsActive,
		modelAcc.Description,
		modelAcc.CreatedAt,
		modelAcc.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, modelAcc.Code)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, parent_id, is_active, description, created_at, updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	return r.findAccount(ctx, query, accountID)
}

// FindAccountByCode retrieves an account by its unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, parent_id, is_active, description, created_at, updated_at
		FROM accounts
		WHERE code = $1;
	`
	return r.findAccount(ctx, query, code)
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var modelAcc models.Account
	var parentID sql.NullString

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&modelAcc.AccountID,
		&modelAcc.Code,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&parentID,
		&modelAcc.IsActive,
		&modelAcc.Description,
		&modelAcc.CreatedAt,
		&modelAcc.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if parentID.Valid {
		modelAcc.ParentID = parentID.String
	} else {
		modelAcc.ParentID = ""
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts ordered by code, each with its
// journal-line usage count.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, a.parent_id, a.is_active, a.description, a.created_at, a.updated_at,
		       COUNT(jl.journal_line_id) AS journal_line_count
		FROM accounts a
		LEFT JOIN journal_lines jl ON jl.account_id = a.account_id
		GROUP BY a.account_id
		ORDER BY a.code;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		var parentID sql.NullString
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Code,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&parentID,
			&modelAcc.IsActive,
			&modelAcc.Description,
			&modelAcc.CreatedAt,
			&modelAcc.UpdatedAt,
			&modelAcc.JournalLineCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}

		if parentID.Valid {
			modelAcc.ParentID = parentID.String
		} else {
			modelAcc.ParentID = ""
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}

	return accounts, nil
}
