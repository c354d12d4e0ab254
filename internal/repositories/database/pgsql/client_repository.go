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

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (client_id, code, name, phone, email, address, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	// Empty email is stored as NULL so absence is not a value.
	var email sql.NullString
	if modelClient.Email != "" {
		email = sql.NullString{String: modelClient.Email, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Code,
		modelClient.Name,
		modelClient.Phone,
		email,
		modelClient.Address,
		modelClient.Note,
		modelClient.CreatedAt,
		modelClient.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				if pgErr.ConstraintName == "clients_email_key" {
					return fmt.Errorf("%w: client with email %s already exists", apperrors.ErrDuplicateEmail, modelClient.Email)
				}
				return fmt.Errorf("%w: client with code %s already exists", apperrors.ErrDuplicate, modelClient.Code)
			}
		}
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}
	return nil
}

// FindClientByCode retrieves a client by its unique code.
func (r *PgxClientRepository) FindClientByCode(ctx context.Context, code string) (*domain.Client, error) {
	query := `
		SELECT client_id, code, name, phone, email, address, note, created_at, updated_at
		FROM clients
		WHERE code = $1;
	`
	return r.findClient(ctx, query, code)
}

// FindClientByEmail retrieves a client by exact email match.
func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `
		SELECT client_id, code, name, phone, email, address, note, created_at, updated_at
		FROM clients
		WHERE email = $1;
	`
	return r.findClient(ctx, query, email)
}

func (r *PgxClientRepository) findClient(ctx context.Context, query string, arg any) (*domain.Client, error) {
	var modelClient models.Client
	var email sql.NullString

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&modelClient.ClientID,
		&modelClient.Code,
		&modelClient.Name,
		&modelClient.Phone,
		&email,
		&modelClient.Address,
		&modelClient.Note,
		&modelClient.CreatedAt,
		&modelClient.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if email.Valid {
		modelClient.Email = email.String
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// ListClients retrieves clients newest first with usage counts. A non-empty
// search filters by name, code or phone, case-insensitive.
func (r *PgxClientRepository) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	query := `
		SELECT c.client_id, c.code, c.name, c.phone, c.email, c.address, c.note, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM contracts ct WHERE ct.client_id = c.client_id) AS contract_count,
		       (SELECT COUNT(*) FROM projects p WHERE p.client_id = c.client_id) AS project_count,
		       (SELECT COUNT(*) FROM installments i WHERE i.client_id = c.client_id) AS installment_count
		FROM clients c
	`
	args := []any{}
	if search != "" {
		query += `
		WHERE c.name ILIKE '%' || $1 || '%' OR c.code ILIKE '%' || $1 || '%' OR c.phone ILIKE '%' || $1 || '%'
		`
		args = append(args, escapeLike(search))
	}
	query += `
		ORDER BY c.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var modelClient models.Client
		var email sql.NullString
		err := rows.Scan(
			&modelClient.ClientID,
			&modelClient.Code,
			&modelClient.Name,
			&modelClient.Phone,
			&email,
			&modelClient.Address,
			&modelClient.Note,
			&modelClient.CreatedAt,
			&modelClient.UpdatedAt,
			&modelClient.ContractCount,
			&modelClient.ProjectCount,
			&modelClient.InstallmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}

		if email.Valid {
			modelClient.Email = email.String
		}
		clients = append(clients, mapping.ToDomainClient(modelClient))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return clients, nil
}
