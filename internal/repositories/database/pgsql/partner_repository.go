package pgsql

import (
	"context"
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

type PgxPartnerRepository struct {
	pool *pgxpool.Pool
}

// newPgxPartnerRepository creates a new repository for settlement partner data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepository {
	return &PgxPartnerRepository{pool: pool}
}

// Ensure PgxPartnerRepository implements portsrepo.PartnerRepository
var _ portsrepo.PartnerRepository = (*PgxPartnerRepository)(nil)

// SavePartner inserts a new partner.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	modelPartner := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO partners (partner_id, code, name, phone, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.pool.Exec(ctx, query,
		modelPartner.PartnerID,
		modelPartner.Code,
		modelPartner.Name,
		modelPartner.Phone,
		modelPartner.Note,
		modelPartner.CreatedAt,
		modelPartner.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: partner with code %s already exists", apperrors.ErrDuplicate, modelPartner.Code)
			}
		}
		return fmt.Errorf("failed to save partner %s: %w", modelPartner.PartnerID, err)
	}
	return nil
}

// FindPartnerByCode retrieves a partner by its unique code.
func (r *PgxPartnerRepository) FindPartnerByCode(ctx context.Context, code string) (*domain.Partner, error) {
	query := `
		SELECT partner_id, code, name, phone, note, created_at, updated_at
		FROM partners
		WHERE code = $1;
	`
	var modelPartner models.Partner

	err := r.pool.QueryRow(ctx, query, code).Scan(
		&modelPartner.PartnerID,
		&modelPartner.Code,
		&modelPartner.Name,
		&modelPartner.Phone,
		&modelPartner.Note,
		&modelPartner.CreatedAt,
		&modelPartner.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner by code %s: %w", code, err)
	}

	domainPartner := mapping.ToDomainPartner(modelPartner)
	return &domainPartner, nil
}

// ListPartners retrieves all partners ordered by name.
func (r *PgxPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT partner_id, code, name, phone, note, created_at, updated_at
		FROM partners
		ORDER BY name;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	partners := []domain.Partner{}
	for rows.Next() {
		var modelPartner models.Partner
		err := rows.Scan(
			&modelPartner.PartnerID,
			&modelPartner.Code,
			&modelPartner.Name,
			&modelPartner.Phone,
			&modelPartner.Note,
			&modelPartner.CreatedAt,
			&modelPartner.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		partners = append(partners, mapping.ToDomainPartner(modelPartner))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", rows.Err())
	}

	return partners, nil
}
