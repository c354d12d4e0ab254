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

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{pool: pool}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepository
var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSupplier := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (supplier_id, code, name, phone, email, address, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var email sql.NullString
	if modelSupplier.Email != "" {
		email = sql.NullString{String: modelSupplier.Email, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelSupplier.SupplierID,
		modelSupplier.Code,
		modelSupplier.Name,
		modelSupplier.Phone,
		email,
		modelSupplier.Address,
		modelSupplier.Note,
		modelSupplier.CreatedAt,
		modelSupplier.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: supplier with code %s already exists", apperrors.ErrDuplicate, modelSupplier.Code)
			}
		}
		return fmt.Errorf("failed to save supplier %s: %w", modelSupplier.SupplierID, err)
	}
	return nil
}

// FindSupplierByCode retrieves a supplier by its unique code.
func (r *PgxSupplierRepository) FindSupplierByCode(ctx context.Context, code string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, code, name, phone, email, address, note, created_at, updated_at
		FROM suppliers
		WHERE code = $1;
	`
	var modelSupplier models.Supplier
	var email sql.NullString

	err := r.pool.QueryRow(ctx, query, code).Scan(
		&modelSupplier.SupplierID,
		&modelSupplier.Code,
		&modelSupplier.Name,
		&modelSupplier.Phone,
		&email,
		&modelSupplier.Address,
		&modelSupplier.Note,
		&modelSupplier.CreatedAt,
		&modelSupplier.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by code %s: %w", code, err)
	}

	if email.Valid {
		modelSupplier.Email = email.String
	}

	domainSupplier := mapping.ToDomainSupplier(modelSupplier)
	return &domainSupplier, nil
}

// ListSuppliers retrieves suppliers newest first with invoice counts. A
// non-empty search filters by name, code or phone, case-insensitive.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, search string) ([]domain.Supplier, error) {
	query := `
		SELECT s.supplier_id, s.code, s.name, s.phone, s.email, s.address, s.note, s.created_at, s.updated_at,
		       (SELECT COUNT(*) FROM invoices i WHERE i.supplier_id = s.supplier_id) AS invoice_count
		FROM suppliers s
	`
	args := []any{}
	if search != "" {
		query += `
		WHERE s.name ILIKE '%' || $1 || '%' OR s.code ILIKE '%' || $1 || '%' OR s.phone ILIKE '%' || $1 || '%'
		`
		args = append(args, escapeLike(search))
	}
	query += `
		ORDER BY s.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var modelSupplier models.Supplier
		var email sql.NullString
		err := rows.Scan(
			&modelSupplier.SupplierID,
			&modelSupplier.Code,
			&modelSupplier.Name,
			&modelSupplier.Phone,
			&email,
			&modelSupplier.Address,
			&modelSupplier.Note,
			&modelSupplier.CreatedAt,
			&modelSupplier.UpdatedAt,
			&modelSupplier.InvoiceCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}

		if email.Valid {
			modelSupplier.Email = email.String
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(modelSupplier))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}

	return suppliers, nil
}
