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

type PgxSettlementRepository struct {
	BaseRepository
}

// newPgxSettlementRepository creates a new repository for settlement and line data.
func newPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepository {
	return &PgxSettlementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSettlementRepository implements portsrepo.SettlementRepository
var _ portsrepo.SettlementRepository = (*PgxSettlementRepository)(nil)

// SaveSettlement saves a settlement header and all of its lines within a DB
// transaction. A failure on any line rolls back the header insert too.
func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	modelSettlement := mapping.ToModelSettlement(settlement)
	headerQuery := `
		INSERT INTO settlements (settlement_id, settlement_no, settlement_date, settlement_type, status, total_amount, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelSettlement.SettlementID,
		modelSettlement.SettlementNo,
		modelSettlement.SettlementDate,
		modelSettlement.SettlementType,
		modelSettlement.Status,
		modelSettlement.TotalAmount,
		modelSettlement.Note,
		modelSettlement.CreatedAt,
		modelSettlement.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: settlement with number %s already exists", apperrors.ErrDuplicate, modelSettlement.SettlementNo)
			}
		}
		return fmt.Errorf("failed to insert settlement %s: %w", modelSettlement.SettlementID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO settlement_lines (line_id, settlement_id, partner_id, amount, line_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range settlement.Lines {
		modelLine := mapping.ToModelSettlementLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.SettlementID,
			modelLine.PartnerID,
			modelLine.Amount,
			modelLine.LineType,
			modelLine.Description,
			modelLine.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	// Close checks for errors in each queued command
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute line batch for settlement %s: %w", modelSettlement.SettlementID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit settlement %s: %w", modelSettlement.SettlementID, err)
	}

	return nil
}

// FindSettlementByID retrieves a settlement with its lines by ID.
func (r *PgxSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	query := `
		SELECT settlement_id, settlement_no, settlement_date, settlement_type, status, total_amount, note, created_at, updated_at
		FROM settlements
		WHERE settlement_id = $1;
	`
	return r.findSettlement(ctx, query, settlementID)
}

// FindSettlementByNo retrieves a settlement with its lines by settlement number.
func (r *PgxSettlementRepository) FindSettlementByNo(ctx context.Context, settlementNo string) (*domain.Settlement, error) {
	query := `
		SELECT settlement_id, settlement_no, settlement_date, settlement_type, status, total_amount, note, created_at, updated_at
		FROM settlements
		WHERE settlement_no = $1;
	`
	return r.findSettlement(ctx, query, settlementNo)
}

func (r *PgxSettlementRepository) findSettlement(ctx context.Context, query string, arg any) (*domain.Settlement, error) {
	var modelSettlement models.Settlement

	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelSettlement.SettlementID,
		&modelSettlement.SettlementNo,
		&modelSettlement.SettlementDate,
		&modelSettlement.SettlementType,
		&modelSettlement.Status,
		&modelSettlement.TotalAmount,
		&modelSettlement.Note,
		&modelSettlement.CreatedAt,
		&modelSettlement.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settlement: %w", err)
	}

	settlement := mapping.ToDomainSettlement(modelSettlement)
	lines, err := r.findLines(ctx, settlement.SettlementID)
	if err != nil {
		return nil, err
	}
	settlement.Lines = lines
	return &settlement, nil
}

func (r *PgxSettlementRepository) findLines(ctx context.Context, settlementID string) ([]domain.SettlementLine, error) {
	query := `
		SELECT sl.line_id, sl.settlement_id, sl.partner_id, sl.amount, sl.line_type, sl.description, sl.created_at,
		       p.code, p.name
		FROM settlement_lines sl
		JOIN partners p ON p.partner_id = sl.partner_id
		WHERE sl.settlement_id = $1
		ORDER BY sl.created_at, sl.line_id;
	`

	rows, err := r.Pool.Query(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement lines for %s: %w", settlementID, err)
	}
	defer rows.Close()

	lines := []domain.SettlementLine{}
	for rows.Next() {
		var modelLine models.SettlementLine
		err := rows.Scan(
			&modelLine.LineID,
			&modelLine.SettlementID,
			&modelLine.PartnerID,
			&modelLine.Amount,
			&modelLine.LineType,
			&modelLine.Description,
			&modelLine.CreatedAt,
			&modelLine.PartnerCode,
			&modelLine.PartnerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainSettlementLine(modelLine))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating settlement line rows: %w", rows.Err())
	}

	return lines, nil
}

// ListSettlements retrieves settlements newest first, lines and partner
// summaries attached.
func (r *PgxSettlementRepository) ListSettlements(ctx context.Context) ([]domain.Settlement, error) {
	headerQuery := `
		SELECT settlement_id, settlement_no, settlement_date, settlement_type, status, total_amount, note, created_at, updated_at
		FROM settlements
		ORDER BY settlement_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, headerQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlements: %w", err)
	}
	defer rows.Close()

	settlements := []domain.Settlement{}
	index := map[string]int{}
	for rows.Next() {
		var modelSettlement models.Settlement
		err := rows.Scan(
			&modelSettlement.SettlementID,
			&modelSettlement.SettlementNo,
			&modelSettlement.SettlementDate,
			&modelSettlement.SettlementType,
			&modelSettlement.Status,
			&modelSettlement.TotalAmount,
			&modelSettlement.Note,
			&modelSettlement.CreatedAt,
			&modelSettlement.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %w", err)
		}
		index[modelSettlement.SettlementID] = len(settlements)
		settlements = append(settlements, mapping.ToDomainSettlement(modelSettlement))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating settlement rows: %w", rows.Err())
	}

	if len(settlements) == 0 {
		return settlements, nil
	}

	lineQuery := `
		SELECT sl.line_id, sl.settlement_id, sl.partner_id, sl.amount, sl.line_type, sl.description, sl.created_at,
		       p.code, p.name
		FROM settlement_lines sl
		JOIN partners p ON p.partner_id = sl.partner_id
		ORDER BY sl.created_at, sl.line_id;
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var modelLine models.SettlementLine
		err := lineRows.Scan(
			&modelLine.LineID,
			&modelLine.SettlementID,
			&modelLine.PartnerID,
			&modelLine.Amount,
			&modelLine.LineType,
			&modelLine.Description,
			&modelLine.CreatedAt,
			&modelLine.PartnerCode,
			&modelLine.PartnerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement line row: %w", err)
		}
		if i, ok := index[modelLine.SettlementID]; ok {
			settlements[i].Lines = append(settlements[i].Lines, mapping.ToDomainSettlementLine(modelLine))
		}
	}
	if lineRows.Err() != nil {
		return nil, fmt.Errorf("error iterating settlement line rows: %w", lineRows.Err())
	}

	return settlements, nil
}

// UpdateSettlement updates header fields of an existing settlement. Lines are
// untouched.
func (r *PgxSettlementRepository) UpdateSettlement(ctx context.Context, settlement domain.Settlement) error {
	modelSettlement := mapping.ToModelSettlement(settlement)

	query := `
		UPDATE settlements
		SET settlement_date = $2, settlement_type = $3, status = $4, total_amount = $5, note = $6, updated_at = $7
		WHERE settlement_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelSettlement.SettlementID,
		modelSettlement.SettlementDate,
		modelSettlement.SettlementType,
		modelSettlement.Status,
		modelSettlement.TotalAmount,
		modelSettlement.Note,
		modelSettlement.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to execute update settlement %s: %w", modelSettlement.SettlementID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("settlement " + modelSettlement.SettlementID + " not found")
	}

	return nil
}

// DeleteSettlement removes a settlement header; lines go with it via the
// ON DELETE CASCADE constraint on settlement_lines.
func (r *PgxSettlementRepository) DeleteSettlement(ctx context.Context, settlementID string) error {
	query := `
		DELETE FROM settlements
		WHERE settlement_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, settlementID)
	if err != nil {
		return fmt.Errorf("failed to execute delete settlement %s: %w", settlementID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("settlement " + settlementID + " not found")
	}

	return nil
}
