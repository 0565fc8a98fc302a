package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

type PgxTrialBalanceRepository struct {
	BaseRepository
}

func newPgxTrialBalanceRepository(pool *pgxpool.Pool) portsrepo.TrialBalanceRepositoryFacade {
	return &PgxTrialBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TrialBalanceRepositoryFacade = (*PgxTrialBalanceRepository)(nil)

func toModelTrialBalance(d domain.TrialBalance) models.TrialBalance {
	return models.TrialBalance{
		TrialBalanceID: d.TrialBalanceID,
		OrganizationID: d.OrganizationID,
		OperationID:    d.OperationID,
		AccountID:      d.AccountID,
		DebitAmount:    d.DebitAmount,
		CreditAmount:   d.CreditAmount,
		Date:           d.Date,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

func toDomainTrialBalance(m models.TrialBalance) domain.TrialBalance {
	return domain.TrialBalance{
		TrialBalanceID: m.TrialBalanceID,
		OrganizationID: m.OrganizationID,
		OperationID:    m.OperationID,
		AccountID:      m.AccountID,
		DebitAmount:    m.DebitAmount,
		CreditAmount:   m.CreditAmount,
		Date:           m.Date,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

const trialBalanceColumns = `trial_balance_id, organization_id, operation_id, account_id, debit_amount, credit_amount, date, created_at, created_by, last_updated_at, last_updated_by`

func scanTrialBalance(row pgx.Row) (models.TrialBalance, error) {
	var m models.TrialBalance
	err := row.Scan(
		&m.TrialBalanceID,
		&m.OrganizationID,
		&m.OperationID,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertTrialBalance(ctx context.Context, q querier, tb domain.TrialBalance) error {
	m := toModelTrialBalance(tb)
	query := `
		INSERT INTO trial_balances (trial_balance_id, organization_id, operation_id, account_id, debit_amount, credit_amount, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := q.Exec(ctx, query,
		m.TrialBalanceID,
		m.OrganizationID,
		m.OperationID,
		m.AccountID,
		m.DebitAmount,
		m.CreditAmount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trial balance %s: %w", m.TrialBalanceID, err)
	}
	return nil
}

func (r *PgxTrialBalanceRepository) SaveTrialBalance(ctx context.Context, tb domain.TrialBalance) error {
	return insertTrialBalance(ctx, r.Pool, tb)
}

func (r *PgxTrialBalanceRepository) UpdateTrialBalance(ctx context.Context, tb domain.TrialBalance) error {
	m := toModelTrialBalance(tb)
	query := `
		UPDATE trial_balances
		SET debit_amount = $3, credit_amount = $4, date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE trial_balance_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TrialBalanceID,
		m.OrganizationID,
		m.DebitAmount,
		m.CreditAmount,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trial balance %s: %w", m.TrialBalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTrialBalanceRepository) FindTrialBalanceByOperationID(ctx context.Context, organizationID, operationID string) (*domain.TrialBalance, error) {
	query := `SELECT ` + trialBalanceColumns + ` FROM trial_balances WHERE organization_id = $1 AND operation_id = $2 ORDER BY created_at LIMIT 1;`
	m, err := scanTrialBalance(r.Pool.QueryRow(ctx, query, organizationID, operationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trial balance for operation %s: %w", operationID, err)
	}
	d := toDomainTrialBalance(m)
	return &d, nil
}

func (r *PgxTrialBalanceRepository) ListTrialBalancesByOperationID(ctx context.Context, organizationID, operationID string) ([]domain.TrialBalance, error) {
	query := `SELECT ` + trialBalanceColumns + ` FROM trial_balances WHERE organization_id = $1 AND operation_id = $2 ORDER BY date, created_at;`
	rows, err := r.Pool.Query(ctx, query, organizationID, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balances: %w", err)
	}
	defer rows.Close()

	list := []domain.TrialBalance{}
	for rows.Next() {
		m, err := scanTrialBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trial balance: %w", err)
		}
		list = append(list, toDomainTrialBalance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trial balances: %w", err)
	}
	return list, nil
}
