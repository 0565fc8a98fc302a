package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the insert
// helpers can be reused inside multi-table transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		AccountID:      d.AccountID,
		AccountCode:    d.AccountCode,
		AccountName:    d.AccountName,
		AccountGroup:   d.AccountGroup,
		AccountHead:    d.AccountHead,
		AccountSubhead: d.AccountSubhead,
		Status:         string(d.Status),
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		AccountID:      m.AccountID,
		AccountCode:    m.AccountCode,
		AccountName:    m.AccountName,
		AccountGroup:   m.AccountGroup,
		AccountHead:    m.AccountHead,
		AccountSubhead: m.AccountSubhead,
		Status:         domain.Status(m.Status),
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

const accountColumns = `id, organization_id, account_id, account_code, account_name, account_group, account_head, account_subhead, status, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.OrganizationID,
		&m.AccountID,
		&m.AccountCode,
		&m.AccountName,
		&m.AccountGroup,
		&m.AccountHead,
		&m.AccountSubhead,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertAccount writes one account row through the given pool or transaction.
func insertAccount(ctx context.Context, q querier, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts (id, organization_id, account_id, account_code, account_name, account_group, account_head, account_subhead, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := q.Exec(ctx, query,
		m.ID,
		m.OrganizationID,
		m.AccountID,
		m.AccountCode,
		m.AccountName,
		m.AccountGroup,
		m.AccountHead,
		m.AccountSubhead,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account %s: %w", m.ID, err)
	}
	return nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, r.Pool, account)
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		UPDATE accounts
		SET account_name = $3, account_code = $4, account_group = $5, account_head = $6, account_subhead = $7, status = $8, last_updated_at = $9, last_updated_by = $10
		WHERE id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.OrganizationID,
		m.AccountName,
		m.AccountCode,
		m.AccountGroup,
		m.AccountHead,
		m.AccountSubhead,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by id %s: %w", id, err)
	}
	d := toDomainAccount(m)
	return &d, nil
}

func (r *PgxAccountRepository) FindAccountByPartyID(ctx context.Context, organizationID, partyID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, organizationID, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account for party %s: %w", partyID, err)
	}
	d := toDomainAccount(m)
	return &d, nil
}

func (r *PgxAccountRepository) FindAccountsByName(ctx context.Context, organizationID, name string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_name = $2 ORDER BY account_code;`
	rows, err := r.Pool.Query(ctx, query, organizationID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by name: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts by name: %w", err)
	}
	return accounts, nil
}
