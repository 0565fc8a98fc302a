package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

// historyTable picks the audit table for a party kind. Customer and supplier
// trails live in separate tables.
func historyTable(kind domain.PartyKind) string {
	if kind == domain.PartySupplier {
		return "supplier_history"
	}
	return "customer_history"
}

func toModelHistory(d domain.History) models.History {
	return models.History{
		HistoryID:        d.HistoryID,
		OrganizationID:   d.OrganizationID,
		PartyID:          d.PartyID,
		PartyDisplayName: d.PartyDisplayName,
		OperationID:      d.OperationID,
		Title:            d.Title,
		Description:      d.Description,
		ActingUserID:     d.ActingUserID,
		ActingUserName:   d.ActingUserName,
		AuditFields:      toModelAudit(d.AuditFields),
	}
}

func toDomainHistory(m models.History, kind domain.PartyKind) domain.History {
	return domain.History{
		HistoryID:        m.HistoryID,
		OrganizationID:   m.OrganizationID,
		PartyKind:        kind,
		PartyID:          m.PartyID,
		PartyDisplayName: m.PartyDisplayName,
		OperationID:      m.OperationID,
		Title:            m.Title,
		Description:      m.Description,
		ActingUserID:     m.ActingUserID,
		ActingUserName:   m.ActingUserName,
		AuditFields:      toDomainAudit(m.AuditFields),
	}
}

const historyColumns = `history_id, organization_id, party_id, party_display_name, operation_id, title, description, acting_user_id, acting_user_name, created_at, created_by, last_updated_at, last_updated_by`

func insertHistory(ctx context.Context, q querier, entry domain.History) error {
	m := toModelHistory(entry)
	query := fmt.Sprintf(`
		INSERT INTO %s (history_id, organization_id, party_id, party_display_name, operation_id, title, description, acting_user_id, acting_user_name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`, historyTable(entry.PartyKind))
	_, err := q.Exec(ctx, query,
		m.HistoryID,
		m.OrganizationID,
		m.PartyID,
		m.PartyDisplayName,
		m.OperationID,
		m.Title,
		m.Description,
		m.ActingUserID,
		m.ActingUserName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history %s: %w", m.HistoryID, err)
	}
	return nil
}

func (r *PgxHistoryRepository) SaveHistory(ctx context.Context, entry domain.History) error {
	return insertHistory(ctx, r.Pool, entry)
}

func (r *PgxHistoryRepository) ListHistoryByParty(ctx context.Context, kind domain.PartyKind, organizationID, partyID string) ([]domain.History, error) {
	query := fmt.Sprintf(`SELECT `+historyColumns+` FROM %s WHERE organization_id = $1 AND party_id = $2 ORDER BY created_at DESC;`, historyTable(kind))
	rows, err := r.Pool.Query(ctx, query, organizationID, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.History{}
	for rows.Next() {
		var m models.History
		err := rows.Scan(
			&m.HistoryID,
			&m.OrganizationID,
			&m.PartyID,
			&m.PartyDisplayName,
			&m.OperationID,
			&m.Title,
			&m.Description,
			&m.ActingUserID,
			&m.ActingUserName,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		entries = append(entries, toDomainHistory(m, kind))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}
