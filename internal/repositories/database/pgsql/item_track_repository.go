package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

type PgxItemTrackRepository struct {
	BaseRepository
}

func newPgxItemTrackRepository(pool *pgxpool.Pool) portsrepo.ItemTrackRepositoryFacade {
	return &PgxItemTrackRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemTrackRepositoryFacade = (*PgxItemTrackRepository)(nil)

func toModelItemTrack(d domain.ItemTrack) models.ItemTrack {
	return models.ItemTrack{
		ItemTrackID:    d.ItemTrackID,
		OrganizationID: d.OrganizationID,
		ItemID:         d.ItemID,
		Action:         d.Action,
		DebitQuantity:  d.DebitQuantity,
		CreditQuantity: d.CreditQuantity,
		SellingPrice:   d.SellingPrice,
		CostPrice:      d.CostPrice,
		Date:           d.Date,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

func toDomainItemTrack(m models.ItemTrack) domain.ItemTrack {
	return domain.ItemTrack{
		ItemTrackID:    m.ItemTrackID,
		OrganizationID: m.OrganizationID,
		ItemID:         m.ItemID,
		Action:         m.Action,
		DebitQuantity:  m.DebitQuantity,
		CreditQuantity: m.CreditQuantity,
		SellingPrice:   m.SellingPrice,
		CostPrice:      m.CostPrice,
		Date:           m.Date,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

const itemTrackColumns = `item_track_id, organization_id, item_id, action, debit_quantity, credit_quantity, selling_price, cost_price, date, created_at, created_by, last_updated_at, last_updated_by`

func scanItemTrack(row pgx.Row) (models.ItemTrack, error) {
	var m models.ItemTrack
	err := row.Scan(
		&m.ItemTrackID,
		&m.OrganizationID,
		&m.ItemID,
		&m.Action,
		&m.DebitQuantity,
		&m.CreditQuantity,
		&m.SellingPrice,
		&m.CostPrice,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertItemTrack(ctx context.Context, q querier, track domain.ItemTrack) error {
	m := toModelItemTrack(track)
	query := `
		INSERT INTO item_tracks (item_track_id, organization_id, item_id, action, debit_quantity, credit_quantity, selling_price, cost_price, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := q.Exec(ctx, query,
		m.ItemTrackID,
		m.OrganizationID,
		m.ItemID,
		m.Action,
		m.DebitQuantity,
		m.CreditQuantity,
		m.SellingPrice,
		m.CostPrice,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item track %s: %w", m.ItemTrackID, err)
	}
	return nil
}

func (r *PgxItemTrackRepository) SaveItemTrack(ctx context.Context, track domain.ItemTrack) error {
	return insertItemTrack(ctx, r.Pool, track)
}

func (r *PgxItemTrackRepository) UpdateItemTrack(ctx context.Context, track domain.ItemTrack) error {
	m := toModelItemTrack(track)
	query := `
		UPDATE item_tracks
		SET debit_quantity = $3, credit_quantity = $4, selling_price = $5, cost_price = $6, date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE item_track_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemTrackID,
		m.OrganizationID,
		m.DebitQuantity,
		m.CreditQuantity,
		m.SellingPrice,
		m.CostPrice,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item track %s: %w", m.ItemTrackID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxItemTrackRepository) FindTracksByItemAndAction(ctx context.Context, organizationID, itemID, action string) ([]domain.ItemTrack, error) {
	query := `SELECT ` + itemTrackColumns + ` FROM item_tracks WHERE organization_id = $1 AND item_id = $2 AND action = $3 ORDER BY date, created_at;`
	rows, err := r.Pool.Query(ctx, query, organizationID, itemID, action)
	if err != nil {
		return nil, fmt.Errorf("failed to query item tracks: %w", err)
	}
	defer rows.Close()

	tracks := []domain.ItemTrack{}
	for rows.Next() {
		m, err := scanItemTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item track: %w", err)
		}
		tracks = append(tracks, toDomainItemTrack(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read item tracks: %w", err)
	}
	return tracks, nil
}

func (r *PgxItemTrackRepository) CountTracksByItem(ctx context.Context, organizationID, itemID string) (int64, error) {
	query := `SELECT COUNT(*) FROM item_tracks WHERE organization_id = $1 AND item_id = $2;`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, organizationID, itemID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count item tracks for %s: %w", itemID, err)
	}
	return count, nil
}

// CurrentStock aggregates the ledger rather than reading a stored counter.
func (r *PgxItemTrackRepository) CurrentStock(ctx context.Context, organizationID, itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit_quantity), 0) - COALESCE(SUM(credit_quantity), 0)
		FROM item_tracks
		WHERE organization_id = $1 AND item_id = $2;
	`
	var stock decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, organizationID, itemID).Scan(&stock); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute stock for item %s: %w", itemID, err)
	}
	return stock, nil
}
