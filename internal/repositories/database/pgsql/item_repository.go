package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func toModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:            d.ItemID,
		OrganizationID:    d.OrganizationID,
		Name:              d.Name,
		Type:              string(d.Type),
		SKU:               d.SKU,
		Unit:              d.Unit,
		HSNOrSAC:          d.HSNOrSAC,
		TaxPreference:     string(d.TaxPreference),
		TaxRate:           d.TaxRate,
		ExemptionReason:   d.ExemptionReason,
		SellingPrice:      d.SellingPrice,
		CostPrice:         d.CostPrice,
		SalesAccountID:    d.SalesAccountID,
		PurchaseAccountID: d.PurchaseAccountID,
		OpeningStock:      d.OpeningStock,
		OpeningStockValue: d.OpeningStockValue,
		Brand:             d.Brand,
		Manufacturer:      d.Manufacturer,
		Category:          d.Category,
		Rack:              d.Rack,
		Description:       d.Description,
		Status:            string(d.Status),
		AuditFields:       toModelAudit(d.AuditFields),
	}
}

func toDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:            m.ItemID,
		OrganizationID:    m.OrganizationID,
		Name:              m.Name,
		Type:              domain.ItemType(m.Type),
		SKU:               m.SKU,
		Unit:              m.Unit,
		HSNOrSAC:          m.HSNOrSAC,
		TaxPreference:     domain.TaxPreference(m.TaxPreference),
		TaxRate:           m.TaxRate,
		ExemptionReason:   m.ExemptionReason,
		SellingPrice:      m.SellingPrice,
		CostPrice:         m.CostPrice,
		SalesAccountID:    m.SalesAccountID,
		PurchaseAccountID: m.PurchaseAccountID,
		OpeningStock:      m.OpeningStock,
		OpeningStockValue: m.OpeningStockValue,
		Brand:             m.Brand,
		Manufacturer:      m.Manufacturer,
		Category:          m.Category,
		Rack:              m.Rack,
		Description:       m.Description,
		Status:            domain.Status(m.Status),
		AuditFields:       toDomainAudit(m.AuditFields),
	}
}

const itemColumns = `item_id, organization_id, name, type, sku, unit, hsn_or_sac, tax_preference, tax_rate, exemption_reason, selling_price, cost_price, sales_account_id, purchase_account_id, opening_stock, opening_stock_value, brand, manufacturer, category, rack, description, status, created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.OrganizationID,
		&m.Name,
		&m.Type,
		&m.SKU,
		&m.Unit,
		&m.HSNOrSAC,
		&m.TaxPreference,
		&m.TaxRate,
		&m.ExemptionReason,
		&m.SellingPrice,
		&m.CostPrice,
		&m.SalesAccountID,
		&m.PurchaseAccountID,
		&m.OpeningStock,
		&m.OpeningStockValue,
		&m.Brand,
		&m.Manufacturer,
		&m.Category,
		&m.Rack,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveItemWithTrack persists the item and, when present, its opening-stock
// ledger row in one transaction.
func (r *PgxItemRepository) SaveItemWithTrack(ctx context.Context, item domain.Item, track *domain.ItemTrack) error {
	m := toModelItem(item)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err = tx.Exec(ctx, query,
		m.ItemID,
		m.OrganizationID,
		m.Name,
		m.Type,
		m.SKU,
		m.Unit,
		m.HSNOrSAC,
		m.TaxPreference,
		m.TaxRate,
		m.ExemptionReason,
		m.SellingPrice,
		m.CostPrice,
		m.SalesAccountID,
		m.PurchaseAccountID,
		m.OpeningStock,
		m.OpeningStockValue,
		m.Brand,
		m.Manufacturer,
		m.Category,
		m.Rack,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert item "+m.ItemID, err)
	}

	if track != nil {
		if err := insertItemTrack(ctx, tx, *track); err != nil {
			return apperrors.NewAppError(500, "failed to insert opening stock track", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := toModelItem(item)
	query := `
		UPDATE items
		SET name = $3, type = $4, sku = $5, unit = $6, hsn_or_sac = $7, tax_preference = $8, tax_rate = $9, exemption_reason = $10, selling_price = $11, cost_price = $12, sales_account_id = $13, purchase_account_id = $14, opening_stock = $15, opening_stock_value = $16, brand = $17, manufacturer = $18, category = $19, rack = $20, description = $21, status = $22, last_updated_at = $23, last_updated_by = $24
		WHERE item_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.OrganizationID,
		m.Name,
		m.Type,
		m.SKU,
		m.Unit,
		m.HSNOrSAC,
		m.TaxPreference,
		m.TaxRate,
		m.ExemptionReason,
		m.SellingPrice,
		m.CostPrice,
		m.SalesAccountID,
		m.PurchaseAccountID,
		m.OpeningStock,
		m.OpeningStockValue,
		m.Brand,
		m.Manufacturer,
		m.Category,
		m.Rack,
		m.Description,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxItemRepository) UpdateItemStatus(ctx context.Context, itemID string, status domain.Status, userID string, now time.Time) error {
	query := `
		UPDATE items
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, itemID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update item status %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItemWithTracks removes the item and its stock-ledger rows in one
// transaction. The service enforces the transaction guard before calling.
func (r *PgxItemRepository) DeleteItemWithTracks(ctx context.Context, organizationID, itemID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM item_tracks WHERE organization_id = $1 AND item_id = $2;`, organizationID, itemID); err != nil {
		return apperrors.NewAppError(500, "failed to delete item tracks for "+itemID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM items WHERE organization_id = $1 AND item_id = $2;`, organizationID, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by id %s: %w", itemID, err)
	}
	d := toDomainItem(m)
	return &d, nil
}

func (r *PgxItemRepository) ListItems(ctx context.Context, organizationID string, limit, offset int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, toDomainItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *PgxItemRepository) ExistsItemWithName(ctx context.Context, organizationID, name, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM items WHERE organization_id = $1 AND name = $2 AND item_id <> $3);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, organizationID, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check item name duplicate: %w", err)
	}
	return exists, nil
}
