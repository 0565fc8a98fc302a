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

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func toModelSettings(d domain.Settings) (models.Settings, error) {
	brands, err := marshalJSONB(d.Brands)
	if err != nil {
		return models.Settings{}, err
	}
	manufacturers, err := marshalJSONB(d.Manufacturers)
	if err != nil {
		return models.Settings{}, err
	}
	categories, err := marshalJSONB(d.Categories)
	if err != nil {
		return models.Settings{}, err
	}
	racks, err := marshalJSONB(d.Racks)
	if err != nil {
		return models.Settings{}, err
	}

	return models.Settings{
		SettingsID:                   d.SettingsID,
		OrganizationID:               d.OrganizationID,
		DuplicateCustomerDisplayName: d.DuplicateCustomerDisplayName,
		DuplicateCustomerEmail:       d.DuplicateCustomerEmail,
		DuplicateCustomerMobile:      d.DuplicateCustomerMobile,
		DuplicateSupplierDisplayName: d.DuplicateSupplierDisplayName,
		DuplicateSupplierEmail:       d.DuplicateSupplierEmail,
		DuplicateSupplierMobile:      d.DuplicateSupplierMobile,
		ItemDuplicateName:            d.ItemDuplicateName,
		HSNSACEnabled:                d.HSNSACEnabled,
		HSNDigits:                    d.HSNDigits,
		OpeningStockDate:             d.OpeningStockDate,
		Brands:                       brands,
		Manufacturers:                manufacturers,
		Categories:                   categories,
		Racks:                        racks,
		AuditFields:                  toModelAudit(d.AuditFields),
	}, nil
}

func toDomainSettings(m models.Settings) (domain.Settings, error) {
	d := domain.Settings{
		SettingsID:                   m.SettingsID,
		OrganizationID:               m.OrganizationID,
		DuplicateCustomerDisplayName: m.DuplicateCustomerDisplayName,
		DuplicateCustomerEmail:       m.DuplicateCustomerEmail,
		DuplicateCustomerMobile:      m.DuplicateCustomerMobile,
		DuplicateSupplierDisplayName: m.DuplicateSupplierDisplayName,
		DuplicateSupplierEmail:       m.DuplicateSupplierEmail,
		DuplicateSupplierMobile:      m.DuplicateSupplierMobile,
		ItemDuplicateName:            m.ItemDuplicateName,
		HSNSACEnabled:                m.HSNSACEnabled,
		HSNDigits:                    m.HSNDigits,
		OpeningStockDate:             m.OpeningStockDate,
		AuditFields:                  toDomainAudit(m.AuditFields),
	}
	if err := unmarshalJSONB(m.Brands, &d.Brands); err != nil {
		return domain.Settings{}, err
	}
	if err := unmarshalJSONB(m.Manufacturers, &d.Manufacturers); err != nil {
		return domain.Settings{}, err
	}
	if err := unmarshalJSONB(m.Categories, &d.Categories); err != nil {
		return domain.Settings{}, err
	}
	if err := unmarshalJSONB(m.Racks, &d.Racks); err != nil {
		return domain.Settings{}, err
	}
	return d, nil
}

const settingsColumns = `settings_id, organization_id, duplicate_customer_display_name, duplicate_customer_email, duplicate_customer_mobile, duplicate_supplier_display_name, duplicate_supplier_email, duplicate_supplier_mobile, item_duplicate_name, hsn_sac_enabled, hsn_digits, opening_stock_date, brands, manufacturers, categories, racks, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m, err := toModelSettings(settings)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.SettingsID,
		m.OrganizationID,
		m.DuplicateCustomerDisplayName,
		m.DuplicateCustomerEmail,
		m.DuplicateCustomerMobile,
		m.DuplicateSupplierDisplayName,
		m.DuplicateSupplierEmail,
		m.DuplicateSupplierMobile,
		m.ItemDuplicateName,
		m.HSNSACEnabled,
		m.HSNDigits,
		m.OpeningStockDate,
		m.Brands,
		m.Manufacturers,
		m.Categories,
		m.Racks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for organization %s: %w", m.OrganizationID, err)
	}
	return nil
}

func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	m, err := toModelSettings(settings)
	if err != nil {
		return err
	}
	query := `
		UPDATE settings
		SET duplicate_customer_display_name = $2, duplicate_customer_email = $3, duplicate_customer_mobile = $4, duplicate_supplier_display_name = $5, duplicate_supplier_email = $6, duplicate_supplier_mobile = $7, item_duplicate_name = $8, hsn_sac_enabled = $9, hsn_digits = $10, opening_stock_date = $11, brands = $12, manufacturers = $13, categories = $14, racks = $15, last_updated_at = $16, last_updated_by = $17
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID,
		m.DuplicateCustomerDisplayName,
		m.DuplicateCustomerEmail,
		m.DuplicateCustomerMobile,
		m.DuplicateSupplierDisplayName,
		m.DuplicateSupplierEmail,
		m.DuplicateSupplierMobile,
		m.ItemDuplicateName,
		m.HSNSACEnabled,
		m.HSNDigits,
		m.OpeningStockDate,
		m.Brands,
		m.Manufacturers,
		m.Categories,
		m.Racks,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for organization %s: %w", m.OrganizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSettingsRepository) FindSettingsByOrganizationID(ctx context.Context, organizationID string) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE organization_id = $1;`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.SettingsID,
		&m.OrganizationID,
		&m.DuplicateCustomerDisplayName,
		&m.DuplicateCustomerEmail,
		&m.DuplicateCustomerMobile,
		&m.DuplicateSupplierDisplayName,
		&m.DuplicateSupplierEmail,
		&m.DuplicateSupplierMobile,
		&m.ItemDuplicateName,
		&m.HSNSACEnabled,
		&m.HSNDigits,
		&m.OpeningStockDate,
		&m.Brands,
		&m.Manufacturers,
		&m.Categories,
		&m.Racks,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for organization %s: %w", organizationID, err)
	}
	d, err := toDomainSettings(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
