package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/models"
)

type PgxTaxRateRepository struct {
	BaseRepository
}

func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateReader {
	return &PgxTaxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxRateReader = (*PgxTaxRateRepository)(nil)

func toDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		TaxRateID:      m.TaxRateID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Rate:           m.Rate,
		TaxType:        domain.TaxType(m.TaxType),
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context, organizationID string) ([]domain.TaxRate, error) {
	query := `
		SELECT tax_rate_id, organization_id, name, rate, tax_type, created_at, created_by, last_updated_at, last_updated_by
		FROM tax_rates
		WHERE organization_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		var m models.TaxRate
		err := rows.Scan(
			&m.TaxRateID,
			&m.OrganizationID,
			&m.Name,
			&m.Rate,
			&m.TaxType,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax rate: %w", err)
		}
		rates = append(rates, toDomainTaxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tax rates: %w", err)
	}
	return rates, nil
}
