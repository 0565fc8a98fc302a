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

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func toModelSupplier(d domain.Supplier) (models.Supplier, error) {
	party, err := toModelParty(d.Party)
	if err != nil {
		return models.Supplier{}, err
	}
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Party:       party,
		AuditFields: toModelAudit(d.AuditFields),
	}, nil
}

func toDomainSupplier(m models.Supplier) (domain.Supplier, error) {
	party, err := toDomainParty(m.Party, domain.PartySupplier)
	if err != nil {
		return domain.Supplier{}, err
	}
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Party:       party,
		AuditFields: toDomainAudit(m.AuditFields),
	}, nil
}

const supplierColumns = `supplier_id, organization_id, salutation, first_name, last_name, company_name, display_name, email, mobile, work_phone, website, pan, tax_type, gst_treatment, gstin, vat_treatment, vat_number, tax_reason, place_of_supply, source_of_supply, currency_id, debit_opening_balance, credit_opening_balance, interest_percentage, payment_terms, billing_address, shipping_address, contact_persons, bank_details, remarks, status, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.OrganizationID,
		&m.Salutation,
		&m.FirstName,
		&m.LastName,
		&m.CompanyName,
		&m.DisplayName,
		&m.Email,
		&m.Mobile,
		&m.WorkPhone,
		&m.Website,
		&m.PAN,
		&m.TaxType,
		&m.GSTTreatment,
		&m.GSTIN,
		&m.VATTreatment,
		&m.VATNumber,
		&m.TaxReason,
		&m.PlaceOfSupply,
		&m.SourceOfSupply,
		&m.CurrencyID,
		&m.DebitOpeningBalance,
		&m.CreditOpeningBalance,
		&m.InterestPercentage,
		&m.PaymentTerms,
		&m.BillingAddress,
		&m.ShippingAddress,
		&m.ContactPersons,
		&m.BankDetails,
		&m.Remarks,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSupplierWithLedger persists the supplier, its companion account, the
// opening-balance row and the audit entries in one transaction.
func (r *PgxSupplierRepository) SaveSupplierWithLedger(ctx context.Context, supplier domain.Supplier, account domain.Account, trialBalance domain.TrialBalance, histories []domain.History) error {
	m, err := toModelSupplier(supplier)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35);
	`
	_, err = tx.Exec(ctx, query,
		m.SupplierID,
		m.OrganizationID,
		m.Salutation,
		m.FirstName,
		m.LastName,
		m.CompanyName,
		m.DisplayName,
		m.Email,
		m.Mobile,
		m.WorkPhone,
		m.Website,
		m.PAN,
		m.TaxType,
		m.GSTTreatment,
		m.GSTIN,
		m.VATTreatment,
		m.VATNumber,
		m.TaxReason,
		m.PlaceOfSupply,
		m.SourceOfSupply,
		m.CurrencyID,
		m.DebitOpeningBalance,
		m.CreditOpeningBalance,
		m.InterestPercentage,
		m.PaymentTerms,
		m.BillingAddress,
		m.ShippingAddress,
		m.ContactPersons,
		m.BankDetails,
		m.Remarks,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier "+m.SupplierID, err)
	}

	if err := insertAccount(ctx, tx, account); err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier account", err)
	}
	if err := insertTrialBalance(ctx, tx, trialBalance); err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier trial balance", err)
	}
	for _, h := range histories {
		if err := insertHistory(ctx, tx, h); err != nil {
			return apperrors.NewAppError(500, "failed to insert supplier history", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m, err := toModelSupplier(supplier)
	if err != nil {
		return err
	}
	query := `
		UPDATE suppliers
		SET salutation = $3, first_name = $4, last_name = $5, company_name = $6, display_name = $7, email = $8, mobile = $9, work_phone = $10, website = $11, pan = $12, tax_type = $13, gst_treatment = $14, gstin = $15, vat_treatment = $16, vat_number = $17, tax_reason = $18, place_of_supply = $19, source_of_supply = $20, currency_id = $21, debit_opening_balance = $22, credit_opening_balance = $23, interest_percentage = $24, payment_terms = $25, billing_address = $26, shipping_address = $27, contact_persons = $28, bank_details = $29, remarks = $30, status = $31, last_updated_at = $32, last_updated_by = $33
		WHERE supplier_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID,
		m.OrganizationID,
		m.Salutation,
		m.FirstName,
		m.LastName,
		m.CompanyName,
		m.DisplayName,
		m.Email,
		m.Mobile,
		m.WorkPhone,
		m.Website,
		m.PAN,
		m.TaxType,
		m.GSTTreatment,
		m.GSTIN,
		m.VATTreatment,
		m.VATNumber,
		m.TaxReason,
		m.PlaceOfSupply,
		m.SourceOfSupply,
		m.CurrencyID,
		m.DebitOpeningBalance,
		m.CreditOpeningBalance,
		m.InterestPercentage,
		m.PaymentTerms,
		m.BillingAddress,
		m.ShippingAddress,
		m.ContactPersons,
		m.BankDetails,
		m.Remarks,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplierStatus(ctx context.Context, supplierID string, status domain.Status, userID string, now time.Time) error {
	query := `
		UPDATE suppliers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, supplierID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update supplier status %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	m, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by id %s: %w", supplierID, err)
	}
	d, err := toDomainSupplier(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		d, err := toDomainSupplier(m)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) CountSuppliers(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers WHERE organization_id = $1;`, organizationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

func (r *PgxSupplierRepository) ExistsSupplierWithField(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
	column, err := partyDuplicateColumn(q.Field)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM suppliers WHERE organization_id = $1 AND %s = $2 AND supplier_id <> $3);`, column)
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, q.OrganizationID, q.Value, q.ExcludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check supplier duplicate on %s: %w", column, err)
	}
	return exists, nil
}
