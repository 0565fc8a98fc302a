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

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) (models.Customer, error) {
	party, err := toModelParty(d.Party)
	if err != nil {
		return models.Customer{}, err
	}
	return models.Customer{
		CustomerID:   d.CustomerID,
		CustomerType: d.CustomerType,
		Party:        party,
		AuditFields:  toModelAudit(d.AuditFields),
	}, nil
}

func toDomainCustomer(m models.Customer) (domain.Customer, error) {
	party, err := toDomainParty(m.Party, domain.PartyCustomer)
	if err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{
		CustomerID:   m.CustomerID,
		CustomerType: m.CustomerType,
		Party:        party,
		AuditFields:  toDomainAudit(m.AuditFields),
	}, nil
}

const customerColumns = `customer_id, customer_type, organization_id, salutation, first_name, last_name, company_name, display_name, email, mobile, work_phone, website, pan, tax_type, gst_treatment, gstin, vat_treatment, vat_number, tax_reason, place_of_supply, source_of_supply, currency_id, debit_opening_balance, credit_opening_balance, interest_percentage, payment_terms, billing_address, shipping_address, contact_persons, bank_details, remarks, status, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.CustomerType,
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

// SaveCustomerWithLedger persists the customer, its companion account, the
// opening-balance row and the audit entries in one transaction.
func (r *PgxCustomerRepository) SaveCustomerWithLedger(ctx context.Context, customer domain.Customer, account domain.Account, trialBalance domain.TrialBalance, histories []domain.History) error {
	m, err := toModelCustomer(customer)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36);
	`
	_, err = tx.Exec(ctx, query,
		m.CustomerID,
		m.CustomerType,
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
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID, err)
	}

	if err := insertAccount(ctx, tx, account); err != nil {
		return apperrors.NewAppError(500, "failed to insert customer account", err)
	}
	if err := insertTrialBalance(ctx, tx, trialBalance); err != nil {
		return apperrors.NewAppError(500, "failed to insert customer trial balance", err)
	}
	for _, h := range histories {
		if err := insertHistory(ctx, tx, h); err != nil {
			return apperrors.NewAppError(500, "failed to insert customer history", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m, err := toModelCustomer(customer)
	if err != nil {
		return err
	}
	query := `
		UPDATE customers
		SET customer_type = $3, salutation = $4, first_name = $5, last_name = $6, company_name = $7, display_name = $8, email = $9, mobile = $10, work_phone = $11, website = $12, pan = $13, tax_type = $14, gst_treatment = $15, gstin = $16, vat_treatment = $17, vat_number = $18, tax_reason = $19, place_of_supply = $20, source_of_supply = $21, currency_id = $22, debit_opening_balance = $23, credit_opening_balance = $24, interest_percentage = $25, payment_terms = $26, billing_address = $27, shipping_address = $28, contact_persons = $29, bank_details = $30, remarks = $31, status = $32, last_updated_at = $33, last_updated_by = $34
		WHERE customer_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.OrganizationID,
		m.CustomerType,
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
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomerStatus(ctx context.Context, customerID string, status domain.Status, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, customerID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update customer status %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by id %s: %w", customerID, err)
	}
	d, err := toDomainCustomer(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		d, err := toDomainCustomer(m)
		if err != nil {
			return nil, err
		}
		customers = append(customers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customers: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) CountCustomers(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE organization_id = $1;`, organizationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *PgxCustomerRepository) ExistsCustomerWithField(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
	column, err := partyDuplicateColumn(q.Field)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM customers WHERE organization_id = $1 AND %s = $2 AND customer_id <> $3);`, column)
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, q.OrganizationID, q.Value, q.ExcludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer duplicate on %s: %w", column, err)
	}
	return exists, nil
}

// partyDuplicateColumn whitelists the columns the duplicate checker may probe.
func partyDuplicateColumn(field string) (string, error) {
	switch field {
	case "display_name", "email", "mobile":
		return field, nil
	default:
		return "", fmt.Errorf("unsupported duplicate field %q", field)
	}
}
