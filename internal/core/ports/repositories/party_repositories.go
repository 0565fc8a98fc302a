package repositories

import (
	"context"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// PartyDuplicateQuery names one duplicate-field lookup. ExcludeID is the id
// of the record being edited (empty on create) and is always excluded from
// the match.
type PartyDuplicateQuery struct {
	OrganizationID string
	Field          string // "display_name" | "email" | "mobile"
	Value          string
	ExcludeID      string
}

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers for an organization.
	ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error)

	// CountCustomers returns the number of customers in an organization,
	// used for sequential account-code generation.
	CountCustomers(ctx context.Context, organizationID string) (int64, error)

	// ExistsCustomerWithField reports whether another customer matches the
	// duplicate query exactly.
	ExistsCustomerWithField(ctx context.Context, q PartyDuplicateQuery) (bool, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomerWithLedger persists a new customer together with its
	// companion account, trial-balance row and history entries in a single
	// transaction.
	SaveCustomerWithLedger(ctx context.Context, customer domain.Customer, account domain.Account, trialBalance domain.TrialBalance, histories []domain.History) error

	// UpdateCustomer overwrites an existing customer row.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomerStatus flips the lifecycle status.
	UpdateCustomerStatus(ctx context.Context, customerID string, status domain.Status, userID string, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Supplier, error)
	CountSuppliers(ctx context.Context, organizationID string) (int64, error)
	ExistsSupplierWithField(ctx context.Context, q PartyDuplicateQuery) (bool, error)
}

// SupplierWriter defines write operations for supplier data.
type SupplierWriter interface {
	SaveSupplierWithLedger(ctx context.Context, supplier domain.Supplier, account domain.Account, trialBalance domain.TrialBalance, histories []domain.History) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplierStatus(ctx context.Context, supplierID string, status domain.Status, userID string, now time.Time) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
