package services

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data.
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves one customer scoped to the organization.
	GetCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated customer list.
	ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error)

	// GetCustomerTransactions returns the ledger postings recorded for a
	// customer (its opening-balance row plus any later postings).
	GetCustomerTransactions(ctx context.Context, organizationID, customerID string) ([]domain.TrialBalance, error)

	// GetCustomerHistory returns the audit trail for a customer, newest first.
	GetCustomerHistory(ctx context.Context, organizationID, customerID string) ([]domain.History, error)
}

// CustomerWriterSvc defines write operations for customer data.
type CustomerWriterSvc interface {
	// CreateCustomer validates, duplicate-checks and persists a new customer
	// together with its generated account, trial-balance row and history.
	CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)

	// UpdateCustomer applies a field-level patch and keeps the ledger
	// artifacts consistent.
	UpdateCustomer(ctx context.Context, organizationID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// UpdateCustomerStatus flips the lifecycle status and records history.
	UpdateCustomerStatus(ctx context.Context, organizationID, customerID string, status domain.Status, userID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces.
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
