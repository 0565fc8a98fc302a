package repositories

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account row by its primary key.
	FindAccountByID(ctx context.Context, id string) (*domain.Account, error)

	// FindAccountByPartyID retrieves the companion account of a party
	// (accounts.account_id = party id).
	FindAccountByPartyID(ctx context.Context, organizationID, partyID string) (*domain.Account, error)

	// FindAccountsByName retrieves every account in the organization whose
	// name matches exactly. Used by the supplier bulk rename.
	FindAccountsByName(ctx context.Context, organizationID, name string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new stand-alone account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites an existing account row.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
