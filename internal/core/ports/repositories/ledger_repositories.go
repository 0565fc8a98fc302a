package repositories

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceReader defines read operations for opening-balance rows.
type TrialBalanceReader interface {
	// FindTrialBalanceByOperationID retrieves the opening-balance row owned
	// by a party.
	FindTrialBalanceByOperationID(ctx context.Context, organizationID, operationID string) (*domain.TrialBalance, error)

	// ListTrialBalancesByOperationID retrieves every posting for a party,
	// oldest first. Backs the party transactions endpoint.
	ListTrialBalancesByOperationID(ctx context.Context, organizationID, operationID string) ([]domain.TrialBalance, error)
}

// TrialBalanceWriter defines write operations for opening-balance rows.
type TrialBalanceWriter interface {
	SaveTrialBalance(ctx context.Context, tb domain.TrialBalance) error
	UpdateTrialBalance(ctx context.Context, tb domain.TrialBalance) error
}

// TrialBalanceRepositoryFacade combines the trial-balance interfaces.
type TrialBalanceRepositoryFacade interface {
	TrialBalanceReader
	TrialBalanceWriter
}

// ItemTrackReader defines read operations for the per-item stock ledger.
type ItemTrackReader interface {
	// FindTracksByItemAndAction retrieves the rows for an item matching an
	// action tag ("Opening Stock" at steady state yields exactly one).
	FindTracksByItemAndAction(ctx context.Context, organizationID, itemID, action string) ([]domain.ItemTrack, error)

	// CountTracksByItem returns the total number of movements for an item.
	CountTracksByItem(ctx context.Context, organizationID, itemID string) (int64, error)

	// CurrentStock computes sum(debit_quantity) - sum(credit_quantity) over
	// the item's rows by aggregation; stock is never a stored counter.
	CurrentStock(ctx context.Context, organizationID, itemID string) (decimal.Decimal, error)
}

// ItemTrackWriter defines write operations for the stock ledger.
type ItemTrackWriter interface {
	SaveItemTrack(ctx context.Context, track domain.ItemTrack) error
	UpdateItemTrack(ctx context.Context, track domain.ItemTrack) error
}

// ItemTrackRepositoryFacade combines the stock-ledger interfaces.
type ItemTrackRepositoryFacade interface {
	ItemTrackReader
	ItemTrackWriter
}
