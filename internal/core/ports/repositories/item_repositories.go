package repositories

import (
	"context"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// ItemReader defines read operations for item master data.
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a paginated list of items for an organization.
	ListItems(ctx context.Context, organizationID string, limit, offset int) ([]domain.Item, error)

	// ExistsItemWithName reports whether another item in the organization
	// carries the exact name, excluding excludeID.
	ExistsItemWithName(ctx context.Context, organizationID, name, excludeID string) (bool, error)
}

// ItemWriter defines write operations for item master data.
type ItemWriter interface {
	// SaveItemWithTrack persists a new item together with its opening-stock
	// ledger row in a single transaction.
	SaveItemWithTrack(ctx context.Context, item domain.Item, track *domain.ItemTrack) error

	// UpdateItem overwrites an existing item row.
	UpdateItem(ctx context.Context, item domain.Item) error

	// UpdateItemStatus flips the lifecycle status.
	UpdateItemStatus(ctx context.Context, itemID string, status domain.Status, userID string, now time.Time) error

	// DeleteItemWithTracks removes the item and its remaining stock-ledger
	// rows in one transaction. Callers enforce the delete guard first.
	DeleteItemWithTracks(ctx context.Context, organizationID, itemID string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
