package services

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ItemReaderSvc defines read operations for item data.
type ItemReaderSvc interface {
	// GetItemByID retrieves one item plus its recomputed current stock.
	GetItemByID(ctx context.Context, organizationID, itemID string) (*domain.Item, decimal.Decimal, error)

	// ListItems retrieves a paginated item list.
	ListItems(ctx context.Context, organizationID string, limit, offset int) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for item data.
type ItemWriterSvc interface {
	// CreateItem validates and persists a new item with its opening-stock
	// ledger row.
	CreateItem(ctx context.Context, organizationID string, req dto.CreateItemRequest, userID string) (*domain.Item, error)

	// UpdateItem applies a field-level patch and overwrites the opening-stock
	// ledger rows to match.
	UpdateItem(ctx context.Context, organizationID, itemID string, req dto.UpdateItemRequest, userID string) (*domain.Item, error)

	// UpdateItemStatus flips the lifecycle status.
	UpdateItemStatus(ctx context.Context, organizationID, itemID string, status domain.Status, userID string) error

	// DeleteItem removes an item that has no transaction history beyond its
	// opening-stock row.
	DeleteItem(ctx context.Context, organizationID, itemID string) error
}

// ItemSvcFacade combines all item-related service interfaces.
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
