package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/core/validation"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MsgItemHasTransactions is returned when the delete guard refuses an item
// that has stock movements beyond its opening row.
const MsgItemHasTransactions = "Item has transactions and cannot be deleted"

// ItemService orchestrates the item write path and the stock-aware reads.
type ItemService struct {
	BaseService
	itemRepo    portsrepo.ItemRepositoryFacade
	accountRepo portsrepo.AccountReader
	refs        *ReferenceService
	duplicates  *DuplicateChecker
	ledger      *LedgerService
}

// NewItemService creates a new ItemService.
func NewItemService(
	itemRepo portsrepo.ItemRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	refs *ReferenceService,
	duplicates *DuplicateChecker,
	ledger *LedgerService,
) portssvc.ItemSvcFacade {
	return &ItemService{
		itemRepo:    itemRepo,
		accountRepo: accountRepo,
		refs:        refs,
		duplicates:  duplicates,
		ledger:      ledger,
	}
}

var _ portssvc.ItemSvcFacade = (*ItemService)(nil)

// CreateItem validates and persists a new item together with its opening
// stock row.
func (s *ItemService) CreateItem(ctx context.Context, organizationID string, req dto.CreateItemRequest, userID string) (*domain.Item, error) {
	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	item := req.ToDomain()
	item.OrganizationID = organizationID

	iref, err := s.itemReference(ctx, ref, item)
	if err != nil {
		return nil, err
	}
	if msgs := validation.ValidateItem(item, iref); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.ItemNameConflicts(ctx, ref.Settings, organizationID, item.Name, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	now := time.Now()
	item.ItemID = uuid.NewString()
	item.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	track := BuildOpeningStockTrack(item, ref.Settings, userID, now)
	if err := s.itemRepo.SaveItemWithTrack(ctx, item, track); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("name", item.Name))
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID))
	return &item, nil
}

// UpdateItem applies a field-level patch and overwrites the opening-stock
// ledger rows to match.
func (s *ItemService) UpdateItem(ctx context.Context, organizationID, itemID string, req dto.UpdateItemRequest, userID string) (*domain.Item, error) {
	item, err := s.findItem(ctx, organizationID, itemID)
	if err != nil {
		return nil, err
	}

	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(item)

	iref, err := s.itemReference(ctx, ref, *item)
	if err != nil {
		return nil, err
	}
	if msgs := validation.ValidateItem(*item, iref); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.ItemNameConflicts(ctx, ref.Settings, organizationID, item.Name, itemID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	now := time.Now()
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID
	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if err := s.ledger.SyncOpeningStock(ctx, *item, ref.Settings, userID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Item updated", slog.String("item_id", itemID))
	return item, nil
}

// UpdateItemStatus flips the lifecycle status.
func (s *ItemService) UpdateItemStatus(ctx context.Context, organizationID, itemID string, status domain.Status, userID string) error {
	if _, err := s.findItem(ctx, organizationID, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.UpdateItemStatus(ctx, itemID, status, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update item status", slog.String("item_id", itemID))
		return fmt.Errorf("failed to update item status: %w", err)
	}
	s.LogInfo(ctx, "Item status updated",
		slog.String("item_id", itemID),
		slog.String("status", string(status)))
	return nil
}

// DeleteItem removes an item provided it has no stock movements beyond the
// opening row: the guard allows at most one ledger row.
func (s *ItemService) DeleteItem(ctx context.Context, organizationID, itemID string) error {
	if _, err := s.findItem(ctx, organizationID, itemID); err != nil {
		return err
	}

	count, err := s.ledger.TrackCount(ctx, organizationID, itemID)
	if err != nil {
		return fmt.Errorf("failed to count item ledger rows: %w", err)
	}
	if count > 1 {
		return apperrors.NewValidationError([]string{MsgItemHasTransactions})
	}

	if err := s.itemRepo.DeleteItemWithTracks(ctx, organizationID, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.LogInfo(ctx, "Item deleted", slog.String("item_id", itemID))
	return nil
}

// GetItemByID retrieves one item plus its recomputed current stock.
func (s *ItemService) GetItemByID(ctx context.Context, organizationID, itemID string) (*domain.Item, decimal.Decimal, error) {
	item, err := s.findItem(ctx, organizationID, itemID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	stock, err := s.ledger.CurrentStock(ctx, organizationID, itemID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to compute current stock: %w", err)
	}
	return item, stock, nil
}

// ListItems retrieves a paginated item list.
func (s *ItemService) ListItems(ctx context.Context, organizationID string, limit, offset int) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// itemReference resolves the accounts the item names so the structure rule
// can inspect their classification. A missing account stays nil and fails
// validation rather than the whole request.
func (s *ItemService) itemReference(ctx context.Context, ref *ReferenceBundle, item domain.Item) (validation.ItemReferenceData, error) {
	iref := validation.ItemReferenceData{ReferenceData: ref.ValidationData()}

	if item.SalesAccountID != "" {
		account, err := s.accountRepo.FindAccountByID(ctx, item.SalesAccountID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return iref, fmt.Errorf("failed to resolve sales account: %w", err)
		}
		iref.SalesAccount = account
	}
	if item.PurchaseAccountID != "" {
		account, err := s.accountRepo.FindAccountByID(ctx, item.PurchaseAccountID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return iref, fmt.Errorf("failed to resolve purchase account: %w", err)
		}
		iref.PurchaseAccount = account
	}
	return iref, nil
}

func (s *ItemService) findItem(ctx context.Context, organizationID, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}
