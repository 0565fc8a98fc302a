package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService keeps a party/item consistent with its generated ledger
// artifacts: the companion Account, the opening-balance TrialBalance row and
// the item's Opening Stock track row.
type LedgerService struct {
	BaseService
	accountRepo      portsrepo.AccountRepositoryFacade
	trialBalanceRepo portsrepo.TrialBalanceRepositoryFacade
	itemTrackRepo    portsrepo.ItemTrackRepositoryFacade
}

// NewLedgerService creates the synchronizer.
func NewLedgerService(
	accountRepo portsrepo.AccountRepositoryFacade,
	trialBalanceRepo portsrepo.TrialBalanceRepositoryFacade,
	itemTrackRepo portsrepo.ItemTrackRepositoryFacade,
) *LedgerService {
	return &LedgerService{
		accountRepo:      accountRepo,
		trialBalanceRepo: trialBalanceRepo,
		itemTrackRepo:    itemTrackRepo,
	}
}

// AccountCode builds the sequential human-readable code for the next party
// of a kind: prefix + zero-padded(count+1), e.g. "CU0001", "SU0007".
func AccountCode(kind domain.PartyKind, existingCount int64) string {
	return fmt.Sprintf("%s%04d", kind.AccountCodePrefix(), existingCount+1)
}

// BuildPartyLedger assembles the Account and TrialBalance rows a new party
// owns. Pure; the caller persists them in the same transaction as the party.
func BuildPartyLedger(p domain.Party, partyID string, existingCount int64, userID string, now time.Time) (domain.Account, domain.TrialBalance) {
	class := domain.CustomerAccountClassification
	if p.Kind == domain.PartySupplier {
		class = domain.SupplierAccountClassification
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	account := domain.Account{
		ID:             uuid.NewString(),
		OrganizationID: p.OrganizationID,
		AccountID:      partyID,
		AccountCode:    AccountCode(p.Kind, existingCount),
		AccountName:    p.DisplayName,
		AccountGroup:   class.Group,
		AccountHead:    class.Head,
		AccountSubhead: class.Subhead,
		Status:         domain.StatusActive,
		AuditFields:    audit,
	}

	tb := domain.TrialBalance{
		TrialBalanceID: uuid.NewString(),
		OrganizationID: p.OrganizationID,
		OperationID:    partyID,
		AccountID:      account.ID,
		Date:           now,
		AuditFields:    audit,
	}
	if debit, credit := p.OpeningBalanceSides(); debit {
		tb.DebitAmount = p.DebitOpeningBalance
	} else if credit {
		tb.CreditAmount = p.CreditOpeningBalance
	}

	return account, tb
}

// SyncPartyRename propagates a display-name change to the companion account.
// Customers rename the single account linked by party id; suppliers rename
// every account whose name matches the old display name.
func (s *LedgerService) SyncPartyRename(ctx context.Context, kind domain.PartyKind, organizationID, partyID, oldName, newName, userID string, now time.Time) error {
	if oldName == newName {
		return nil
	}

	if kind == domain.PartyCustomer {
		account, err := s.accountRepo.FindAccountByPartyID(ctx, organizationID, partyID)
		if err != nil {
			return fmt.Errorf("failed to find companion account for rename: %w", err)
		}
		account.AccountName = newName
		account.LastUpdatedAt = now
		account.LastUpdatedBy = userID
		if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
			return fmt.Errorf("failed to rename companion account: %w", err)
		}
		return nil
	}

	accounts, err := s.accountRepo.FindAccountsByName(ctx, organizationID, oldName)
	if err != nil {
		return fmt.Errorf("failed to find accounts named %q for rename: %w", oldName, err)
	}
	for _, account := range accounts {
		account.AccountName = newName
		account.LastUpdatedAt = now
		account.LastUpdatedBy = userID
		if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to rename account %s: %w", account.ID, err)
		}
	}
	s.LogDebug(ctx, "Renamed supplier accounts",
		slog.Int("count", len(accounts)),
		slog.String("old_name", oldName),
		slog.String("new_name", newName))
	return nil
}

// SyncOpeningBalance reconciles the party's TrialBalance row with the edited
// record. Supplying one side clears the other on both the record and the
// row; supplying neither leaves the row untouched.
func (s *LedgerService) SyncOpeningBalance(ctx context.Context, p *domain.Party, partyID, userID string, now time.Time) error {
	debit, credit := p.OpeningBalanceSides()
	if !debit && !credit {
		return nil
	}

	tb, err := s.trialBalanceRepo.FindTrialBalanceByOperationID(ctx, p.OrganizationID, partyID)
	if err != nil {
		return fmt.Errorf("failed to find trial balance row: %w", err)
	}

	if debit {
		p.CreditOpeningBalance = nil
		tb.DebitAmount = p.DebitOpeningBalance
		tb.CreditAmount = nil
	} else {
		p.DebitOpeningBalance = nil
		tb.CreditAmount = p.CreditOpeningBalance
		tb.DebitAmount = nil
	}
	tb.LastUpdatedAt = now
	tb.LastUpdatedBy = userID

	if err := s.trialBalanceRepo.UpdateTrialBalance(ctx, *tb); err != nil {
		return fmt.Errorf("failed to update trial balance row: %w", err)
	}
	return nil
}

// BuildOpeningStockTrack assembles the single Opening Stock row a new item
// owns, dated the day before the organization's opening-stock date so real
// transactions always sort after it. Returns nil when the item declares no
// opening stock.
func BuildOpeningStockTrack(item domain.Item, settings *domain.Settings, userID string, now time.Time) *domain.ItemTrack {
	if item.OpeningStock == nil || item.OpeningStock.IsZero() {
		return nil
	}
	return &domain.ItemTrack{
		ItemTrackID:    uuid.NewString(),
		OrganizationID: item.OrganizationID,
		ItemID:         item.ItemID,
		Action:         domain.ItemTrackActionOpeningStock,
		DebitQuantity:  *item.OpeningStock,
		CreditQuantity: decimal.Zero,
		SellingPrice:   item.SellingPrice,
		CostPrice:      item.CostPrice,
		Date:           settings.OpeningStockDate.AddDate(0, 0, -1),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// SyncOpeningStock overwrites the item's Opening Stock rows (expected one)
// with the edited quantity and prices. A newly declared opening stock with
// no existing row creates one.
func (s *LedgerService) SyncOpeningStock(ctx context.Context, item domain.Item, settings *domain.Settings, userID string, now time.Time) error {
	tracks, err := s.itemTrackRepo.FindTracksByItemAndAction(ctx, item.OrganizationID, item.ItemID, domain.ItemTrackActionOpeningStock)
	if err != nil {
		return fmt.Errorf("failed to find opening stock rows: %w", err)
	}

	if len(tracks) == 0 {
		if track := BuildOpeningStockTrack(item, settings, userID, now); track != nil {
			if err := s.itemTrackRepo.SaveItemTrack(ctx, *track); err != nil {
				return fmt.Errorf("failed to save opening stock row: %w", err)
			}
		}
		return nil
	}

	quantity := decimal.Zero
	if item.OpeningStock != nil {
		quantity = *item.OpeningStock
	}
	for _, track := range tracks {
		track.DebitQuantity = quantity
		track.CreditQuantity = decimal.Zero
		track.SellingPrice = item.SellingPrice
		track.CostPrice = item.CostPrice
		track.LastUpdatedAt = now
		track.LastUpdatedBy = userID
		if err := s.itemTrackRepo.UpdateItemTrack(ctx, track); err != nil {
			return fmt.Errorf("failed to update opening stock row %s: %w", track.ItemTrackID, err)
		}
	}
	return nil
}

// CurrentStock recomputes the item's stock from its ledger rows.
func (s *LedgerService) CurrentStock(ctx context.Context, organizationID, itemID string) (decimal.Decimal, error) {
	return s.itemTrackRepo.CurrentStock(ctx, organizationID, itemID)
}

// TrackCount reports the number of ledger rows an item owns; the item delete
// guard allows removal only while this is at most one.
func (s *LedgerService) TrackCount(ctx context.Context, organizationID, itemID string) (int64, error) {
	return s.itemTrackRepo.CountTracksByItem(ctx, organizationID, itemID)
}
