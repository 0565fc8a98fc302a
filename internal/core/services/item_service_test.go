package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	ctx context.Context

	items    *fakeItemRepo
	accounts *fakeAccountRepo
	tracks   *fakeItemTrackRepo
	settings *domain.Settings

	svc portssvc.ItemSvcFacade
}

func (s *ItemServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.items = &fakeItemRepo{}
	s.accounts = &fakeAccountRepo{}
	s.tracks = &fakeItemTrackRepo{}
	s.settings = &domain.Settings{
		SettingsID:        "set-1",
		OrganizationID:    testOrgID,
		ItemDuplicateName: true,
		HSNSACEnabled:     true,
		HSNDigits:         4,
		OpeningStockDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	org := &domain.Organization{
		OrganizationID: testOrgID,
		Country:        "India",
		TaxType:        domain.TaxTypeGST,
		IsActive:       true,
	}
	refs := services.NewReferenceService(
		&fakeOrganizationRepo{org: org},
		&fakeSettingsRepo{settings: s.settings},
		&fakeCurrencyRepo{},
		&fakeTaxRateRepo{rates: []domain.TaxRate{{TaxRateID: "tr-1", Name: "GST18", TaxType: domain.TaxTypeGST}}},
		cache.NewNoop(),
	)
	duplicates := services.NewDuplicateChecker(&fakeCustomerRepo{}, &fakeSupplierRepo{}, s.items)
	ledger := services.NewLedgerService(s.accounts, &fakeTrialBalanceRepo{}, s.tracks)

	s.svc = services.NewItemService(s.items, s.accounts, refs, duplicates, ledger)
}

func (s *ItemServiceTestSuite) createRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:          "Copper Wire 2mm",
		Type:          "Goods",
		TaxPreference: "Taxable",
		TaxRate:       "GST18",
		SellingPrice:  decimal.RequireFromString("120"),
		CostPrice:     decimal.RequireFromString("90"),
		OpeningStock:  dec("100"),
	}
}

func (s *ItemServiceTestSuite) TestCreateItem_WritesOpeningStockRow() {
	item, err := s.svc.CreateItem(s.ctx, testOrgID, s.createRequest(), testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.items.savedItems, 1)
	s.Require().Len(s.items.savedTracks, 1)

	track := s.items.savedTracks[0]
	s.Equal(item.ItemID, track.ItemID)
	s.Equal(domain.ItemTrackActionOpeningStock, track.Action)
	s.True(track.DebitQuantity.Equal(decimal.RequireFromString("100")))
	s.True(track.CreditQuantity.IsZero())
	// Dated the day before the configured opening-stock date.
	s.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), track.Date)
}

func (s *ItemServiceTestSuite) TestCreateItem_TaxableRequiresKnownRate() {
	req := s.createRequest()
	req.TaxRate = "GST99"

	_, err := s.svc.CreateItem(s.ctx, testOrgID, req, testUserID)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	var ve *apperrors.ValidationError
	s.Require().True(errors.As(err, &ve))
	s.Contains(ve.Messages, "Invalid Tax Rate: GST99")
	s.Empty(s.items.savedItems)
}

func (s *ItemServiceTestSuite) existingItem() *domain.Item {
	item := &domain.Item{
		ItemID:         "item-1",
		OrganizationID: testOrgID,
		Name:           "Copper Wire 2mm",
		Type:           domain.ItemTypeGoods,
		TaxPreference:  domain.TaxPreferenceTaxable,
		TaxRate:        "GST18",
		SellingPrice:   decimal.RequireFromString("120"),
		CostPrice:      decimal.RequireFromString("90"),
		OpeningStock:   dec("100"),
		Status:         domain.StatusActive,
	}
	s.items.FindItemByIDFn = func(ctx context.Context, id string) (*domain.Item, error) {
		if id == item.ItemID {
			return item, nil
		}
		return nil, apperrors.ErrNotFound
	}
	return item
}

func (s *ItemServiceTestSuite) TestUpdateItem_OverwritesOpeningStockRow() {
	s.existingItem()
	s.tracks.tracks = []domain.ItemTrack{{
		ItemTrackID:    "track-1",
		OrganizationID: testOrgID,
		ItemID:         "item-1",
		Action:         domain.ItemTrackActionOpeningStock,
		DebitQuantity:  decimal.RequireFromString("100"),
	}}

	req := dto.UpdateItemRequest{OpeningStock: dec("80")}
	_, err := s.svc.UpdateItem(s.ctx, testOrgID, "item-1", req, testUserID)

	s.Require().NoError(err)
	// The single opening row is overwritten, never appended to.
	s.Require().Len(s.tracks.tracks, 1)
	s.Require().Len(s.tracks.updatedTracks, 1)
	s.True(s.tracks.tracks[0].DebitQuantity.Equal(decimal.RequireFromString("80")))

	stock, err := s.tracks.CurrentStock(s.ctx, testOrgID, "item-1")
	s.Require().NoError(err)
	s.True(stock.Equal(decimal.RequireFromString("80")))
}

func (s *ItemServiceTestSuite) TestDeleteItem_GuardAllowsSingleRow() {
	s.existingItem()
	s.tracks.tracks = []domain.ItemTrack{{
		ItemTrackID:    "track-1",
		OrganizationID: testOrgID,
		ItemID:         "item-1",
		Action:         domain.ItemTrackActionOpeningStock,
		DebitQuantity:  decimal.RequireFromString("100"),
	}}

	err := s.svc.DeleteItem(s.ctx, testOrgID, "item-1")

	s.Require().NoError(err)
	s.Equal([]string{"item-1"}, s.items.deletedItems)
}

func (s *ItemServiceTestSuite) TestDeleteItem_GuardRefusesWithTransactions() {
	s.existingItem()
	s.tracks.tracks = []domain.ItemTrack{
		{ItemTrackID: "track-1", OrganizationID: testOrgID, ItemID: "item-1", Action: domain.ItemTrackActionOpeningStock, DebitQuantity: decimal.RequireFromString("100")},
		{ItemTrackID: "track-2", OrganizationID: testOrgID, ItemID: "item-1", Action: "Invoice", CreditQuantity: decimal.RequireFromString("10")},
	}

	err := s.svc.DeleteItem(s.ctx, testOrgID, "item-1")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	var ve *apperrors.ValidationError
	s.Require().True(errors.As(err, &ve))
	s.Contains(ve.Messages, services.MsgItemHasTransactions)
	s.Empty(s.items.deletedItems)
}

func (s *ItemServiceTestSuite) TestGetItemByID_ComputesStockFromLedger() {
	s.existingItem()
	s.tracks.tracks = []domain.ItemTrack{
		{ItemTrackID: "track-1", OrganizationID: testOrgID, ItemID: "item-1", Action: domain.ItemTrackActionOpeningStock, DebitQuantity: decimal.RequireFromString("100")},
		{ItemTrackID: "track-2", OrganizationID: testOrgID, ItemID: "item-1", Action: "Invoice", CreditQuantity: decimal.RequireFromString("30")},
	}

	_, stock, err := s.svc.GetItemByID(s.ctx, testOrgID, "item-1")

	s.Require().NoError(err)
	s.True(stock.Equal(decimal.RequireFromString("70")))
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
