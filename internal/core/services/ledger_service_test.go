package services_test

import (
	"testing"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCodeSequencing(t *testing.T) {
	assert.Equal(t, "CU0001", services.AccountCode(domain.PartyCustomer, 0))
	assert.Equal(t, "CU0007", services.AccountCode(domain.PartyCustomer, 6))
	assert.Equal(t, "SU0001", services.AccountCode(domain.PartySupplier, 0))
	assert.Equal(t, "SU0042", services.AccountCode(domain.PartySupplier, 41))
}

func TestBuildPartyLedgerClassification(t *testing.T) {
	now := time.Now()

	customer := domain.Party{OrganizationID: testOrgID, Kind: domain.PartyCustomer, DisplayName: "Acme Co", DebitOpeningBalance: dec("500")}
	account, tb := services.BuildPartyLedger(customer, "cust-1", 0, testUserID, now)
	assert.Equal(t, "Asset", account.AccountGroup)
	assert.Equal(t, "Current Assets", account.AccountHead)
	assert.Equal(t, "Sundry Debtors", account.AccountSubhead)
	assert.Equal(t, "cust-1", account.AccountID)
	assert.Equal(t, account.ID, tb.AccountID)
	require.NotNil(t, tb.DebitAmount)
	assert.Nil(t, tb.CreditAmount)

	supplier := domain.Party{OrganizationID: testOrgID, Kind: domain.PartySupplier, DisplayName: "Mehta Metals", CreditOpeningBalance: dec("750")}
	account, tb = services.BuildPartyLedger(supplier, "sup-1", 3, testUserID, now)
	assert.Equal(t, "Liability", account.AccountGroup)
	assert.Equal(t, "Sundry Creditors", account.AccountSubhead)
	assert.Equal(t, "SU0004", account.AccountCode)
	assert.Nil(t, tb.DebitAmount)
	require.NotNil(t, tb.CreditAmount)
}

func TestBuildPartyLedgerNoOpeningBalance(t *testing.T) {
	p := domain.Party{OrganizationID: testOrgID, Kind: domain.PartyCustomer, DisplayName: "Acme Co"}
	_, tb := services.BuildPartyLedger(p, "cust-1", 0, testUserID, time.Now())
	assert.Nil(t, tb.DebitAmount)
	assert.Nil(t, tb.CreditAmount)
}

func TestBuildOpeningStockTrack(t *testing.T) {
	settings := &domain.Settings{OpeningStockDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	item := domain.Item{
		ItemID:         "item-1",
		OrganizationID: testOrgID,
		OpeningStock:   dec("100"),
		SellingPrice:   decimal.RequireFromString("120"),
		CostPrice:      decimal.RequireFromString("90"),
	}

	track := services.BuildOpeningStockTrack(item, settings, testUserID, time.Now())

	require.NotNil(t, track)
	assert.Equal(t, domain.ItemTrackActionOpeningStock, track.Action)
	assert.True(t, track.DebitQuantity.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), track.Date)

	item.OpeningStock = nil
	assert.Nil(t, services.BuildOpeningStockTrack(item, settings, testUserID, time.Now()))
}
