package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecorder(histories *fakeHistoryRepo) *services.HistoryRecorder {
	users := &fakeUserRepo{users: []domain.User{{UserID: testUserID, Name: "Asha Rao"}}}
	return services.NewHistoryRecorder(histories, users)
}

func TestPartyCreatedProducesTwoEntries(t *testing.T) {
	recorder := testRecorder(&fakeHistoryRepo{})
	now := time.Now()

	p := domain.Party{
		OrganizationID: testOrgID,
		Kind:           domain.PartyCustomer,
		DisplayName:    "Bharat Traders",
		TaxType:        domain.TaxTypeGST,
		GSTTreatment:   "Registered Business - Regular",
		GSTIN:          "29ABCDE1234F1Z5",
		PlaceOfSupply:  "Karnataka",
	}
	account := domain.Account{AccountName: "Bharat Traders", AccountCode: "CU0001", AccountSubhead: "Sundry Debtors"}

	entries := recorder.PartyCreated(p, "cust-1", account, testUserID, "Asha Rao", now)

	require.Len(t, entries, 2)
	assert.Equal(t, "Customer Added", entries[0].Title)
	assert.Equal(t, "Customer Account Created", entries[1].Title)

	desc := entries[0].Description
	assert.Contains(t, desc, "GST Treatment: Registered Business - Regular")
	assert.Contains(t, desc, "GSTIN: 29ABCDE1234F1Z5")
	assert.Contains(t, desc, "Opening Balance: 0")
	assert.Contains(t, desc, "Created by Asha Rao")

	assert.Contains(t, entries[1].Description, "CU0001")
	assert.Contains(t, entries[1].Description, "Sundry Debtors")
}

func TestPartyDescriptionVariants(t *testing.T) {
	recorder := testRecorder(&fakeHistoryRepo{})
	now := time.Now()

	vat := domain.Party{
		OrganizationID: testOrgID,
		Kind:           domain.PartySupplier,
		DisplayName:    "Gulf Imports",
		TaxType:        domain.TaxTypeVAT,
		VATNumber:      "100123456700003",
		SourceOfSupply: "Dubai",
		CreditOpeningBalance: dec("900"),
	}
	entry := recorder.PartyModified(vat, "sup-1", testUserID, "Asha Rao", now)
	assert.Equal(t, "Supplier Data Modified", entry.Title)
	assert.Contains(t, entry.Description, "VAT Number: 100123456700003")
	assert.Contains(t, entry.Description, "State: Dubai")
	assert.Contains(t, entry.Description, "Opening Balance (Credit): 900")
	assert.Contains(t, entry.Description, "Modified by Asha Rao")

	nonTax := domain.Party{
		OrganizationID: testOrgID,
		Kind:           domain.PartyCustomer,
		DisplayName:    "Acme Co",
		TaxType:        domain.TaxTypeNonTax,
		TaxReason:      "Exempt",
		DebitOpeningBalance: dec("500"),
	}
	entry = recorder.PartyModified(nonTax, "cust-1", testUserID, "Asha Rao", now)
	assert.Contains(t, entry.Description, "tax exemption")
	assert.Contains(t, entry.Description, "Opening Balance (Debit): 500")
}

func TestRecordAppendsInOrder(t *testing.T) {
	histories := &fakeHistoryRepo{}
	recorder := testRecorder(histories)
	now := time.Now()

	p := domain.Party{OrganizationID: testOrgID, Kind: domain.PartyCustomer, DisplayName: "Acme Co", TaxType: domain.TaxTypeNonTax, TaxReason: "Exempt"}
	account := domain.Account{AccountName: "Acme Co", AccountCode: "CU0001", AccountSubhead: "Sundry Debtors"}

	err := recorder.Record(context.Background(), recorder.PartyCreated(p, "cust-1", account, testUserID, "Asha Rao", now)...)

	require.NoError(t, err)
	require.Len(t, histories.entries, 2)
	assert.Equal(t, "Customer Added", histories.entries[0].Title)
}

func TestActorNameFallsBackToID(t *testing.T) {
	recorder := testRecorder(&fakeHistoryRepo{})
	assert.Equal(t, "Asha Rao", recorder.ActorName(context.Background(), testUserID))
	assert.Equal(t, "ghost-user", recorder.ActorName(context.Background(), "ghost-user"))
}
