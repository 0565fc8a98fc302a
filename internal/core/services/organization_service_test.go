package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctx context.Context

	orgs       *fakeOrganizationRepo
	settings   *fakeSettingsRepo
	currencies *fakeCurrencyRepo

	svc *services.OrganizationService
}

func (s *OrganizationServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.orgs = &fakeOrganizationRepo{}
	s.settings = &fakeSettingsRepo{}
	s.currencies = &fakeCurrencyRepo{}
	rates := &fakeTaxRateRepo{}

	refs := services.NewReferenceService(s.orgs, s.settings, s.currencies, rates, cache.NewNoop())
	s.svc = services.NewOrganizationService(s.orgs, s.settings, s.currencies, rates, refs).(*services.OrganizationService)
}

func (s *OrganizationServiceTestSuite) TestCreateOrganization_SeedsCurrencyAndSettings() {
	org, err := s.svc.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:         "Ledger Books Pvt Ltd",
		Country:      "India",
		State:        "Karnataka",
		TaxType:      "GST",
		CurrencyCode: "INR",
	}, testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.orgs.savedOrgs, 1)
	s.True(org.IsActive)
	s.Equal(domain.TaxTypeGST, org.TaxType)

	s.Require().Len(s.currencies.savedCurrencies, 1)
	currency := s.currencies.savedCurrencies[0]
	s.Equal("INR", currency.Code)
	s.Equal("₹", currency.Symbol)
	s.Equal(org.BaseCurrencyID, currency.CurrencyID)
	s.Equal(org.OrganizationID, currency.OrganizationID)

	s.Require().Len(s.settings.savedSettings, 1)
	settings := s.settings.savedSettings[0]
	s.Equal(org.OrganizationID, settings.OrganizationID)
	s.True(settings.DuplicateCustomerDisplayName)
	s.True(settings.DuplicateSupplierDisplayName)
	s.True(settings.ItemDuplicateName)
	s.False(settings.DuplicateCustomerEmail)
	s.True(settings.HSNSACEnabled)
	s.Equal(4, settings.HSNDigits)
}

func (s *OrganizationServiceTestSuite) TestUpdateSettings_AppliesPatch() {
	s.settings.settings = &domain.Settings{
		SettingsID:                   "set-1",
		OrganizationID:               testOrgID,
		DuplicateCustomerDisplayName: true,
		HSNDigits:                    4,
	}

	emailFlag := true
	digits := 6
	openingDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	brands := []string{"Alpha", "Beta"}

	updated, err := s.svc.UpdateSettings(s.ctx, testOrgID, dto.UpdateSettingsRequest{
		DuplicateCustomerEmail: &emailFlag,
		HSNDigits:              &digits,
		OpeningStockDate:       &openingDate,
		Brands:                 &brands,
	}, testUserID)

	s.Require().NoError(err)
	s.True(updated.DuplicateCustomerEmail)
	s.True(updated.DuplicateCustomerDisplayName) // untouched
	s.Equal(6, updated.HSNDigits)
	s.Equal(openingDate, updated.OpeningStockDate)
	s.Equal(brands, updated.Brands)
	s.Require().Len(s.settings.updatedSettings, 1)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
