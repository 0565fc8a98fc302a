package services_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceFixture(t *testing.T, c cache.Cache) (*services.ReferenceService, *fakeOrganizationRepo) {
	t.Helper()
	orgs := &fakeOrganizationRepo{org: &domain.Organization{
		OrganizationID: testOrgID,
		Country:        "India",
		TaxType:        domain.TaxTypeGST,
		IsActive:       true,
	}}
	settings := &fakeSettingsRepo{settings: &domain.Settings{SettingsID: "set-1", OrganizationID: testOrgID}}
	currencies := &fakeCurrencyRepo{currencies: []domain.Currency{{CurrencyID: "cur-inr", Code: "INR"}}}
	rates := &fakeTaxRateRepo{rates: []domain.TaxRate{
		{TaxRateID: "tr-1", Name: "GST18", TaxType: domain.TaxTypeGST},
		{TaxRateID: "tr-2", Name: "VAT5", TaxType: domain.TaxTypeVAT},
	}}
	return services.NewReferenceService(orgs, settings, currencies, rates, c), orgs
}

func TestReferenceLoadJoinsAllFetches(t *testing.T) {
	refs, _ := referenceFixture(t, cache.NewNoop())

	bundle, err := refs.Load(context.Background(), testOrgID)

	require.NoError(t, err)
	assert.Equal(t, "India", bundle.Org.Country)
	assert.NotNil(t, bundle.Settings)
	assert.Len(t, bundle.Currencies, 1)
	assert.Len(t, bundle.TaxRates, 2)
}

func TestValidationDataFiltersRatesByOrgTaxType(t *testing.T) {
	refs, _ := referenceFixture(t, cache.NewNoop())

	bundle, err := refs.Load(context.Background(), testOrgID)
	require.NoError(t, err)

	data := bundle.ValidationData()
	assert.Equal(t, []string{"GST18"}, data.TaxRateNames)
	assert.Equal(t, []string{"cur-inr"}, data.CurrencyIDs)
	assert.Equal(t, domain.TaxTypeGST, data.OrgTaxType)
}

func TestReferenceLoadMissingOrgIsNotFound(t *testing.T) {
	refs, _ := referenceFixture(t, cache.NewNoop())

	_, err := refs.Load(context.Background(), "org-unknown")

	require.Error(t, err)
}

func TestReferenceLoadServesFromCache(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	refs, orgs := referenceFixture(t, c)
	ctx := context.Background()

	_, err := refs.Load(ctx, testOrgID)
	require.NoError(t, err)

	// Drop the backing org; the cached bundle still answers.
	orgs.org = nil
	bundle, err := refs.Load(ctx, testOrgID)
	require.NoError(t, err)
	assert.Equal(t, "India", bundle.Org.Country)

	// Invalidation forces the (now failing) database path.
	refs.Invalidate(ctx, testOrgID)
	_, err = refs.Load(ctx, testOrgID)
	require.Error(t, err)
}
