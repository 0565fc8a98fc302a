package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/ledgerbooks/books_backend/internal/core/validation"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"golang.org/x/sync/errgroup"
)

// referenceTTL bounds staleness of the cached per-org reference bundle.
const referenceTTL = 5 * time.Minute

// ReferenceBundle is the per-organization data every write path needs before
// validation: the organization itself, its settings, currencies and tax rates.
type ReferenceBundle struct {
	Org        *domain.Organization `json:"org"`
	Settings   *domain.Settings     `json:"settings"`
	Currencies []domain.Currency    `json:"currencies"`
	TaxRates   []domain.TaxRate     `json:"taxRates"`
}

// ValidationData shapes the bundle for the rule engine.
func (b *ReferenceBundle) ValidationData() validation.ReferenceData {
	rateNames := make([]string, 0, len(b.TaxRates))
	for _, r := range b.TaxRates {
		if r.TaxType == b.Org.TaxType {
			rateNames = append(rateNames, r.Name)
		}
	}
	currencyIDs := make([]string, 0, len(b.Currencies))
	for _, c := range b.Currencies {
		currencyIDs = append(currencyIDs, c.CurrencyID)
	}
	return validation.ReferenceData{
		OrgCountry:   b.Org.Country,
		OrgTaxType:   b.Org.TaxType,
		TaxRateNames: rateNames,
		CurrencyIDs:  currencyIDs,
		Settings:     *b.Settings,
	}
}

// ReferenceService loads the per-organization reference bundle. The four
// fetches are independent, so they run concurrently and are awaited jointly;
// a warm cache skips the database entirely.
type ReferenceService struct {
	BaseService
	orgRepo      portsrepo.OrganizationReader
	settingsRepo portsrepo.SettingsReader
	currencyRepo portsrepo.CurrencyReader
	taxRateRepo  portsrepo.TaxRateReader
	cache        cache.Cache
}

// NewReferenceService creates the reference loader.
func NewReferenceService(
	orgRepo portsrepo.OrganizationReader,
	settingsRepo portsrepo.SettingsReader,
	currencyRepo portsrepo.CurrencyReader,
	taxRateRepo portsrepo.TaxRateReader,
	c cache.Cache,
) *ReferenceService {
	return &ReferenceService{
		orgRepo:      orgRepo,
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
		taxRateRepo:  taxRateRepo,
		cache:        c,
	}
}

func referenceCacheKey(organizationID string) string {
	return fmt.Sprintf("refdata:%s", organizationID)
}

// Load fetches the bundle, from cache when fresh.
func (s *ReferenceService) Load(ctx context.Context, organizationID string) (*ReferenceBundle, error) {
	key := referenceCacheKey(organizationID)

	var cached ReferenceBundle
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		s.LogDebug(ctx, "Reference bundle served from cache", slog.String("organization_id", organizationID))
		return &cached, nil
	}

	bundle := &ReferenceBundle{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		org, err := s.orgRepo.FindOrganizationByID(gctx, organizationID)
		if err != nil {
			return err
		}
		bundle.Org = org
		return nil
	})
	g.Go(func() error {
		settings, err := s.settingsRepo.FindSettingsByOrganizationID(gctx, organizationID)
		if err != nil {
			return err
		}
		bundle.Settings = settings
		return nil
	})
	g.Go(func() error {
		currencies, err := s.currencyRepo.ListCurrencies(gctx, organizationID)
		if err != nil {
			return err
		}
		bundle.Currencies = currencies
		return nil
	})
	g.Go(func() error {
		rates, err := s.taxRateRepo.ListTaxRates(gctx, organizationID)
		if err != nil {
			return err
		}
		bundle.TaxRates = rates
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, bundle, referenceTTL); err != nil {
		s.LogDebug(ctx, "Failed to cache reference bundle",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
	}
	return bundle, nil
}

// Invalidate drops the cached bundle after settings or org mutations.
func (s *ReferenceService) Invalidate(ctx context.Context, organizationID string) {
	if err := s.cache.Delete(ctx, referenceCacheKey(organizationID)); err != nil {
		s.LogDebug(ctx, "Failed to invalidate reference bundle",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
	}
}
