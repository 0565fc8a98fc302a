package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/google/uuid"
)

// currencySymbols maps the currency codes of the supported countries to
// their display symbols. Unknown codes store an empty symbol.
var currencySymbols = map[string]string{
	"INR": "₹",
	"AED": "د.إ",
	"SAR": "﷼",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// OrganizationService manages tenants, their settings and their configured
// reference data.
type OrganizationService struct {
	BaseService
	orgRepo      portsrepo.OrganizationRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	taxRateRepo  portsrepo.TaxRateReader
	refs         *ReferenceService
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(
	orgRepo portsrepo.OrganizationRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	taxRateRepo portsrepo.TaxRateReader,
	refs *ReferenceService,
) portssvc.OrganizationSvcFacade {
	return &OrganizationService{
		orgRepo:      orgRepo,
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
		taxRateRepo:  taxRateRepo,
		refs:         refs,
	}
}

var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

// CreateOrganization creates a tenant with its base currency and default
// settings. Duplicate checking starts enabled for display names and item
// names; email/mobile checks start off.
func (s *OrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	currency := domain.Currency{
		CurrencyID:  uuid.NewString(),
		Code:        req.CurrencyCode,
		Symbol:      currencySymbols[req.CurrencyCode],
		Name:        req.CurrencyCode,
		AuditFields: audit,
	}

	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		Country:        req.Country,
		State:          req.State,
		TaxType:        domain.TaxType(req.TaxType),
		BaseCurrencyID: currency.CurrencyID,
		IsActive:       true,
		AuditFields:    audit,
	}
	currency.OrganizationID = org.OrganizationID

	settings := domain.Settings{
		SettingsID:                   uuid.NewString(),
		OrganizationID:               org.OrganizationID,
		DuplicateCustomerDisplayName: true,
		DuplicateSupplierDisplayName: true,
		ItemDuplicateName:            true,
		HSNSACEnabled:                org.TaxType == domain.TaxTypeGST,
		HSNDigits:                    4,
		OpeningStockDate:             now.Truncate(24 * time.Hour),
		AuditFields:                  audit,
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save base currency", slog.String("organization_id", org.OrganizationID))
		return nil, fmt.Errorf("failed to save base currency: %w", err)
	}
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save default settings", slog.String("organization_id", org.OrganizationID))
		return nil, fmt.Errorf("failed to save default settings: %w", err)
	}

	s.LogInfo(ctx, "Organization created", slog.String("organization_id", org.OrganizationID))
	return &org, nil
}

// UpdateSettings applies a field-level patch to the organization's settings
// and invalidates the cached reference bundle.
func (s *OrganizationService) UpdateSettings(ctx context.Context, organizationID string, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettingsByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	applySettingsPatch(settings, req)
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.refs.Invalidate(ctx, organizationID)
	s.LogInfo(ctx, "Settings updated", slog.String("organization_id", organizationID))
	return settings, nil
}

// GetOrganizationByID retrieves the tenant record.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.orgRepo.FindOrganizationByID(ctx, organizationID)
}

// GetSettings retrieves the organization settings.
func (s *OrganizationService) GetSettings(ctx context.Context, organizationID string) (*domain.Settings, error) {
	return s.settingsRepo.FindSettingsByOrganizationID(ctx, organizationID)
}

// ListCurrencies retrieves the currencies configured for an organization.
func (s *OrganizationService) ListCurrencies(ctx context.Context, organizationID string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

// ListTaxRates retrieves the tax rates configured for an organization.
func (s *OrganizationService) ListTaxRates(ctx context.Context, organizationID string) ([]domain.TaxRate, error) {
	rates, err := s.taxRateRepo.ListTaxRates(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	if rates == nil {
		rates = []domain.TaxRate{}
	}
	return rates, nil
}

func applySettingsPatch(settings *domain.Settings, req dto.UpdateSettingsRequest) {
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool(&settings.DuplicateCustomerDisplayName, req.DuplicateCustomerDisplayName)
	applyBool(&settings.DuplicateCustomerEmail, req.DuplicateCustomerEmail)
	applyBool(&settings.DuplicateCustomerMobile, req.DuplicateCustomerMobile)
	applyBool(&settings.DuplicateSupplierDisplayName, req.DuplicateSupplierDisplayName)
	applyBool(&settings.DuplicateSupplierEmail, req.DuplicateSupplierEmail)
	applyBool(&settings.DuplicateSupplierMobile, req.DuplicateSupplierMobile)
	applyBool(&settings.ItemDuplicateName, req.ItemDuplicateName)
	applyBool(&settings.HSNSACEnabled, req.HSNSACEnabled)
	if req.HSNDigits != nil {
		settings.HSNDigits = *req.HSNDigits
	}
	if req.OpeningStockDate != nil {
		settings.OpeningStockDate = *req.OpeningStockDate
	}
	if req.Brands != nil {
		settings.Brands = *req.Brands
	}
	if req.Manufacturers != nil {
		settings.Manufacturers = *req.Manufacturers
	}
	if req.Categories != nil {
		settings.Categories = *req.Categories
	}
	if req.Racks != nil {
		settings.Racks = *req.Racks
	}
}
