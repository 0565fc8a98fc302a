package repositories

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// OrganizationReader defines read operations for tenant data.
type OrganizationReader interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationWriter defines write operations for tenant data.
type OrganizationWriter interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	UpdateOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines the organization interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}

// SettingsReader defines read operations for per-organization settings.
type SettingsReader interface {
	FindSettingsByOrganizationID(ctx context.Context, organizationID string) (*domain.Settings, error)
}

// SettingsWriter defines write operations for per-organization settings.
type SettingsWriter interface {
	SaveSettings(ctx context.Context, settings domain.Settings) error
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines the settings interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}

// CurrencyReader defines read operations for configured currencies.
type CurrencyReader interface {
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, organizationID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for configured currencies.
type CurrencyWriter interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines the currency interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// TaxRateReader defines read operations for configured tax rates.
type TaxRateReader interface {
	// ListTaxRates retrieves every rate configured for an organization.
	ListTaxRates(ctx context.Context, organizationID string) ([]domain.TaxRate, error)
}
