package services

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/dto"
)

// OrganizationReaderSvc defines read operations for tenant data.
type OrganizationReaderSvc interface {
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	GetSettings(ctx context.Context, organizationID string) (*domain.Settings, error)
	ListCurrencies(ctx context.Context, organizationID string) ([]domain.Currency, error)
	ListTaxRates(ctx context.Context, organizationID string) ([]domain.TaxRate, error)
}

// OrganizationWriterSvc defines write operations for tenant data.
type OrganizationWriterSvc interface {
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)
	UpdateSettings(ctx context.Context, organizationID string, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)
}

// OrganizationSvcFacade combines the organization service interfaces.
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
