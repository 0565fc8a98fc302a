package services

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data.
type SupplierReaderSvc interface {
	GetSupplierByID(ctx context.Context, organizationID, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Supplier, error)
	GetSupplierTransactions(ctx context.Context, organizationID, supplierID string) ([]domain.TrialBalance, error)
	GetSupplierHistory(ctx context.Context, organizationID, supplierID string) ([]domain.History, error)
}

// SupplierWriterSvc defines write operations for supplier data.
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, organizationID string, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, organizationID, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	UpdateSupplierStatus(ctx context.Context, organizationID, supplierID string, status domain.Status, userID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces.
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
