package dto

import (
	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a new supplier.
type CreateSupplierRequest struct {
	SupplierDisplayName string `json:"supplierDisplayName" binding:"required"`
	PartyPayload
}

// ToDomain builds the domain supplier from the request.
func (r CreateSupplierRequest) ToDomain() domain.Supplier {
	return domain.Supplier{
		Party: r.PartyPayload.toDomainParty(domain.PartySupplier, r.SupplierDisplayName),
	}
}

// UpdateSupplierRequest defines the patch accepted on supplier edit.
type UpdateSupplierRequest struct {
	SupplierDisplayName *string `json:"supplierDisplayName"`
	PartyPatch
}
