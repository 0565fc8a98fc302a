package dto

import (
	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	CustomerDisplayName string `json:"customerDisplayName" binding:"required"`
	CustomerType        string `json:"customerType"`
	PartyPayload
}

// ToDomain builds the domain customer from the request.
func (r CreateCustomerRequest) ToDomain() domain.Customer {
	return domain.Customer{
		CustomerType: r.CustomerType,
		Party:        r.PartyPayload.toDomainParty(domain.PartyCustomer, r.CustomerDisplayName),
	}
}

// UpdateCustomerRequest defines the patch accepted on customer edit.
type UpdateCustomerRequest struct {
	CustomerDisplayName *string `json:"customerDisplayName"`
	CustomerType        *string `json:"customerType"`
	PartyPatch
}

// UpdateStatusRequest carries the target lifecycle status.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status" binding:"required,oneof=Active Inactive"`
}
