package dto

import "time"

// CreateOrganizationRequest defines the data needed to create a tenant.
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	Country      string `json:"country" binding:"required"`
	State        string `json:"state"`
	TaxType      string `json:"taxType" binding:"required,oneof=GST VAT Non-Tax"`
	CurrencyCode string `json:"currencyCode" binding:"required"`
}

// UpdateSettingsRequest defines the patch accepted for organization settings.
type UpdateSettingsRequest struct {
	DuplicateCustomerDisplayName *bool `json:"duplicateCustomerDisplayName"`
	DuplicateCustomerEmail       *bool `json:"duplicateCustomerEmail"`
	DuplicateCustomerMobile      *bool `json:"duplicateCustomerMobile"`
	DuplicateSupplierDisplayName *bool `json:"duplicateSupplierDisplayName"`
	DuplicateSupplierEmail       *bool `json:"duplicateSupplierEmail"`
	DuplicateSupplierMobile      *bool `json:"duplicateSupplierMobile"`
	ItemDuplicateName            *bool `json:"itemDuplicateName"`

	HSNSACEnabled *bool `json:"hsnSac"`
	HSNDigits     *int  `json:"hsnDigits" binding:"omitempty,oneof=4 6"`

	OpeningStockDate *time.Time `json:"openingStockDate"`

	Brands        *[]string `json:"brands"`
	Manufacturers *[]string `json:"manufacturers"`
	Categories    *[]string `json:"categories"`
	Racks         *[]string `json:"racks"`
}

// ListParams are the shared pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
