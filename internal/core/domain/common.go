package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Status is the lifecycle state shared by Customers, Suppliers, Items and Accounts.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// TaxType identifies the tax regime an organization (and its parties) operate under.
type TaxType string

const (
	TaxTypeGST    TaxType = "GST"
	TaxTypeVAT    TaxType = "VAT"
	TaxTypeNonTax TaxType = "Non-Tax"
)
