package domain

import "github.com/shopspring/decimal"

// TaxRate is one configured rate under the organization's tax regime.
// Taxable parties and items reference a rate by its Name (e.g. "GST18").
type TaxRate struct {
	TaxRateID      string          `json:"taxRateID"` // Primary Key (e.g., UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"` // e.g., "GST18", "VAT5"
	Rate           decimal.Decimal `json:"rate"` // Percentage, e.g., 18
	TaxType        TaxType         `json:"taxType"`
	AuditFields
}
