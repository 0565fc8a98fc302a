package domain

// Organization is the tenant boundary: every master-data record, every ledger
// row and every history entry is scoped to exactly one organization.
type Organization struct {
	OrganizationID string  `json:"organizationID"` // Primary Key (e.g., UUID)
	Name           string  `json:"name"`
	Country        string  `json:"country"` // Registered country; billing addresses must match it
	State          string  `json:"state"`
	TaxType        TaxType `json:"taxType"` // Regime the org is configured for
	BaseCurrencyID string  `json:"baseCurrencyID"` // FK -> currencies.currency_id
	IsActive       bool    `json:"isActive"`
	AuditFields
}
