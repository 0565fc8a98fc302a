package domain

// Currency represents a currency configured for an organization.
type Currency struct {
	CurrencyID     string `json:"currencyID"` // Primary Key (e.g., UUID)
	OrganizationID string `json:"organizationID"`
	Code           string `json:"code"`   // e.g., "INR"
	Symbol         string `json:"symbol"` // e.g., "₹"
	Name           string `json:"name"`   // e.g., "Indian Rupee"
	AuditFields
}
