package validation

import "github.com/ledgerbooks/books_backend/internal/core/domain"

// ReferenceData is everything the rule engine needs besides the record
// itself. The caller fetches it up front; the engine performs no I/O.
type ReferenceData struct {
	OrgCountry   string
	OrgTaxType   domain.TaxType
	TaxRateNames []string // Names of rates configured for the org's tax type
	CurrencyIDs  []string
	Settings     domain.Settings
}

// ItemReferenceData extends ReferenceData with the resolved account records
// an item references, so the structure rule can inspect their classification.
type ItemReferenceData struct {
	ReferenceData
	SalesAccount    *domain.Account // nil when the item names none
	PurchaseAccount *domain.Account
}

func (r ReferenceData) validCurrency(id string) bool {
	return domain.Contains(r.CurrencyIDs, id)
}

func (r ReferenceData) validTaxRate(name string) bool {
	return domain.Contains(r.TaxRateNames, name)
}
