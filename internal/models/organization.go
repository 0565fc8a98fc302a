package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is the tenant row.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Country        string `db:"country"`
	State          string `db:"state"`
	TaxType        string `db:"tax_type"`
	BaseCurrencyID string `db:"base_currency_id"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// Currency row scoped to an organization.
type Currency struct {
	CurrencyID     string `db:"currency_id"`
	OrganizationID string `db:"organization_id"`
	Code           string `db:"code"`
	Symbol         string `db:"symbol"`
	Name           string `db:"name"`
	AuditFields
}

// TaxRate row scoped to an organization.
type TaxRate struct {
	TaxRateID      string          `db:"tax_rate_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	Rate           decimal.Decimal `db:"rate"`
	TaxType        string          `db:"tax_type"`
	AuditFields
}

// Settings row: one per organization, JSONB for the BMCR lookup sets.
type Settings struct {
	SettingsID     string `db:"settings_id"`
	OrganizationID string `db:"organization_id"`

	DuplicateCustomerDisplayName bool `db:"duplicate_customer_display_name"`
	DuplicateCustomerEmail       bool `db:"duplicate_customer_email"`
	DuplicateCustomerMobile      bool `db:"duplicate_customer_mobile"`
	DuplicateSupplierDisplayName bool `db:"duplicate_supplier_display_name"`
	DuplicateSupplierEmail       bool `db:"duplicate_supplier_email"`
	DuplicateSupplierMobile      bool `db:"duplicate_supplier_mobile"`
	ItemDuplicateName            bool `db:"item_duplicate_name"`

	HSNSACEnabled bool `db:"hsn_sac_enabled"`
	HSNDigits     int  `db:"hsn_digits"`

	OpeningStockDate time.Time `db:"opening_stock_date"`

	Brands        []byte `db:"brands"`        // JSONB
	Manufacturers []byte `db:"manufacturers"` // JSONB
	Categories    []byte `db:"categories"`    // JSONB
	Racks         []byte `db:"racks"`         // JSONB
	AuditFields
}
