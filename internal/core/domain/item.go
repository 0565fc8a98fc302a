package domain

import "github.com/shopspring/decimal"

// ItemType distinguishes stocked goods from services.
type ItemType string

const (
	ItemTypeGoods   ItemType = "Goods"
	ItemTypeService ItemType = "Service"
)

// TaxPreference states whether an item attracts tax.
type TaxPreference string

const (
	TaxPreferenceTaxable    TaxPreference = "Taxable"
	TaxPreferenceNonTaxable TaxPreference = "Non-taxable"
)

// Item is the product/service master record.
type Item struct {
	ItemID         string   `json:"itemID"` // Primary Key (e.g., UUID)
	OrganizationID string   `json:"organizationID"`
	Name           string   `json:"name"`
	Type           ItemType `json:"type"`
	SKU            string   `json:"sku,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	HSNOrSAC       string   `json:"hsnOrSac,omitempty"`

	TaxPreference   TaxPreference `json:"taxPreference,omitempty"`
	TaxRate         string        `json:"taxRate,omitempty"` // TaxRate.Name, required when Taxable
	ExemptionReason string        `json:"exemptionReason,omitempty"`

	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CostPrice    decimal.Decimal `json:"costPrice"`

	SalesAccountID    string `json:"salesAccountID,omitempty"`    // FK -> accounts (Asset/Income/Sales)
	PurchaseAccountID string `json:"purchaseAccountID,omitempty"` // FK -> accounts (Liability/Expenses)

	OpeningStock      *decimal.Decimal `json:"openingStock,omitempty"`
	OpeningStockValue *decimal.Decimal `json:"openingStockValue,omitempty"`

	// BMCR classification, validated against the organization's lookup sets.
	Brand        string `json:"brand,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Category     string `json:"category,omitempty"`
	Rack         string `json:"rack,omitempty"`

	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
	AuditFields
}
