package models

import "github.com/shopspring/decimal"

// Item is the product/service master row.
type Item struct {
	ItemID         string `db:"item_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Type           string `db:"type"`
	SKU            string `db:"sku"`
	Unit           string `db:"unit"`
	HSNOrSAC       string `db:"hsn_or_sac"`

	TaxPreference   string `db:"tax_preference"`
	TaxRate         string `db:"tax_rate"`
	ExemptionReason string `db:"exemption_reason"`

	SellingPrice decimal.Decimal `db:"selling_price"`
	CostPrice    decimal.Decimal `db:"cost_price"`

	SalesAccountID    string `db:"sales_account_id"`
	PurchaseAccountID string `db:"purchase_account_id"`

	OpeningStock      *decimal.Decimal `db:"opening_stock"`
	OpeningStockValue *decimal.Decimal `db:"opening_stock_value"`

	Brand        string `db:"brand"`
	Manufacturer string `db:"manufacturer"`
	Category     string `db:"category"`
	Rack         string `db:"rack"`

	Description string `db:"description"`
	Status      string `db:"status"`
	AuditFields
}
