package models

import "github.com/shopspring/decimal"

// Party carries the customer/supplier columns. Address blocks and nested
// collections are persisted as JSONB.
type Party struct {
	OrganizationID string `db:"organization_id"`

	Salutation  string `db:"salutation"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	CompanyName string `db:"company_name"`
	DisplayName string `db:"display_name"`
	Email       string `db:"email"`
	Mobile      string `db:"mobile"`
	WorkPhone   string `db:"work_phone"`
	Website     string `db:"website"`
	PAN         string `db:"pan"`

	TaxType      string `db:"tax_type"`
	GSTTreatment string `db:"gst_treatment"`
	GSTIN        string `db:"gstin"`
	VATTreatment string `db:"vat_treatment"`
	VATNumber    string `db:"vat_number"`
	TaxReason    string `db:"tax_reason"`

	PlaceOfSupply  string `db:"place_of_supply"`
	SourceOfSupply string `db:"source_of_supply"`
	CurrencyID     string `db:"currency_id"`

	DebitOpeningBalance  *decimal.Decimal `db:"debit_opening_balance"`
	CreditOpeningBalance *decimal.Decimal `db:"credit_opening_balance"`
	InterestPercentage   string           `db:"interest_percentage"`
	PaymentTerms         string           `db:"payment_terms"`

	BillingAddress  []byte `db:"billing_address"`  // JSONB
	ShippingAddress []byte `db:"shipping_address"` // JSONB
	ContactPersons  []byte `db:"contact_persons"`  // JSONB
	BankDetails     []byte `db:"bank_details"`     // JSONB

	Remarks string `db:"remarks"`
	Status  string `db:"status"`
}

// Customer row in the customers table.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	CustomerType string `db:"customer_type"`
	Party
	AuditFields
}

// Supplier row in the suppliers table.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Party
	AuditFields
}
