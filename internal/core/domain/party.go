package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes the two party entity types that share the
// opening-balance ledger machinery.
type PartyKind string

const (
	PartyCustomer PartyKind = "Customer"
	PartySupplier PartyKind = "Supplier"
)

// AccountCodePrefix returns the prefix used when generating sequential
// account codes for this party kind.
func (k PartyKind) AccountCodePrefix() string {
	if k == PartySupplier {
		return "SU"
	}
	return "CU"
}

// Address is a billing or shipping address attached to a party.
type Address struct {
	Attention     string `json:"attention,omitempty"`
	Street        string `json:"street,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"stateProvince,omitempty"`
	Country       string `json:"country,omitempty"`
	PinCode       string `json:"pinCode,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Fax           string `json:"fax,omitempty"`
}

// ContactPerson is an additional named contact on a party record.
type ContactPerson struct {
	Salutation  string `json:"salutation,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	WorkPhone   string `json:"workPhone,omitempty"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
}

// BankDetail is a supplier bank account used for payouts.
type BankDetail struct {
	AccountHolderName string `json:"accountHolderName,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	IFSC              string `json:"ifsc,omitempty"`
}

// Party carries the fields shared by Customer and Supplier. The display name
// is the only universally required field; everything else is optional and an
// empty value means "not provided" (the request cleaner strips empty keys).
type Party struct {
	OrganizationID string `json:"organizationID"`

	Kind        PartyKind `json:"-"`
	Salutation  string    `json:"salutation,omitempty"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email,omitempty"`
	Mobile      string    `json:"mobile,omitempty"`
	WorkPhone   string    `json:"workPhone,omitempty"`
	Website     string    `json:"website,omitempty"`
	PAN         string    `json:"pan,omitempty"`

	TaxType      TaxType `json:"taxType,omitempty"`
	GSTTreatment string  `json:"gstTreatment,omitempty"`
	GSTIN        string  `json:"gstin,omitempty"`
	VATTreatment string  `json:"vatTreatment,omitempty"`
	VATNumber    string  `json:"vatNumber,omitempty"`
	TaxReason    string  `json:"taxReason,omitempty"` // Exemption reason under Non-Tax

	PlaceOfSupply  string `json:"placeOfSupply,omitempty"`  // Customers
	SourceOfSupply string `json:"sourceOfSupply,omitempty"` // Suppliers
	CurrencyID     string `json:"currencyID,omitempty"`

	DebitOpeningBalance  *decimal.Decimal `json:"debitOpeningBalance,omitempty"`
	CreditOpeningBalance *decimal.Decimal `json:"creditOpeningBalance,omitempty"`
	InterestPercentage   string           `json:"interestPercentage,omitempty"`
	PaymentTerms         string           `json:"paymentTerms,omitempty"`

	BillingAddress  Address         `json:"billingAddress,omitempty"`
	ShippingAddress Address         `json:"shippingAddress,omitempty"`
	ContactPersons  []ContactPerson `json:"contactPersons,omitempty"`
	BankDetails     []BankDetail    `json:"bankDetails,omitempty"` // Suppliers only

	Remarks string `json:"remarks,omitempty"`
	Status  Status `json:"status"`
}

// Customer is a party on the receivables side.
type Customer struct {
	CustomerID   string `json:"customerID"` // Primary Key (e.g., UUID)
	CustomerType string `json:"customerType,omitempty"`
	Party
	AuditFields
}

// Supplier is a party on the payables side.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (e.g., UUID)
	Party
	AuditFields
}

// NormalizeTaxFields blanks the GST/VAT identifiers when the party is
// Non-Tax; only the exemption reason survives. A party switched from GST or
// VAT to Non-Tax must not keep its stale registration numbers.
func (p *Party) NormalizeTaxFields() {
	if p.TaxType != TaxTypeNonTax {
		return
	}
	p.GSTTreatment = ""
	p.GSTIN = ""
	p.VATTreatment = ""
	p.VATNumber = ""
}

// OpeningBalanceSides reports which opening-balance side(s) carry a value.
func (p *Party) OpeningBalanceSides() (debit, credit bool) {
	debit = p.DebitOpeningBalance != nil && !p.DebitOpeningBalance.IsZero()
	credit = p.CreditOpeningBalance != nil && !p.CreditOpeningBalance.IsZero()
	return debit, credit
}
