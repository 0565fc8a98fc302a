package domain

// Account is a chart-of-accounts entry. Customer and Supplier records own a
// companion Account (AccountID references the party), while items reference
// free-standing sales/purchase accounts by id.
type Account struct {
	ID             string `json:"id"`             // Primary Key (e.g., UUID)
	OrganizationID string `json:"organizationID"` // FK -> organizations
	AccountID      string `json:"accountID"`      // Owning party id; empty for stand-alone accounts
	AccountCode    string `json:"accountCode"`    // Sequential human-readable code, e.g. "CU0001"
	AccountName    string `json:"accountName"`    // Mirrors the party display name
	AccountGroup   string `json:"accountGroup"`   // "Asset" | "Liability" | ...
	AccountHead    string `json:"accountHead"`
	AccountSubhead string `json:"accountSubhead"`
	Status         Status `json:"status"`
	AuditFields
}

// AccountClassification fixes the group/head/subhead triple assigned to a
// generated companion account.
type AccountClassification struct {
	Group   string
	Head    string
	Subhead string
}

// Fixed classifications for generated party accounts.
var (
	CustomerAccountClassification = AccountClassification{
		Group:   "Asset",
		Head:    "Current Assets",
		Subhead: "Sundry Debtors",
	}
	SupplierAccountClassification = AccountClassification{
		Group:   "Liability",
		Head:    "Current Liabilities",
		Subhead: "Sundry Creditors",
	}
)

// Structure requirements for accounts an Item may reference.
const (
	SalesAccountGroup   = "Asset"
	SalesAccountHead    = "Income"
	SalesAccountSubhead = "Sales"

	PurchaseAccountGroup = "Liability"
	PurchaseAccountHead  = "Expenses"
)

// PurchaseAccountSubheads are the subheads accepted for an item's purchase account.
var PurchaseAccountSubheads = []string{"Expense", "Cost of Goods Sold"}
