package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalance is the opening-balance posting generated for a party. Exactly
// one of DebitAmount/CreditAmount is set; editing one side clears the other.
type TrialBalance struct {
	TrialBalanceID string           `json:"trialBalanceID"` // Primary Key (e.g., UUID)
	OrganizationID string           `json:"organizationID"`
	OperationID    string           `json:"operationID"` // Owning party id
	AccountID      string           `json:"accountID"`   // Companion account row id
	DebitAmount    *decimal.Decimal `json:"debitAmount,omitempty"`
	CreditAmount   *decimal.Decimal `json:"creditAmount,omitempty"`
	Date           time.Time        `json:"date"`
	AuditFields
}

// ItemTrackActionOpeningStock marks the single opening-stock row of an item.
const ItemTrackActionOpeningStock = "Opening Stock"

// ItemTrack is one stock-ledger movement for an item. Debit quantities
// increase stock, credit quantities consume it; current stock is always the
// aggregate of all rows, never a stored counter.
type ItemTrack struct {
	ItemTrackID    string          `json:"itemTrackID"` // Primary Key (e.g., UUID)
	OrganizationID string          `json:"organizationID"`
	ItemID         string          `json:"itemID"`
	Action         string          `json:"action"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	CreditQuantity decimal.Decimal `json:"creditQuantity"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	Date           time.Time       `json:"date"`
	AuditFields
}
