package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalance is the opening-balance posting row.
type TrialBalance struct {
	TrialBalanceID string           `db:"trial_balance_id"`
	OrganizationID string           `db:"organization_id"`
	OperationID    string           `db:"operation_id"`
	AccountID      string           `db:"account_id"`
	DebitAmount    *decimal.Decimal `db:"debit_amount"`
	CreditAmount   *decimal.Decimal `db:"credit_amount"`
	Date           time.Time        `db:"date"`
	AuditFields
}

// ItemTrack is one stock-ledger movement row.
type ItemTrack struct {
	ItemTrackID    string          `db:"item_track_id"`
	OrganizationID string          `db:"organization_id"`
	ItemID         string          `db:"item_id"`
	Action         string          `db:"action"`
	DebitQuantity  decimal.Decimal `db:"debit_quantity"`
	CreditQuantity decimal.Decimal `db:"credit_quantity"`
	SellingPrice   decimal.Decimal `db:"selling_price"`
	CostPrice      decimal.Decimal `db:"cost_price"`
	Date           time.Time       `db:"date"`
	AuditFields
}

// History is one append-only audit row (customer_history / supplier_history).
type History struct {
	HistoryID        string `db:"history_id"`
	OrganizationID   string `db:"organization_id"`
	PartyID          string `db:"party_id"`
	PartyDisplayName string `db:"party_display_name"`
	OperationID      string `db:"operation_id"`
	Title            string `db:"title"`
	Description      string `db:"description"`
	ActingUserID     string `db:"acting_user_id"`
	ActingUserName   string `db:"acting_user_name"`
	AuditFields
}
