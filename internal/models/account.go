package models

// Account is the chart-of-accounts row.
type Account struct {
	ID             string `db:"id"`
	OrganizationID string `db:"organization_id"`
	AccountID      string `db:"account_id"` // Owning party id; nullable
	AccountCode    string `db:"account_code"`
	AccountName    string `db:"account_name"`
	AccountGroup   string `db:"account_group"`
	AccountHead    string `db:"account_head"`
	AccountSubhead string `db:"account_subhead"`
	Status         string `db:"status"`
	AuditFields
}
