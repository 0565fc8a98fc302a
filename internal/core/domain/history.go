package domain

// History title vocabulary. Every recorded entry uses one of these tags.
const (
	TitleCustomerAdded          = "Customer Added"
	TitleCustomerAccountCreated = "Customer Account Created"
	TitleCustomerDataModified   = "Customer Data Modified"
	TitleCustomerStatusModified = "Customer Status Modified"

	TitleSupplierAdded          = "Supplier Added"
	TitleSupplierAccountCreated = "Supplier Account Created"
	TitleSupplierDataModified   = "Supplier Data Modified"
	TitleSupplierStatusModified = "Supplier Status Modified"
)

// History is one append-only audit entry for a party. Entries are never
// edited or deleted.
type History struct {
	HistoryID        string    `json:"historyID"` // Primary Key (e.g., UUID)
	OrganizationID   string    `json:"organizationID"`
	PartyKind        PartyKind `json:"-"`
	PartyID          string    `json:"partyID"`
	PartyDisplayName string    `json:"partyDisplayName"` // Denormalized for fast listing
	OperationID      string    `json:"operationID"`      // Id of the record that changed
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ActingUserID     string    `json:"actingUserID"`
	ActingUserName   string    `json:"actingUserName"`
	AuditFields
}
