package domain

import "time"

// Settings are the per-organization policy toggles. Duplicate checking is
// per-field: each flag independently turns exact-match enforcement on or off.
type Settings struct {
	SettingsID     string `json:"settingsID"` // Primary Key (e.g., UUID)
	OrganizationID string `json:"organizationID"`

	DuplicateCustomerDisplayName bool `json:"duplicateCustomerDisplayName"`
	DuplicateCustomerEmail       bool `json:"duplicateCustomerEmail"`
	DuplicateCustomerMobile      bool `json:"duplicateCustomerMobile"`

	DuplicateSupplierDisplayName bool `json:"duplicateSupplierDisplayName"`
	DuplicateSupplierEmail       bool `json:"duplicateSupplierEmail"`
	DuplicateSupplierMobile      bool `json:"duplicateSupplierMobile"`

	ItemDuplicateName bool `json:"itemDuplicateName"`

	HSNSACEnabled bool `json:"hsnSac"`
	HSNDigits     int  `json:"hsnDigits"` // 4 or 6

	OpeningStockDate time.Time `json:"openingStockDate"`

	// BMCR lookup sets items are validated against.
	Brands        []string `json:"brands,omitempty"`
	Manufacturers []string `json:"manufacturers,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Racks         []string `json:"racks,omitempty"`

	AuditFields
}

// DuplicateFlags extracts the three per-field duplicate toggles for a party kind.
func (s *Settings) DuplicateFlags(kind PartyKind) (displayName, email, mobile bool) {
	if kind == PartySupplier {
		return s.DuplicateSupplierDisplayName, s.DuplicateSupplierEmail, s.DuplicateSupplierMobile
	}
	return s.DuplicateCustomerDisplayName, s.DuplicateCustomerEmail, s.DuplicateCustomerMobile
}
