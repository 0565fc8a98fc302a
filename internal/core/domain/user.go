package domain

import "time"

// User represents a back-office user of the application in the domain.
type User struct {
	UserID         string `json:"userID"` // Primary Key (e.g., UUID)
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"`
	OrganizationID string `json:"organizationID"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
