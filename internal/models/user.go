package models

import (
	"database/sql"
	"time"
)

// User represents a back-office user row.
type User struct {
	UserID         string `db:"user_id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"`
	OrganizationID string `db:"organization_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token, stored hashed.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
