package dto

// RegisterRequest defines the data needed to sign up a user.
type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	OrganizationID string `json:"organizationID"`
}

// LoginRequest defines the credentials accepted at login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login/refresh.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
	UserID      string `json:"userID"`
	Name        string `json:"name"`
}

// RefreshRequest identifies the user presenting a refresh token cookie.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required"`
}
