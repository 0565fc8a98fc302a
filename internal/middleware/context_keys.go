package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// organizationIDKey is the key used to store the authenticated user's
// organization ID in the request context.
const organizationIDKey = contextKey("organizationID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetOrganizationIDFromContext retrieves the authenticated user's organization
// ID from the Gin context. It returns the ID and a boolean indicating if it
// was found.
func GetOrganizationIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(organizationIDKey); v != nil {
		if orgID, ok := v.(string); ok && orgID != "" {
			return orgID, true
		}
	}
	return "", false
}
