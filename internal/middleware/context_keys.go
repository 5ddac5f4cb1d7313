package middleware

import "github.com/gin-gonic/gin"

// userIDKey and organisationIDKey hold the authenticated identity in the
// request context.
const (
	userIDKey         = contextKey("userID")
	organisationIDKey = contextKey("organisationID")
)

// GetUserIDFromContext retrieves the authenticated owner ID.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetOrganisationIDFromContext returns the adviser organisation of the caller,
// or nil when the token carried none.
func GetOrganisationIDFromContext(c *gin.Context) *string {
	orgID, ok := c.Request.Context().Value(organisationIDKey).(string)
	if !ok || orgID == "" {
		return nil
	}
	return &orgID
}
