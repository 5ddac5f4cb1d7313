package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cashmap/internal/core/ports/integrations"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains routes that are never tracked.
var pathsToSkip = map[string]bool{
	"/health":         true,
	"/swagger/*any":   true,
	"/api/v1/uploads": true,
}

// PosthogMiddleware tracks successful authenticated API calls. Imports are
// skipped here because the import service reports its own richer event.
func PosthogMiddleware(tracker integrations.EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || pathsToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/budget/waterfall" -> "api_v1_budget_waterfall"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		eventName = strings.ReplaceAll(eventName, ":", "")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, eventName, props)
	}
}
