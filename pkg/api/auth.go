package api

import (
	echo "github.com/labstack/echo/v5"
)

// extractUser extracts the acting user from oauth2-proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > "api-client" — the
// same precedence tarsy's extractAuthor uses for its chat author field.
func extractUser(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return "api-client"
}
