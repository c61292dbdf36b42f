package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Context keys set by Identity.
const (
	ctxBorrowerID = "borrower_id"
	ctxIsOwner    = "is_owner"
)

// Identity resolves the authenticated caller from the Ax-Borrower-Id header
// (32-char lowercase hex, stamped by the gateway in front of this service)
// and marks the platform owner when the id matches the configured one.
// Handlers downstream read the result via BorrowerID / IsOwner.
func Identity(ownerID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			borrowerID := strings.TrimSpace(c.Request().Header.Get("Ax-Borrower-Id"))
			if borrowerID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Borrower-Id"})
			}
			if !reHex32.MatchString(borrowerID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Ax-Borrower-Id"})
			}
			c.Set(ctxBorrowerID, borrowerID)
			c.Set(ctxIsOwner, ownerID != "" && borrowerID == ownerID)
			return next(c)
		}
	}
}

// BorrowerID returns the authenticated caller id, or "" outside Identity.
func BorrowerID(c echo.Context) string {
	if v, ok := c.Get(ctxBorrowerID).(string); ok {
		return v
	}
	return ""
}

// IsOwner reports whether the caller holds the owner role.
func IsOwner(c echo.Context) bool {
	v, _ := c.Get(ctxIsOwner).(bool)
	return v
}
