package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

// RequireRoles guards an endpoint with role-based access control. Without an
// attached principal the request is rejected with 401; with a principal whose
// role set does not intersect the required set, 403. Multiple roles are
// OR-combined.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !p.HasAnyRole(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privilege")
			}
			return next(c)
		}
	}
}
