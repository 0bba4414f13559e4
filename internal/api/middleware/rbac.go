package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubsuite/backoffice/internal/api/metrics"
	"github.com/clubsuite/backoffice/internal/core/domain"
)

// RequirePermission enforces role-based access control: the role claim set by
// Auth must hold perm in the given table.
func RequirePermission(table *domain.PermissionTable, perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !table.HasPermission(domain.Role(role), perm) {
				metrics.PermissionDeniedTotal.WithLabelValues(string(perm)).Inc()
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"message": "forbidden",
				})
			}
			return next(c)
		}
	}
}
