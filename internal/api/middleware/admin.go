package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// AdminOnly rejects requests from non-admin users. Must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(CtxUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
			}
			if !user.IsAdmin {
				return domain.ErrNotAdmin
			}
			return next(c)
		}
	}
}
