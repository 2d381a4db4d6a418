package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/api/middleware"
	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth middleware.
// Its absence means the route was registered without the middleware, which is
// a wiring mistake, so fail closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CtxUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
	}
	return user, nil
}
