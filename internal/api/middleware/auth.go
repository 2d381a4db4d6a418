package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUser     = "user"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// Auth validates the bearer token, rejects revoked tokens, loads the user
// behind the token's subject and injects it into the request context.
// Deactivated accounts are cut off here even when their token is still valid.
func Auth(secret string, users ports.UserRepository, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
			}

			claims := jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
			}

			if claims.ID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return err
				}
				if revoked {
					return domain.ErrTokenRevoked
				}
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Não foi possível validar as credenciais")
			}
			if !user.Ativo {
				return domain.ErrUserInactive
			}

			c.Set(CtxUser, user)
			c.Set(CtxTokenJTI, claims.ID)
			var exp time.Time
			if claims.ExpiresAt != nil {
				exp = claims.ExpiresAt.Time
			}
			c.Set(CtxTokenExp, exp)

			return next(c)
		}
	}
}
