package api_middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/itacademy/dice-game-api/internal/auth"
)

// SetupJWTMiddleware protects a route group with bearer tokens. The
// token service resolves the token to a principal, which is stored on
// the context for handlers to pick up.
func SetupJWTMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Parse(c.Request().Context(), tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthenticated."})
		},
	})
}

// CurrentPrincipal returns the authenticated identity on the request,
// or nil on unprotected routes.
func CurrentPrincipal(c echo.Context) *auth.Principal {
	p, _ := c.Get("user").(*auth.Principal)
	return p
}
