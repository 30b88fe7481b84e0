package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vivwell/api/pkg/auth"
	"github.com/vivwell/api/pkg/models"
)

// RequireAuth validates the Bearer token and puts the claims on the context.
// Revoked tokens are rejected through the blacklist when one is wired.
func RequireAuth(secret string, blacklist *auth.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Authorization header must be a Bearer token",
				})
			}

			claims, err := auth.ValidateJWTWithBlacklist(c.Request().Context(), token, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Token is invalid or expired",
				})
			}

			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
			c.Set("token", token)

			return next(c)
		}
	}
}
