package middleware

import (
	"errors"
	"net/http"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// userContextKey is where the resolved user is stored on the echo context
const userContextKey = "currentUser"

// APIKeyAuthMiddleware resolves the api-key request header to a user
// and stores it on the context. A missing header is unauthorized; an
// unknown key is forbidden.
func APIKeyAuthMiddleware(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get("api-key")
			if apiKey == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "API key missing"})
			}

			user, err := userRepo.GetUserByAPIKey(c.Request().Context(), apiKey)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid API key"})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve API key")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by APIKeyAuthMiddleware, or
// nil outside an authenticated route
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
