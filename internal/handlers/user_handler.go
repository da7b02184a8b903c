package handlers

import (
	"net/http"

	"github.com/avolkov-dev/corptweet/backend/internal/middleware"
	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles profile HTTP requests
type UserHandler struct {
	profileService services.ProfileService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profileService services.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// RegisterProfileRoutes registers profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMyProfile)
	g.GET("/users/:id", h.GetUserProfile)
}

// GetMyProfile returns the current user's profile
func (h *UserHandler) GetMyProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	profile, err := h.profileService.GetProfile(c.Request().Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": profile})
}

// GetUserProfile returns the profile of the user identified by :id
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid user ID")
	}

	profile, err := h.profileService.GetProfileByID(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": profile})
}
