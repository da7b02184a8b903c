package handlers

import (
	"net/http"

	"github.com/avolkov-dev/corptweet/backend/internal/middleware"
	"github.com/avolkov-dev/corptweet/backend/internal/monitoring"
	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	relationshipService services.RelationshipService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(relationshipService services.RelationshipService) *FollowHandler {
	return &FollowHandler{relationshipService: relationshipService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
}

// FollowUser subscribes the current user to another user's tweets
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid user ID")
	}

	if err := h.relationshipService.FollowUser(c.Request().Context(), user, targetID); err != nil {
		return writeServiceError(c, err)
	}

	monitoring.FollowChanges.WithLabelValues("follow").Inc()
	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnfollowUser removes the current user's subscription to another user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid user ID")
	}

	if err := h.relationshipService.UnfollowUser(c.Request().Context(), user, targetID); err != nil {
		return writeServiceError(c, err)
	}

	monitoring.FollowChanges.WithLabelValues("unfollow").Inc()
	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
