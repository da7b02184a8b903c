package handlers

import (
	"net/http"
	"strconv"

	"github.com/avolkov-dev/corptweet/backend/internal/middleware"
	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/monitoring"
	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// TweetHandler handles tweet and timeline HTTP requests
type TweetHandler struct {
	tweetService    services.TweetService
	timelineService services.TimelineService
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetService services.TweetService, timelineService services.TimelineService) *TweetHandler {
	return &TweetHandler{
		tweetService:    tweetService,
		timelineService: timelineService,
	}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.POST("/tweets", h.CreateTweet)
	g.GET("/tweets", h.GetTimeline)
	g.DELETE("/tweets/:id", h.DeleteTweet)
	g.POST("/tweets/:id/likes", h.LikeTweet)
	g.DELETE("/tweets/:id/likes", h.UnlikeTweet)
}

// CreateTweet posts a new tweet for the current user
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", err.Error())
	}

	tweetID, err := h.tweetService.CreateTweet(c.Request().Context(), user, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		return writeServiceError(c, err)
	}

	monitoring.TweetsCreated.Inc()
	return c.JSON(http.StatusCreated, echo.Map{"result": true, "tweet_id": tweetID})
}

// GetTimeline returns the current user's feed, newest first
func (h *TweetHandler) GetTimeline(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tweets, err := h.timelineService.GetTimeline(c.Request().Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweets": tweets})
}

// DeleteTweet removes one of the current user's tweets
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid tweet ID")
	}

	if err := h.tweetService.DeleteTweet(c.Request().Context(), user, tweetID); err != nil {
		return writeServiceError(c, err)
	}

	monitoring.TweetsDeleted.Inc()
	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// LikeTweet adds the current user's like to a tweet
func (h *TweetHandler) LikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid tweet ID")
	}

	if err := h.tweetService.LikeTweet(c.Request().Context(), user, tweetID); err != nil {
		return writeServiceError(c, err)
	}

	monitoring.LikeChanges.WithLabelValues("like").Inc()
	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnlikeTweet removes the current user's like from a tweet
func (h *TweetHandler) UnlikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Invalid tweet ID")
	}

	if err := h.tweetService.UnlikeTweet(c.Request().Context(), user, tweetID); err != nil {
		return writeServiceError(c, err)
	}

	monitoring.LikeChanges.WithLabelValues("unlike").Inc()
	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
