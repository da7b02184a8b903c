package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/avolkov-dev/corptweet/backend/internal/middleware"
	"github.com/avolkov-dev/corptweet/backend/internal/monitoring"
	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/avolkov-dev/corptweet/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MediaHandler handles media upload HTTP requests
type MediaHandler struct {
	tweetService services.TweetService
	store        storage.MediaStore
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(tweetService services.TweetService, store storage.MediaStore) *MediaHandler {
	return &MediaHandler{tweetService: tweetService, store: store}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/medias", h.UploadMedia)
}

// UploadMedia accepts a multipart file, persists the bytes through the
// media store and records the unattached media row
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "No file part in the request")
	}
	if fileHeader.Filename == "" {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "No selected file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", "Unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logrus.WithError(err).Error("Failed to read uploaded file")
		return errorResponse(c, http.StatusInternalServerError, "ServerError", "Failed to read uploaded file")
	}

	filename, path, err := h.store.Save(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return errorResponse(c, http.StatusBadRequest, "ValidationError", "File type is not allowed")
		}
		logrus.WithError(err).Error("Failed to store uploaded file")
		return errorResponse(c, http.StatusInternalServerError, "ServerError", "Failed to store uploaded file")
	}

	mediaID, err := h.tweetService.UploadMedia(c.Request().Context(), user, filename, path)
	if err != nil {
		return writeServiceError(c, err)
	}

	monitoring.MediaUploaded.Inc()
	return c.JSON(http.StatusCreated, echo.Map{"result": true, "media_id": mediaID})
}
