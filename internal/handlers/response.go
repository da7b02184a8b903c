package handlers

import (
	"errors"
	"net/http"

	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// All responses share one JSON envelope: {"result": true, ...} on
// success, {"result": false, "error_type", "error_message"} otherwise.

func errorResponse(c echo.Context, status int, errorType, message string) error {
	return c.JSON(status, echo.Map{
		"result":        false,
		"error_type":    errorType,
		"error_message": message,
	})
}

// writeServiceError maps the service error taxonomy onto HTTP
// statuses. Persistence failures log the underlying cause and answer
// with a generic message.
func writeServiceError(c echo.Context, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return errorResponse(c, http.StatusBadRequest, "ValidationError", ve.Error())
	}

	switch {
	case errors.Is(err, services.ErrTweetNotFound), errors.Is(err, services.ErrUserNotFound):
		return errorResponse(c, http.StatusNotFound, "NotFoundError", err.Error())
	case errors.Is(err, services.ErrNotTweetOwner):
		return errorResponse(c, http.StatusForbidden, "PermissionError", err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		return errorResponse(c, http.StatusBadRequest, "ValidationError", err.Error())
	}

	logrus.WithError(err).Error("Operation failed")
	return errorResponse(c, http.StatusInternalServerError, "ServerError", "Internal server error")
}
