package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service errors onto HTTP status codes. Client-side
// failures return the error text; anything else is reported as the fallback.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrEmptyFile),
		errors.Is(err, apperrors.ErrMissingColumn):
		return http.StatusBadRequest, true
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrFileTooLarge),
		errors.Is(err, apperrors.ErrTooManyRows):
		return http.StatusRequestEntityTooLarge, true
	case errors.Is(err, apperrors.ErrClassifierOutput):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, apperrors.ErrClassifierUnavailable):
		return http.StatusBadGateway, true
	}
	return http.StatusInternalServerError, false
}

// respondError logs err at a level matching its status and writes the JSON
// error body.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, exposed := statusForError(err)

	msg := fallback
	if exposed {
		msg = err.Error()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	_ = c.Error(err)
	c.JSON(status, errorResponse{Error: msg})
}

// requireOwner returns the authenticated owner, writing 401 when absent.
func requireOwner(c *gin.Context) (string, bool) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return "", false
	}
	return ownerID, true
}

func badRequest(c *gin.Context, msg string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg + ": " + err.Error()})
}
