package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/middleware"
)

// MessageResponse is the uniform body for error and plain-message replies.
// Message is a string for single-message responses and a []string when the
// validation or duplicate engine produced multiple messages.
type MessageResponse struct {
	Message any `json:"message"`
}

const genericErrorMessage = "Something went wrong, please try again later"

// respondError translates service errors to the wire contract: validation
// errors return 400 with every message, duplicate conflicts 409 with every
// message, not-found 404 with notFoundMsg, everything else 500 generic.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: validationErr.Messages})
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, MessageResponse{Message: conflictErr.Messages})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, MessageResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: notFoundMsg})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: genericErrorMessage})
	}
}

// bindError renders a 400 for malformed request bodies.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request format: " + err.Error()})
}

// requestIdentity pulls the authenticated user and organization; aborts with
// 401 when either is missing.
func requestIdentity(c *gin.Context) (userID, organizationID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
		return "", "", false
	}
	organizationID, ok = middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "No organization selected"})
		return "", "", false
	}
	return userID, organizationID, true
}
