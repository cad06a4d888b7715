package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the VALIDATION_ERROR discriminator used
// for rule violations that are the caller's fault but not malformed input
// (overlapping leave, duplicate names, double checkout).
type ValidationErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

const validationErrorType = "VALIDATION_ERROR"

// respondError maps service errors to HTTP statuses. Anything unmapped is a
// 500 with a generic body; the cause goes to the log only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrOverlappingLeave),
		errors.Is(err, apperrors.ErrAlreadyCheckedOut),
		errors.Is(err, apperrors.ErrNoCheckInToday),
		errors.Is(err, apperrors.ErrInvalidAttendanceType),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: err.Error(), Type: validationErrorType})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrMisconfiguredAccount):
		// Never leak which check failed.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Insufficient role"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// pathID parses a positive integer path parameter, responding 400 itself on
// malformed input.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := parseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
