package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-tracker/internal/biddingerrors"
	"auction-tracker/utils"

	"github.com/gin-gonic/gin"
)

// Messages for malformed path and body input.
const (
	EmptyItemID         = "Item id must be specified"
	InvalidItemIDFormat = "Item id : %s, does not conform to the required format"
	ItemIDMismatch      = "Item id mismatch between request path and body"
)

// ParseItemID resolves a path parameter into a typed item identifier. On
// failure it writes a 400 response and returns false.
func ParseItemID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, 0, "Missing or invalid argument", []string{EmptyItemID})
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, 0, "Missing or invalid argument",
			[]string{fmt.Sprintf(InvalidItemIDFormat, raw)})
		return 0, false
	}
	return id, true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, 0, "invalid request payload", []string{err.Error()})
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code, internal
// error code and message
func MapErrorToHTTP(err error) (status, code int, message string) {
	switch {
	case errors.Is(err, biddingerrors.ErrNotFound):
		return http.StatusNotFound, 0, "Resource not found"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusUnprocessableEntity, 0, "Invalid resource"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, 0, "Resource operation error"
	default:
		return http.StatusInternalServerError, biddingerrors.CodeUnexpectedError, "System error"
	}
}

// RespondWithError maps a core error onto the wire: status, optional
// internal code and the error's context detail strings.
func RespondWithError(c *gin.Context, err error) {
	status, code, message := MapErrorToHTTP(err)

	var details []string
	var coreErr *biddingerrors.Error
	if errors.As(err, &coreErr) {
		details = coreErr.Reasons
		if coreErr.Code != 0 {
			code = coreErr.Code
		}
	}

	utils.JSONError(c, status, code, message, details)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
