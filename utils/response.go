package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIError is the error body returned by every failing endpoint.
type APIError struct {
	Status         string   `json:"status"`
	StatusCode     int      `json:"status_code"`
	Code           int      `json:"code,omitempty"`
	Message        string   `json:"message"`
	ISODateTime    string   `json:"iso_date_time"`
	ContextDetails []string `json:"context_details"`
}

// NewAPIError builds an error body with a UTC timestamp. code is the
// optional internal error code (0 omits it).
func NewAPIError(status, code int, message string, contextDetails []string) APIError {
	if contextDetails == nil {
		contextDetails = []string{}
	}
	return APIError{
		Status:         http.StatusText(status),
		StatusCode:     status,
		Code:           code,
		Message:        message,
		ISODateTime:    time.Now().UTC().Format(time.RFC3339),
		ContextDetails: contextDetails,
	}
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status, code int, message string, contextDetails []string) {
	c.JSON(status, NewAPIError(status, code, message, contextDetails))
}
