package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "readin/pkg/errors"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError converts usecase errors to appropriate HTTP responses. Typed
// errors carry their own status; anything else is an opaque 500.
func writeError(c *gin.Context, err error) {
	var statusErr apperrors.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.HTTPStatus(), ErrorResponse{
			Error:   statusErr.Code(),
			Message: statusErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
