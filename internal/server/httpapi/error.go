package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/common"
)

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredential),
		errors.Is(err, common.ErrAuthenticationFailed),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrDuplicateAccount),
		errors.Is(err, common.ErrDuplicateProfile):
		return http.StatusConflict
	case errors.Is(err, common.ErrAccountNotFound),
		errors.Is(err, common.ErrProfileNotFound),
		errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail logs the error and writes the mapped status with a terse JSON body.
// Internal failures never leak their message to the client.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)

	s.logger.Error(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"error", err.Error(),
	)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// badRequest reports a malformed request body.
func (s *Server) badRequest(c *gin.Context, err error) {
	s.fail(c, errors.Join(common.ErrValidation, err))
}
