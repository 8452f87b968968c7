package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

// ErrorHandler turns errors attached to the gin context into one JSON error
// response. Typed errors choose their own HTTP status through StatusCode().
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)

		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request error")
		}

		lastErr := c.Errors.Last()
		status := http.StatusInternalServerError
		message := "internal server error"

		// Only the typed message crosses the wire; wrapped driver and query
		// errors stay in the log.
		var appErr *apperrors.AppError
		if errors.As(lastErr.Err, &appErr) && appErr.Code != apperrors.ErrInternal {
			status = appErr.StatusCode()
			message = appErr.Message
		}

		c.JSON(status, handler.NewErrorResponse(message))
	}
}
