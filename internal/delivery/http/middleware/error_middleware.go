package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

// ErrorHandler converts errors attached to the gin context into the JSON
// envelope. Anything that is not an AppError or a domain sentinel is logged
// and hidden behind a generic 500; driver and filesystem details never reach
// clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"request_id", c.Writer.Header().Get("X-Request-ID"),
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Not found")
		default:
			logger.Log.Error("request failed",
				"path", c.Request.URL.Path,
				"request_id", c.Writer.Header().Get("X-Request-ID"),
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}
