package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						slog.String("path", c.FullPath()),
						slog.Any("error", appErr.Err))
				}
				response.ErrorNext(c, appErr.Code, appErr.Message, nil, appErr.Next)
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("unhandled error",
					slog.String("path", c.FullPath()),
					slog.Any("error", err))
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
