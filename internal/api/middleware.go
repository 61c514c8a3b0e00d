package api

import (
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"carelog/health-info-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Header and context key for the per-request id.
const (
	RequestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware assigns every request a uuid, honoring one the
// caller already sent.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLoggerMiddleware logs one structured line per request.
func RequestLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
		} else {
			logger.Info("request", fields...)
		}
	}
}

// RecoveryMiddleware converts panics into the generic 500 body. The
// stack trace is included only outside production mode.
func RecoveryMiddleware(logger *zap.Logger, mode string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		)

		body := gin.H{"message": "Internal server error"}
		if mode != "production" {
			body["stack"] = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}

// abortWithError sends the uniform {"message": ...} error body.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// handleServiceError maps a service failure onto the HTTP taxonomy:
// validation failures are 400, missing records 404, everything else is
// a store error surfaced as 500 with the message passed through.
func handleServiceError(c *gin.Context, err error) {
	var validationErr service.ValidationError
	var notFoundErr service.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		abortWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		abortWithError(c, http.StatusNotFound, notFoundErr.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
