package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/helpers"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHeader carries the raw token string, no Bearer prefix.
const AuthHeader = "x-auth-token"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		// Log request completion
		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Handle any errors that occurred during request processing
		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			// Error details stay server-side
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			}
		}
	}
}

// AuthMiddleware admits a request only when the x-auth-token header carries a
// verifiable token. Rejection aborts the chain immediately; downstream
// handlers never run without verified claims in the context.
func AuthMiddleware(tokens *helpers.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Msg("No token, authorization denied"))
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			logger.Info("Token rejected",
				"path", c.Request.URL.Path,
				"error", err,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Msg("Invalid token, authorization denied"))
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
