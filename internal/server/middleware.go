package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jmath/jmath/internal/llm"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID reuses the caller's X-Request-ID or assigns a new one, echoes
// it on the response and makes it available to the LLM event log.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(llm.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// accessLog writes one line per request.
func accessLog(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(requestIDKey),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request")
		} else {
			entry.Info("request")
		}
	}
}

// recoverPanic answers a handler panic as an internal error.
func recoverPanic(log logrus.FieldLogger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(requestIDKey),
		}).Errorf("panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
			Error: fmt.Sprintf("%s%v", msgInternalPrefix, recovered),
		})
	}
}
