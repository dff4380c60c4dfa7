package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader is the header carrying the per-request correlation
// id, generated here if the caller did not supply one (grounded on
// rendis-doc-assembly's Operation middleware).
const requestIDHeader = "X-Request-ID"

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)

		slog.Info("request started", slog.String("request_id", id), slog.String("path", c.Request.URL.Path))
		c.Next()
		slog.Info("request completed", slog.String("request_id", id), slog.Int("status", c.Writer.Status()))
	}
}
