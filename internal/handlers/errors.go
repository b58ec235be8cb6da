package handlers

import (
	"log/slog"
	"net/http"

	"trivia-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

// MethodNotAllowed answers requests whose path is routed but not for the
// request method.
func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// Recovery turns a panic in a later handler into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDKey),
			"panic", recovered,
		)
		abortWithStatus(c, http.StatusInternalServerError)
	})
}
