// Package endpoint provides standalone operational HTTP endpoints.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks connectivity of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health returns a handler that reports service health. When db is non-nil
// its connectivity is included; a failing ping degrades the report to 503.
func Health(serviceName, version string, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		httpStatus := http.StatusOK
		components := gin.H{}

		if db != nil {
			if err := db.Ping(c.Request.Context()); err != nil {
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
				components["database"] = "unhealthy"
			} else {
				components["database"] = "ok"
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"version":    version,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
