package middlewares

import (
	"strconv"
	"time"

	"dailydiet/telemetry"

	"github.com/gin-gonic/gin"
)

// Instrument records request counts and durations labelled by route template.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		telemetry.RequestStarted()
		defer telemetry.RequestFinished()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		telemetry.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
