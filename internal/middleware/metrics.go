package middleware

import (
	"strconv"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics 记录每个请求的耗时与状态码
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
