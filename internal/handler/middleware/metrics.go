package middleware

import (
	"time"

	"spot-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
