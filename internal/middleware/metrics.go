package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// pageRequests counts handled requests by method and status; exposed on
// the private listener's /metrics endpoint.
var pageRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cms_page_requests_total",
		Help: "Handled page requests by method and status.",
	},
	[]string{"method", "status"},
)

func init() {
	prometheus.MustRegister(pageRequests)
}

// Metrics 创建请求计数中间件
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		pageRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
