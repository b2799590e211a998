package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dgsw/bookice/pkg/metrics"
)

// Metrics HTTP指标采集中间件
//
// 设计说明:
// 1. 按方法+路由模板+状态码统计请求量,路由模板(c.FullPath)避免
//    /api/books/1、/api/books/2这类路径把标签基数打爆
// 2. 直方图记录耗时分布,用于计算P95/P99
// 3. 进行中请求数用Gauge,请求结束时递减
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			// 未匹配到路由(404),统一归档避免基数膨胀
			path = "unmatched"
		}

		metrics.HTTPRequestsInProgress.Inc()
		startTime := time.Now()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(startTime).Seconds())
	}
}
