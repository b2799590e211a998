// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型选择：
// - 计数用Counter：请求数、图书创建/删除数、库存调整数
// - 瞬时值用Gauge：正在处理的请求数
// - 分布用Histogram：HTTP请求耗时（自动计算P50、P90、P99）
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/400/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BooksCreatedTotal 图书登记总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// BooksDeletedTotal 图书删除总数（Counter）
	BooksDeletedTotal prometheus.Counter

	// StockAdjustmentsTotal 库存调整总数（Counter）
	// 标签：op（increase/decrease）、result（success/failure）
	StockAdjustmentsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书登记总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		},
	)

	StockAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_adjustments_total",
			Help: "库存调整总数",
		},
		[]string{"op", "result"},
	)
}
