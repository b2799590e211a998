package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BooksCreatedTotal == nil {
		t.Error("BooksCreatedTotal未初始化")
	}
	if BooksDeletedTotal == nil {
		t.Error("BooksDeletedTotal未初始化")
	}
	if StockAdjustmentsTotal == nil {
		t.Error("StockAdjustmentsTotal未初始化")
	}
}

// TestInitMetricsIdempotent 测试重复初始化不会panic
// promauto对同名指标重复注册会panic,InitMetrics必须幂等
func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
	InitMetrics()
}

// TestBusinessCounters 测试业务计数器
func TestBusinessCounters(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(BooksCreatedTotal)
	BooksCreatedTotal.Inc()
	BooksCreatedTotal.Inc()
	after := testutil.ToFloat64(BooksCreatedTotal)

	if after-before != 2 {
		t.Errorf("Counter递增错误: expected=+2, got=%f", after-before)
	}
}

// TestStockAdjustmentLabels 测试库存调整指标标签
func TestStockAdjustmentLabels(t *testing.T) {
	InitMetrics()

	StockAdjustmentsTotal.WithLabelValues("increase", "success").Inc()
	StockAdjustmentsTotal.WithLabelValues("decrease", "failure").Inc()
	StockAdjustmentsTotal.WithLabelValues("decrease", "failure").Inc()

	got := testutil.ToFloat64(StockAdjustmentsTotal.WithLabelValues("decrease", "failure"))
	if got != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", got)
	}
}
