// Package metrics 维护服务的 Prometheus 指标：HTTP 请求量与时延、
// 废弃物记录摄入量，以及摄入两步写中活动日志缺失的一致性指标.
// 使用独立 Registry，避免第三方库向全局注册表塞入不受控指标.
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// IngestCounter 垃圾回收记录摄入计数器，按类型区分.
	IngestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_records_total",
			Help: "Total number of waste records ingested",
		},
		[]string{"type"},
	)

	// AuditLogMissingCounter 记录写入成功但活动日志写入失败的次数.
	// 摄入的两步写没有跨记录事务保证，这里必须能和完全成功的摄入区分开.
	AuditLogMissingCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_audit_log_missing_total",
			Help: "Waste records persisted without a correlated activity log entry",
		},
	)

	registry = prometheus.NewRegistry()
)

// InitMetrics 注册业务指标；按配置附带 Go 运行时与进程采集器.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	registry.MustRegister(RequestCounter, RequestDuration, IngestCounter, AuditLogMissingCounter)

	return nil
}

// StartMetricsServer 在主引擎上挂载 /metrics 与 pprof 端点.
func StartMetricsServer(config configs.MetricsConfig, engine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	engine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))

	return nil
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}
