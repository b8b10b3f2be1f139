package configs

import (
	"github.com/spf13/viper"
)

// MetricsConfig Prometheus 指标配置，/metrics 与 pprof 挂载在主引擎上.
type MetricsConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	Endpoint       string `mapstructure:"endpoint"`        // watermill 指标监控地址
	RuntimeMetrics bool   `mapstructure:"runtime_metrics"` // 附带 Go 运行时与进程指标
}

func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.service_name", "ecotrack")
	v.SetDefault("metrics.endpoint", ":9090")
	v.SetDefault("metrics.runtime_metrics", true)
}
