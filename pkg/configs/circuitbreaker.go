package configs

import "github.com/spf13/viper"

// CircuitBreakerConfig 熔断配置：统计周期内失败率超阈值则打开，
// 打开持续 timeout 秒后进入半开试探.
type CircuitBreakerConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	FailureRate       float64 `mapstructure:"failure_rate"`         // 失败比例阈值 [0,1]
	MinRequests       uint32  `mapstructure:"min_requests"`         // 进入统计的最小样本量
	IntervalSeconds   int     `mapstructure:"interval_seconds"`     // 统计周期
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`      // 打开状态持续时间
	MaxRequestsInHalf uint32  `mapstructure:"max_requests_in_half"` // 半开状态放行的请求数
}

func (c *CircuitBreakerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("circuit_breaker.enabled", false)
	v.SetDefault("circuit_breaker.failure_rate", 0.5)
	v.SetDefault("circuit_breaker.min_requests", 20)
	v.SetDefault("circuit_breaker.timeout_seconds", 30)
	v.SetDefault("circuit_breaker.interval_seconds", 60)
	v.SetDefault("circuit_breaker.max_requests_in_half", 5)
}
