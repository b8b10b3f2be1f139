package configs

import "github.com/spf13/viper"

const (
	// 对比窗口默认策略：上一周期为 [now-30d, now-15d)，即向前偏移 15 天、跨度 15 天.
	DefaultCompareOffsetDays = 15
	DefaultCompareSpanDays   = 15

	// 趋势序列默认与最大天数.
	DefaultTrendDays = 30
	MaxTrendDays     = 90
)

// StatsConfig 统计口径策略. 对比窗口是一个显式命名的策略参数，而不是散落在代码里的魔法数字.
type StatsConfig struct {
	CompareOffsetDays int `mapstructure:"compare_offset_days" rule:"min=1"`  // 上一周期距今的偏移天数
	CompareSpanDays   int `mapstructure:"compare_span_days"   rule:"min=1"`  // 上一周期的跨度天数
	TrendDays         int `mapstructure:"trend_days"          rule:"min=1"`  // 趋势序列默认天数
	MaxTrendDays      int `mapstructure:"max_trend_days"      rule:"min=1"`  // 趋势序列允许的最大天数
}

func (c *StatsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("stats.compare_offset_days", DefaultCompareOffsetDays)
	v.SetDefault("stats.compare_span_days", DefaultCompareSpanDays)
	v.SetDefault("stats.trend_days", DefaultTrendDays)
	v.SetDefault("stats.max_trend_days", MaxTrendDays)
}
