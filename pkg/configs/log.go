package configs

import "github.com/spf13/viper"

// LogConfig 日志输出配置：控制台始终开启，文件输出走 lumberjack 滚动.
type LogConfig struct {
	EnableFile bool   `mapstructure:"enable_file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size_mb"`  // 单个日志文件上限（MB）
	MaxBackups int    `mapstructure:"max_backups"`  // 保留的滚动文件个数
	MaxAge     int    `mapstructure:"max_age_days"` // 滚动文件保留天数
	Compress   bool   `mapstructure:"compress"`
	Level      string `mapstructure:"level"`
}

func (l *LogConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("log.enable_file", true)
	v.SetDefault("log.file_path", "logs/ecotrack.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("log.level", "info")
}
