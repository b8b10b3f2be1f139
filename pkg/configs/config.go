// Package configs 管理应用程序配置，包括服务器、数据库、消息队列与统计策略的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppVersion 应用版本号.
const AppVersion = "1.0.0"

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		Server         ServerConfig         `mapstructure:"server"`          // 服务器端口、调试开关等
		DB             DBConfig             `mapstructure:"db"`              // 记录存储（waste / activity_logs / rewards / waste_bins）
		MQ             MQConfig             `mapstructure:"mq"`              // 消息队列配置
		Log            LogConfig            `mapstructure:"log"`             // 日志相关配置
		Auth           AuthConfig           `mapstructure:"auth"`            // 身份与角色解析配置
		Metrics        MetricsConfig        `mapstructure:"metrics"`         // Prometheus 指标配置
		Tracing        TracingConfig        `mapstructure:"tracing"`         // OpenTelemetry 追踪配置
		RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`      // 速率限制
		CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"` // 熔断器
		Stats          StatsConfig          `mapstructure:"stats"`           // 统计口径策略（对比窗口等）
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("ECOTRACK")

	// 读取配置；缺少配置文件时退化为默认值 + 环境变量
	if err := appViper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig ServerConfig
		dbConfig     DBConfig
		mqConfig     MQConfig
		logConfig    LogConfig
		authConfig   AuthConfig
		metricsCfg   MetricsConfig
		tracingCfg   TracingConfig
		rlConfig     RateLimitConfig
		cbConfig     CircuitBreakerConfig
		statsConfig  StatsConfig
	)

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	logConfig.setDefaults(v)
	authConfig.setDefaults(v)
	metricsCfg.setDefaults(v)
	tracingCfg.setDefaults(v)
	rlConfig.setDefaults(v)
	cbConfig.setDefaults(v)
	statsConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置.
func GetConfig() *AppConfig {
	return &globalConfig
}

// GetViper 返回全局 Viper 实例，供 CLI 诊断命令使用.
func GetViper() *viper.Viper {
	return appViper
}
