package configs

import "github.com/spf13/viper"

// AuthConfig 控制调用方身份解析.
// 身份由前置认证代理以 X-Auth-Request-User / X-Auth-Request-Role
// 请求头注入，本服务只消费 id + 角色并据此做所有权过滤，不做会话签发.
type AuthConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	SkipPaths     []string `mapstructure:"skip_paths"`      // 跳过身份解析的路径前缀
	DevAllowQuery bool     `mapstructure:"dev_allow_query"` // 本地调试允许 ?user=&role= 传身份
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.dev_allow_query", true)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
	})
}
