package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

// CORSMiddleware 放行跨域请求，并允许代理注入的身份头通过预检.
func CORSMiddleware(cfg configs.ServerConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AddAllowHeaders(
		"Authorization",
		"X-Auth-Request-User",
		"X-Auth-Request-Role",
		"X-Forwarded-User",
		"X-Forwarded-Role",
	)

	if cfg.Debug {
		config.AddExposeHeaders("X-Request-Id")
	}

	return cors.New(config)
}
