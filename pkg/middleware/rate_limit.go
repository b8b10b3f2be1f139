package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

// limiterPool 按键惰性创建限流器；条目过多时整体丢弃重建，
// 代价是被清掉的键短暂回到满额度，换取无逐键过期记账.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

const maxPoolEntries = 10000

func newLimiterPool(rps float64, burst int) *limiterPool {
	p := &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}

	go p.sweep()

	return p
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(p.rps), p.burst)
		p.limiters[key] = l
	}

	return l
}

func (p *limiterPool) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		p.mu.Lock()
		if len(p.limiters) > maxPoolEntries {
			p.limiters = make(map[string]*rate.Limiter)
		}
		p.mu.Unlock()
	}
}

// RateLimitMiddleware 按配置限流，key 维度支持 global / ip / header:<Name>.
func RateLimitMiddleware(cfg configs.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	keyMode := strings.ToLower(strings.TrimSpace(cfg.Key))

	if keyMode == "" || keyMode == "global" {
		limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

		return func(c *gin.Context) {
			if !limiter.Allow() {
				rejectRateLimited(c)
				return
			}

			c.Next()
		}
	}

	pool := newLimiterPool(cfg.RPS, cfg.Burst)
	headerName := strings.TrimPrefix(keyMode, "header:")

	return func(c *gin.Context) {
		key := ""

		if strings.HasPrefix(keyMode, "header:") {
			key = c.GetHeader(headerName)
		}

		if key == "" {
			key = clientIP(c)
		}

		if key == "" {
			key = "unknown"
		}

		if !pool.get(key).Allow() {
			rejectRateLimited(c)
			return
		}

		c.Next()
	}
}

func rejectRateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
}

func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}

	return c.Request.RemoteAddr
}
