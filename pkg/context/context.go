// Package context 在请求上下文中传递存储管理器，并提供追踪感知的日志辅助.
package context

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecotrackhq/ecotrack/pkg/internal/storage"
	dbc "github.com/ecotrackhq/ecotrack/pkg/internal/storage/db"
	mqc "github.com/ecotrackhq/ecotrack/pkg/internal/storage/mq"
)

// managerKey 私有键类型，避免与其他包的 context 键冲突.
type managerKey struct{}

// WithStorageManager 把存储管理器挂到 context 上.
func WithStorageManager(ctx context.Context, mgr *storage.Manager) context.Context {
	return context.WithValue(ctx, managerKey{}, mgr)
}

// GetManager 取出存储管理器，未注入时返回 nil.
func GetManager(ctx context.Context) *storage.Manager {
	mgr, _ := ctx.Value(managerKey{}).(*storage.Manager)

	return mgr
}

// GetDBClient 取出 DB 客户端，未注入时返回 nil.
func GetDBClient(ctx context.Context) *dbc.Client {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetDBClient()
	}

	return nil
}

// GetMQClient 取出 MQ 客户端，MQ 未启用或未注入时返回 nil.
func GetMQClient(ctx context.Context) *mqc.Client {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetMQClient()
	}

	return nil
}

// WithTraceContext 若当前 span 在记录中，返回带 trace_id/span_id 字段的 logger.
func WithTraceContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return logger
	}

	sc := span.SpanContext()

	return logger.With().
		Str("trace_id", sc.TraceID().String()).
		Str("span_id", sc.SpanID().String()).
		Logger()
}
