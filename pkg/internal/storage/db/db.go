// Package db 提供基于 GORM 的记录存储客户端，方言通过构建标签按需编入.
package db

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormPrometheus "gorm.io/plugin/prometheus"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
	nlog "github.com/ecotrackhq/ecotrack/pkg/log"
)

// DialectorFactory 由各方言文件在 init 中注册.
type DialectorFactory func(dsn string) gorm.Dialector

var dialectorFactories = map[configs.DBType]DialectorFactory{}

// RegisterDialectorFactory 注册数据库 dialector 工厂函数.
func RegisterDialectorFactory(dbType configs.DBType, factory DialectorFactory) {
	dialectorFactories[dbType] = factory
}

// GetRegisteredDBTypes 返回编译进本二进制的数据库类型.
func GetRegisteredDBTypes() []configs.DBType {
	types := make([]configs.DBType, 0, len(dialectorFactories))
	for dbType := range dialectorFactories {
		types = append(types, dbType)
	}

	return types
}

// Client 包装 GORM DB.
type Client struct {
	*gorm.DB
}

var (
	dbOnce sync.Once
	dbInst *Client
	dbErr  error
)

// New 返回进程级数据库客户端，首次调用时建立连接.
func New(ctx context.Context) (*Client, error) {
	dbOnce.Do(func() {
		dbInst, dbErr = open(ctx)
	})

	return dbInst, dbErr
}

func open(ctx context.Context) (*Client, error) {
	cfg := configs.GetConfig().DB

	dialector, err := resolveDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      newGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	client := &Client{DB: db}

	if configs.GetConfig().Metrics.Enabled {
		if err := client.RegisterGORMMetrics(cfg.Database); err != nil {
			return nil, err
		}
	}

	nlog.Logger().Info().
		Str("type", cfg.GetDBType()).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("数据库连接成功")

	return client, nil
}

// resolveDialector 根据配置产出方言，类型未编入或 DSN 无法生成时报错.
func resolveDialector(cfg configs.DBConfig) (gorm.Dialector, error) {
	dsn := cfg.GetDSN()
	if dsn == "" {
		return nil, fmt.Errorf("failed to generate DSN for database type: %s", cfg.Type)
	}

	factory, exists := dialectorFactories[cfg.Type]
	if !exists {
		return nil, fmt.Errorf("unsupported database type: %s (compiled-in: %v)", cfg.Type, GetRegisteredDBTypes())
	}

	return factory(dsn), nil
}

// newGormLogger 将 GORM 日志桥接到 zerolog，Warn 级别起记录，忽略未找到记录.
func newGormLogger() logger.Interface {
	return logger.New(
		nlog.Logger(),
		logger.Config{
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// GetDB 返回 GORM DB 实例.
func (c *Client) GetDB() *gorm.DB {
	return c.DB
}

// Migrate 执行表结构迁移.
func (c *Client) Migrate(models ...any) error {
	if err := c.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return nil
}

const gormMetricsRefreshSeconds = 15

// RegisterGORMMetrics 挂载 gorm 的 prometheus 插件，复用全局注册表，不另起端口.
func (c *Client) RegisterGORMMetrics(dbName string) error {
	err := c.Use(gormPrometheus.New(gormPrometheus.Config{
		DBName:          dbName,
		RefreshInterval: gormMetricsRefreshSeconds,
		StartServer:     false,
	}))
	if err != nil {
		return fmt.Errorf("failed to register GORM prometheus plugin: %w", err)
	}

	return nil
}
