// Package storage 聚合服务依赖的持久化资源：数据库（权威存储）与消息队列（事件广播）.
// Init 一次性建好两者并自动迁移表结构；MQ 初始化失败只降级告警，不影响摄入主链路.
package storage

import (
	"context"
	"sync"

	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	dbc "github.com/ecotrackhq/ecotrack/pkg/internal/storage/db"
	mqc "github.com/ecotrackhq/ecotrack/pkg/internal/storage/mq"
	nlog "github.com/ecotrackhq/ecotrack/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB *dbc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		m := &Manager{}

		// DB
		dbi, e := dbc.New(ctx)
		if e != nil {
			err = e

			return
		}

		if e := dbi.Migrate(model.All()...); e != nil {
			err = e

			return
		}

		m.DB = dbi

		// MQ（发布为尽力而为，初始化失败不阻断服务启动）
		if mqi, e := mqc.New(ctx); e != nil {
			nlog.Logger().Warn().Err(e).Msg("mq init failed, events disabled")
		} else {
			m.MQ = mqi
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// Close 关闭所有存储资源.
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}

	if m.MQ != nil {
		if err := m.MQ.Close(); err != nil {
			return err
		}
	}

	if m.DB != nil {
		if sqlDB, err := m.DB.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetMQClient 获取 MQ 客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
