//go:build !no_sqlite && !cgo

package db

// 纯 Go 实现的 SQLite 驱动，保证默认构建无需 cgo.

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

func init() {
	RegisterDialectorFactory(configs.SQLite, func(dsn string) gorm.Dialector {
		return sqlite.Open(dsn)
	})
}
