// Package service 实现业务逻辑层，向上服务于 handle，向下依赖存储层.
package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage/db"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage/mq"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// 服务层哨兵错误，handle 层据此映射 HTTP 状态码.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Producer 事件头中的生产者标识.
const Producer = "ecotrack"

// WasteService 废弃物领域服务的公共依赖.
type WasteService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

// NewWasteService 从请求上下文取出存储客户端构造服务.
func NewWasteService(c context.Context) *WasteService {
	return &WasteService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// storeErr 将存储层错误归一到哨兵错误.
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// validationErr 包装校验错误.
func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// scoped 按调用方角色限定归属：非 admin 只能看到自己的数据.
// 作用域在查询构造处应用一次，后续聚合不再关心权限.
func scoped(q *gorm.DB, caller types.Identity) *gorm.DB {
	if caller.IsAdmin() {
		return q
	}

	return q.Where("user_id = ?", caller.ID)
}
