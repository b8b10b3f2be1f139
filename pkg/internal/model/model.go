// Package model 定义数据库模型.
package model

// All 返回全部需要迁移的模型，供 AutoMigrate 使用.
func All() []any {
	return []any{
		&WasteRecord{},
		&ActivityLog{},
		&Reward{},
		&WasteBin{},
	}
}
