package model

import (
	"time"

	"gorm.io/gorm"
)

// 废弃物类型，入库前由校验层保证取值合法.
const (
	WasteTypeRecyclable    = "recyclable"
	WasteTypeNonRecyclable = "non-recyclable"
)

// WasteRecord 一条废弃物采集记录.
type WasteRecord struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:255;index"     json:"user_id"`
	// Weight 单位为千克，保留一位小数在展示层处理，存储保持原值
	Weight   float64 `json:"weight"`
	Type     string  `gorm:"size:32;index"  json:"type"`
	Location string  `gorm:"size:512;index" json:"location"`
	Notes    string  `gorm:"type:text"      json:"notes,omitempty"`
	// 审计与软删除
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名.
func (WasteRecord) TableName() string { return "waste" }
