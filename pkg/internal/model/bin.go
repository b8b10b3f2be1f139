package model

import (
	"time"

	"gorm.io/gorm"
)

// 回收容器状态.
const (
	BinStatusActive      = "active"
	BinStatusFull        = "full"
	BinStatusMaintenance = "maintenance"
)

// WasteBin 回收容器台账.
type WasteBin struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Location string `gorm:"size:512;index"     json:"location"`
	Type     string `gorm:"size:32;index"      json:"type"`
	// Capacity 单位为千克
	Capacity  float64        `json:"capacity"`
	Status    string         `gorm:"size:32;index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名.
func (WasteBin) TableName() string { return "waste_bins" }
