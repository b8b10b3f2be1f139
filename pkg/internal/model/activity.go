package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// 活动动作常量.
const (
	ActionWasteCollection = "waste_collection"
	ActionBinCreated      = "bin_created"
	ActionBinUpdated      = "bin_updated"
	ActionBinDeleted      = "bin_deleted"
)

// ActivityLog 用户活动日志，采集入库时尽力写入，用于审计与活动汇总.
type ActivityLog struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:255;index"     json:"user_id"`
	Action string `gorm:"size:64;index"      json:"action"`
	// Details 以 JSON 字符串形式存储，结构随 Action 变化
	DetailsJSON string    `gorm:"type:text" json:"-"`
	CreatedAt   time.Time `gorm:"index"     json:"created_at"`
}

// TableName 指定表名.
func (ActivityLog) TableName() string { return "activity_logs" }

// CollectionDetails waste_collection 动作的详情负载.
type CollectionDetails struct {
	WasteID  string  `json:"wasteId"`
	Weight   float64 `json:"weight"`
	Type     string  `json:"type"`
	Location string  `json:"location,omitempty"`
}

// SetDetails 序列化详情到 DetailsJSON.
func (a *ActivityLog) SetDetails(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal activity details: %w", err)
	}

	a.DetailsJSON = string(b)

	return nil
}

// Details 反序列化 DetailsJSON 到目标结构.
func (a *ActivityLog) Details(v any) error {
	if a.DetailsJSON == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(a.DetailsJSON), v); err != nil {
		return fmt.Errorf("unmarshal activity details: %w", err)
	}

	return nil
}
