package model

import "time"

// Reward 用户积分奖励记录，由下游积分服务写入，这里只读展示.
type Reward struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:255;index"     json:"user_id"`
	Points    int       `json:"points"`
	Reason    string    `gorm:"size:255"           json:"reason"`
	CreatedAt time.Time `gorm:"index"              json:"created_at"`
}

// TableName 指定表名.
func (Reward) TableName() string { return "rewards" }
