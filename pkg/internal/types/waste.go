// Package types 定义 API 请求与响应结构.
package types

import (
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
)

// RecordWasteRequest 采集记录上报请求.
// Weight 使用指针以区分"未提供"与"0"，0 是合法重量.
// Location 可选，采集端不一定带定位.
// rule 标签承载完整的领域约束，服务层校验不依赖 HTTP 绑定层.
type RecordWasteRequest struct {
	Weight   *float64 `json:"weight"   binding:"required,gte=0"                           rule:"required,gte=0"`
	Type     string   `json:"type"     binding:"required,oneof=recyclable non-recyclable" rule:"required,waste_type"`
	Location string   `json:"location" binding:"omitempty,max=512"                        rule:"omitempty,max=512"`
	Notes    string   `json:"notes"    binding:"omitempty,max=2000"                       rule:"omitempty,max=2000"`
}

// RecordWasteResponse 采集记录上报响应.
type RecordWasteResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListWasteQuery 采集记录列表查询参数.
type ListWasteQuery struct {
	Type     string `form:"type"     binding:"omitempty,oneof=recyclable non-recyclable"`
	Location string `form:"location" binding:"omitempty,max=512"`
	From     string `form:"from"     binding:"omitempty"` // YYYY-MM-DD
	To       string `form:"to"       binding:"omitempty"` // YYYY-MM-DD
	Page     int    `form:"page"     binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// ListWasteResponse 采集记录列表响应.
type ListWasteResponse struct {
	Items    []model.WasteRecord `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}
