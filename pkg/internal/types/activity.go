package types

import "github.com/ecotrackhq/ecotrack/pkg/internal/model"

// ListActivityQuery 活动日志列表查询参数.
type ListActivityQuery struct {
	Action   string `form:"action"    binding:"omitempty,max=64"`
	From     string `form:"from"      binding:"omitempty"` // YYYY-MM-DD
	To       string `form:"to"        binding:"omitempty"` // YYYY-MM-DD
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// ListActivityResponse 活动日志列表响应.
type ListActivityResponse struct {
	Items    []model.ActivityLog `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}
