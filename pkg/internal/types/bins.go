package types

import "github.com/ecotrackhq/ecotrack/pkg/internal/model"

// CreateBinRequest 新增回收容器请求.
type CreateBinRequest struct {
	Location string   `json:"location" binding:"required,min=1,max=512"                         rule:"required,min=1,max=512"`
	Type     string   `json:"type"     binding:"required,oneof=recyclable non-recyclable mixed" rule:"required,oneof=recyclable non-recyclable mixed"`
	Capacity *float64 `json:"capacity" binding:"required,gte=0"                                 rule:"required,gte=0"`
	Status   string   `json:"status"   binding:"omitempty,oneof=active full maintenance"        rule:"omitempty,bin_status"`
}

// UpdateBinRequest 更新回收容器请求，均为可选字段.
type UpdateBinRequest struct {
	Location *string  `json:"location" binding:"omitempty,min=1,max=512"                         rule:"omitempty,min=1,max=512"`
	Type     *string  `json:"type"     binding:"omitempty,oneof=recyclable non-recyclable mixed" rule:"omitempty,oneof=recyclable non-recyclable mixed"`
	Capacity *float64 `json:"capacity" binding:"omitempty,gte=0"                                 rule:"omitempty,gte=0"`
	Status   *string  `json:"status"   binding:"omitempty,oneof=active full maintenance"         rule:"omitempty,bin_status"`
}

// ListBinsResponse 回收容器列表响应.
type ListBinsResponse struct {
	Items []model.WasteBin `json:"items"`
	Total int64            `json:"total"`
}
