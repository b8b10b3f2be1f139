package types

import (
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
)

// 对比统计的变化方向.
const (
	ChangeIncrease = "increase"
	ChangeDecrease = "decrease"
)

// ComparativeStat 单项对比统计：当前窗口值与上一窗口的变化.
type ComparativeStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	// Change 相对上一窗口的整数百分比，上一窗口为 0 时恒为 0
	Change     int    `json:"change"`
	ChangeType string `json:"changeType"`
}

// StatsResponse 对比统计响应.
type StatsResponse struct {
	Stats       []ComparativeStat `json:"stats"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// TrendPoint 趋势序列中的一天，缺数据的天补零.
type TrendPoint struct {
	Date          string  `json:"date"` // YYYY-MM-DD（UTC）
	Recyclable    float64 `json:"recyclable"`
	NonRecyclable float64 `json:"nonRecyclable"`
}

// TrendsQuery 趋势查询参数.
type TrendsQuery struct {
	Days int `form:"days" binding:"omitempty,min=1"`
}

// TrendsResponse 趋势序列响应.
type TrendsResponse struct {
	Days   int          `json:"days"`
	Series []TrendPoint `json:"series"`
}

// BucketStat 按天或按月聚合的一个桶.
type BucketStat struct {
	Period        string  `json:"period"` // YYYY-MM-DD 或 YYYY-MM
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
	Recyclable    float64 `json:"recyclable"`
	NonRecyclable float64 `json:"nonRecyclable"`
}

// TypeStat 按类型的全量分布.
type TypeStat struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Weight float64 `json:"weight"`
}

// LocationStat 按地点的统计，用于 Top 榜.
type LocationStat struct {
	Location string  `json:"location"`
	Count    int64   `json:"count"`
	Weight   float64 `json:"weight"`
}

// OverallStats 用户全量汇总.
type OverallStats struct {
	TotalCollections int64      `json:"totalCollections"`
	TotalWeight      float64    `json:"totalWeight"`
	AvgWeight        float64    `json:"avgWeight"`
	FirstCollection  *time.Time `json:"firstCollection,omitempty"`
	LastCollection   *time.Time `json:"lastCollection,omitempty"`
}

// ActivitySummary 按动作分组的活动汇总.
type ActivitySummary struct {
	Action       string    `json:"action"`
	Count        int64     `json:"count"`
	LastActivity time.Time `json:"lastActivity"`
}

// UserStatsResponse 单用户综合统计报告，各面从同一份快照计算.
type UserStatsResponse struct {
	UserID           string            `json:"userId"`
	Overall          OverallStats      `json:"overall"`
	Daily            []BucketStat      `json:"daily"`   // 近 30 天
	Monthly          []BucketStat      `json:"monthly"` // 近 12 个月
	TypeDistribution []TypeStat        `json:"typeDistribution"`
	TopLocations     []LocationStat    `json:"topLocations"`
	Activity         []ActivitySummary `json:"activity"`
	Rewards          []model.Reward    `json:"rewards"`
	GeneratedAt      time.Time         `json:"generated_at"`
}
