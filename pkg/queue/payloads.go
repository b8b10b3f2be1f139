package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 废弃物采集领域 --------------------------

// WasteRef 标识一条采集记录及其关键属性.
type WasteRef struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Type     string  `json:"type"`
	Weight   float64 `json:"weight"`
	Location string  `json:"location,omitempty"`
}

// WasteRecordedPayload 采集记录写入完成.
type WasteRecordedPayload struct {
	Record WasteRef `json:"record"`
	// Source 触发来源，如 api/import.
	Source string `json:"source,omitempty"`
}

// WasteUpdatedPayload 采集记录被修正.
type WasteUpdatedPayload struct {
	Record WasteRef `json:"record"`
}

// WasteDeletedPayload 采集记录被删除.
type WasteDeletedPayload struct {
	Record WasteRef `json:"record"`
}

// -------------------------- 活动审计领域 --------------------------

// AuditMissingPayload 一致性巡检发现缺少活动日志的采集记录.
type AuditMissingPayload struct {
	Records []WasteRef `json:"records"`
	// CheckedAt 巡检执行时间（UTC）.
	CheckedAt time.Time `json:"checked_at"`
}

// -------------------------- 回收容器领域 --------------------------

// BinRef 标识一个回收容器.
type BinRef struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
}

// BinChangedPayload 容器创建/变更/下线的统一负载.
type BinChangedPayload struct {
	Bin BinRef `json:"bin"`
}

// -------------------------- 统计领域 --------------------------

// StatsRefreshedPayload 周期性统计汇总完成.
type StatsRefreshedPayload struct {
	// Window 汇总窗口描述，如 "30d".
	Window string `json:"window,omitempty"`
	// Records 参与汇总的记录数.
	Records int64 `json:"records,omitempty"`
}
