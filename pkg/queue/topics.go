// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：et.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：waste(采集记录)、activity(活动审计)、bin(回收容器)、stats(统计)
// 动作/状态：recorded/updated/deleted、missing、refreshed 等

const (
	// 废弃物采集领域.
	TopicWasteRecorded = "et.waste.recorded" // 一条采集记录已写入数据库
	TopicWasteUpdated  = "et.waste.updated"  // 采集记录被修正
	TopicWasteDeleted  = "et.waste.deleted"  // 采集记录被删除

	// 活动审计领域.
	TopicAuditMissing = "et.waste.audit.missing" // 采集记录缺少对应的活动日志（一致性巡检发现）

	// 回收容器领域.
	TopicBinCreated = "et.bin.created" // 新增回收容器
	TopicBinUpdated = "et.bin.updated" // 容器信息（位置/容量/状态）变更
	TopicBinDeleted = "et.bin.deleted" // 容器下线

	// 统计领域.
	TopicStatsRefreshed = "et.stats.refreshed" // 周期性统计汇总完成（供下游缓存/报表订阅）
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 采集记录相关主题集合.
	WasteTopics = []string{
		TopicWasteRecorded, TopicWasteUpdated, TopicWasteDeleted,
	}

	// 审计相关主题集合.
	AuditTopics = []string{
		TopicAuditMissing,
	}

	// 容器相关主题集合.
	BinTopics = []string{
		TopicBinCreated, TopicBinUpdated, TopicBinDeleted,
	}
)
