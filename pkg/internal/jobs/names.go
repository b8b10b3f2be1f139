package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobAuditSweep   = "waste.audit.sweep"
	JobStatsRefresh = "stats.refresh.daily"
)

// Cron 表达式常量（集中管理）.
const (
	CronAuditSweep   = "30 2 * * *"
	CronStatsRefresh = "0 4 * * *"
)
