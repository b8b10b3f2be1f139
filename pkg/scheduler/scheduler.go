// Package scheduler 封装 gocron/v2，按名称管理 cron 任务并暴露运行状态.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/ecotrackhq/ecotrack/pkg/log"
)

// JobStatus 表示任务的状态类型.
type JobStatus string

const (
	StatusScheduled JobStatus = "scheduled" // 等待下次调度
	StatusRunning   JobStatus = "running"   // 正在执行
	StatusError     JobStatus = "error"     // 上次执行出错
)

// JobInfo 单个任务的可观测信息，供巡检接口返回.
type JobInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CronExpr    string    `json:"cron_expr"`
	NextRun     time.Time `json:"next_run"`
	LastRun     time.Time `json:"last_run,omitempty"`
	LastSuccess time.Time `json:"last_success,omitempty"`
	Status      JobStatus `json:"status"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// runState 任务的运行期状态，由包装函数在每次执行时更新.
type runState struct {
	cronExpr    string
	status      JobStatus
	lastSuccess time.Time
	lastError   string
	createdAt   time.Time
}

// Scheduler 以任务名称为键管理 cron 任务.
type Scheduler struct {
	inner  gocron.Scheduler
	logger *zerolog.Logger

	mu     sync.RWMutex
	jobs   map[string]gocron.Job
	states map[string]*runState
}

// NewScheduler 创建调度器，尚未开始执行任务（需调用 Start）.
func NewScheduler() (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		inner:  inner,
		logger: log.Logger(),
		jobs:   make(map[string]gocron.Job),
		states: make(map[string]*runState),
	}, nil
}

// AddCron 注册一个 cron 任务，名称必须唯一.
// 任务函数被包装：panic 被捕获并记入状态，不会拖垮调度器.
func (s *Scheduler) AddCron(name string, cronExpr string, job func(ctx context.Context), ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	wrapped := func(ctx context.Context) {
		s.setStatus(name, StatusRunning, "")

		defer func() {
			if r := recover(); r != nil {
				s.setStatus(name, StatusError, fmt.Sprintf("panic: %v", r))
				s.logger.Error().Str("job", name).Interface("panic", r).Msg("job panicked")
			}
		}()

		job(ctx)

		s.markSuccess(name)
	}

	j, err := s.inner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrapped, ctx),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	s.jobs[name] = j
	s.states[name] = &runState{
		cronExpr:  cronExpr,
		status:    StatusScheduled,
		createdAt: time.Now(),
	}

	s.logger.Info().Str("job", name).Str("cron", cronExpr).Msg("cron job registered")

	return nil
}

// RemoveJobByName 按名称移除任务.
func (s *Scheduler) RemoveJobByName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("job %q not registered", name)
	}

	if err := s.inner.RemoveJob(job.ID()); err != nil {
		return err
	}

	delete(s.jobs, name)
	delete(s.states, name)

	s.logger.Info().Str("job", name).Msg("cron job removed")

	return nil
}

// GetJobInfoByName 按名称查询单个任务信息.
func (s *Scheduler) GetJobInfoByName(name string) (*JobInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[name]
	if !exists {
		return nil, fmt.Errorf("job %q not registered", name)
	}

	info := s.buildInfo(name, job)

	return &info, nil
}

// GetJobInfos 返回全部任务的信息快照.
func (s *Scheduler) GetJobInfos() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for name, job := range s.jobs {
		infos = append(infos, s.buildInfo(name, job))
	}

	return infos
}

// Jobs 返回底层 gocron 任务句柄.
func (s *Scheduler) Jobs() []gocron.Job {
	return s.inner.Jobs()
}

// Start 开始调度.
func (s *Scheduler) Start() {
	s.logger.Info().Msg("scheduler started")
	s.inner.Start()
}

// Stop 停止调度并等待运行中的任务结束.
func (s *Scheduler) Stop() error {
	s.logger.Info().Msg("scheduler stopping")

	return s.inner.Shutdown()
}

// buildInfo 组装任务信息，调用方需持有读锁.
func (s *Scheduler) buildInfo(name string, job gocron.Job) JobInfo {
	state := s.states[name]

	info := JobInfo{
		ID:          job.ID().String(),
		Name:        name,
		CronExpr:    state.cronExpr,
		Status:      state.status,
		LastSuccess: state.lastSuccess,
		Error:       state.lastError,
		CreatedAt:   state.createdAt,
	}

	if next, err := job.NextRun(); err == nil {
		info.NextRun = next
	}

	if last, err := job.LastRun(); err == nil {
		info.LastRun = last
	}

	return info
}

func (s *Scheduler) setStatus(name string, status JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[name]; ok {
		state.status = status
		state.lastError = errMsg
	}
}

func (s *Scheduler) markSuccess(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[name]; ok {
		state.status = StatusScheduled
		state.lastError = ""
		state.lastSuccess = time.Now()
	}
}
