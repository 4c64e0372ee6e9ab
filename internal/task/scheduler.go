// Package task 提供后台定时任务调度
package task

import (
	"context"
	"time"

	"github.com/haierkeys/file-cms-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔
	IsStartupRun() bool            // 是否立即执行一次
}

// CronTask is an optional extension: a task returning a non-empty
// standard cron spec is scheduled by it instead of LoopInterval.
// CronTask 可选扩展，返回非空 cron 表达式时按表达式调度
type CronTask interface {
	CronSpec() string
}

// Scheduler 任务调度器
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
}

// runOnce 执行一次任务并吸收 panic
func (s *Scheduler) runOnce(task Task, trigger string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.String("trigger", trigger),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	s.logger.Info("task running", zap.String("name", task.Name()), zap.String("trigger", trigger))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("trigger", trigger),
			zap.Error(err))
	}
}

// startTask 启动单个任务
func (s *Scheduler) startTask(task Task) {

	var schedule cron.Schedule
	if ct, ok := task.(CronTask); ok && ct.CronSpec() != "" {
		var err error
		schedule, err = cron.ParseStandard(ct.CronSpec())
		if err != nil {
			s.logger.Error("task cron spec invalid, falling back to interval",
				zap.String("name", task.Name()),
				zap.String("spec", ct.CronSpec()),
				zap.Error(err))
			schedule = nil
		}
	}

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		if task.IsStartupRun() {
			go s.runOnce(task, "startup")
		}

		if schedule != nil {
			s.loopCron(task, schedule, closeSignal)
			return
		}

		if task.LoopInterval() <= 0 {
			return
		}

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce(task, "interval")
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()))
				return
			}
		}
	})
}

// loopCron 按 cron 表达式调度
func (s *Scheduler) loopCron(task Task, schedule cron.Schedule, closeSignal <-chan struct{}) {
	for {
		next := schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			s.runOnce(task, "cron")
		case <-closeSignal:
			timer.Stop()
			s.logger.Info("task stopped", zap.String("name", task.Name()))
			return
		}
	}
}
