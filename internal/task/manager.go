package task

import (
	"time"

	"github.com/haierkeys/file-cms-service/internal/service"
	"github.com/haierkeys/file-cms-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks(historyService service.HistoryService, keep int, interval time.Duration, cronSpec string) {
	pruneTask := NewHistoryPruneTask(historyService, m.logger, keep, interval, cronSpec)
	if pruneTask != nil {
		m.scheduler.AddTask(pruneTask)
	} else {
		m.logger.Info("history prune task is disabled (keep versions not configured)")
	}
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
