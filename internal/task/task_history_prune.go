package task

import (
	"context"
	"time"

	"github.com/haierkeys/file-cms-service/internal/service"

	"go.uber.org/zap"
)

// HistoryPruneTask trims each document's archived versions down to the
// configured keep count.
// HistoryPruneTask 将每个文档的归档裁剪到配置的保留数量
type HistoryPruneTask struct {
	historyService service.HistoryService
	logger         *zap.Logger
	keep           int
	interval       time.Duration
	cronSpec       string
}

// NewHistoryPruneTask 创建历史清理任务，keep <= 0 时返回 nil 表示禁用
func NewHistoryPruneTask(historyService service.HistoryService, logger *zap.Logger, keep int, interval time.Duration, cronSpec string) *HistoryPruneTask {
	if keep <= 0 {
		return nil
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &HistoryPruneTask{
		historyService: historyService,
		logger:         logger,
		keep:           keep,
		interval:       interval,
		cronSpec:       cronSpec,
	}
}

// Name 返回任务名称
func (t *HistoryPruneTask) Name() string {
	return "HistoryPruneTask"
}

// Run 执行清理
func (t *HistoryPruneTask) Run(ctx context.Context) error {
	pruned, err := t.historyService.Prune(ctx, t.keep)
	if err != nil {
		return err
	}
	if pruned > 0 {
		t.logger.Info("history prune completed", zap.Int("pruned", pruned), zap.Int("keep", t.keep))
	}
	return nil
}

// LoopInterval 返回执行间隔
func (t *HistoryPruneTask) LoopInterval() time.Duration {
	return t.interval
}

// CronSpec 返回 cron 表达式，非空时优先于间隔调度
func (t *HistoryPruneTask) CronSpec() string {
	return t.cronSpec
}

// IsStartupRun 是否立即执行一次
func (t *HistoryPruneTask) IsStartupRun() bool {
	return true
}
