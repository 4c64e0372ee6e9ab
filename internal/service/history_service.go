// Package service 实现业务逻辑层
package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/internal/dto"
	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/diff"
	"github.com/haierkeys/file-cms-service/pkg/fileurl"
	"github.com/haierkeys/file-cms-service/pkg/timex"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// HistoryService 定义版本台账业务服务接口
type HistoryService interface {
	// ListFor 返回某文档的全部历史记录，按归档顺序
	ListFor(ctx context.Context, name string) ([]dto.HistoryEntryDTO, error)

	// ArchiveBeforeEdit 在改写前归档当前内容并登记台账
	ArchiveBeforeEdit(ctx context.Context, name string, author string) error

	// DeleteAllFor 删除某文档的全部归档及台账记录
	DeleteAllFor(ctx context.Context, name string) error

	// FindEntry 查找归档记录，只认登记在 owner 名下的
	FindEntry(ctx context.Context, histFile string, owner string) (*domain.HistoryEntry, error)

	// ArchiveContent 读取归档快照内容
	ArchiveContent(ctx context.Context, histFile string) (string, error)

	// DiffAgainstCurrent 生成归档与当前内容的差异 HTML 片段
	DiffAgainstCurrent(ctx context.Context, name string, histFile string) (string, error)

	// Prune 每个文档只保留最新 keep 个归档，返回清理数量
	Prune(ctx context.Context, keep int) (int, error)
}

// historyService 实现 HistoryService 接口
type historyService struct {
	ledgerRepo domain.LedgerRepository
	docRepo    domain.DocumentRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewHistoryService 创建 HistoryService 实例
func NewHistoryService(ledgerRepo domain.LedgerRepository, docRepo domain.DocumentRepository, logger *zap.Logger) HistoryService {
	return &historyService{
		ledgerRepo: ledgerRepo,
		docRepo:    docRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// archiveName builds the snapshot file name. The date part is not
// zero-padded while the time part is, and resolution is one second, so
// two archives of one document within the same second share a name and
// the later write overwrites the earlier snapshot.
// archiveName 生成快照文件名，日期不补零、时间补零，秒级精度。
func (s *historyService) archiveName(name string, t time.Time) string {
	stamp := fmt.Sprintf("%d-%d-%d_%02dh%02dm%02ds",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return fmt.Sprintf("%s_%s%s", fileurl.GetFileBase(name), stamp, fileurl.GetFileExt(name))
}

// ListFor 返回某文档的全部历史记录
func (s *historyService) ListFor(ctx context.Context, name string) ([]dto.HistoryEntryDTO, error) {
	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		s.logger.Error("history: load ledger failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	current, err := s.docRepo.Read(ctx, name)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("history: read current failed", zap.String("document", name), zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	var list []dto.HistoryEntryDTO
	for _, entry := range ledger[name] {
		var item dto.HistoryEntryDTO
		if err := copier.Copy(&item, &entry); err != nil {
			s.logger.Error("history: map entry failed", zap.String("histFile", entry.File), zap.Error(err))
			continue
		}
		if archived, err := s.ledgerRepo.ReadArchive(ctx, entry.File); err == nil {
			item.Current = string(archived) == string(current)
		}
		list = append(list, item)
	}
	return list, nil
}

// ArchiveBeforeEdit 归档当前内容并登记台账。
// 台账为无锁读改写，并发编辑同一文档时后写覆盖先写。
func (s *historyService) ArchiveBeforeEdit(ctx context.Context, name string, author string) error {
	content, err := s.docRepo.Read(ctx, name)
	if err != nil {
		if os.IsNotExist(err) {
			return code.ErrorDocumentNotExist.WithArgs(name)
		}
		s.logger.Error("history: read document failed", zap.String("document", name), zap.Error(err))
		return code.ErrorServerInternal
	}

	histFile := s.archiveName(name, s.now())
	if err := s.ledgerRepo.WriteArchive(ctx, histFile, content); err != nil {
		s.logger.Error("history: write archive failed", zap.String("histFile", histFile), zap.Error(err))
		return code.ErrorServerInternal
	}

	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		s.logger.Error("history: load ledger failed", zap.Error(err))
		return code.ErrorServerInternal
	}
	ledger[name] = append(ledger[name], domain.HistoryEntry{
		File:      histFile,
		Author:    author,
		CreatedAt: timex.Now(),
	})
	if err := s.ledgerRepo.Save(ctx, ledger); err != nil {
		s.logger.Error("history: save ledger failed", zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}

// DeleteAllFor 删除某文档的全部归档及台账记录，归档删除尽力而为
func (s *historyService) DeleteAllFor(ctx context.Context, name string) error {
	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		s.logger.Error("history: load ledger failed", zap.Error(err))
		return code.ErrorServerInternal
	}

	for _, entry := range ledger[name] {
		if err := s.ledgerRepo.DeleteArchive(ctx, entry.File); err != nil {
			s.logger.Warn("history: delete archive failed",
				zap.String("histFile", entry.File), zap.Error(err))
		}
	}

	delete(ledger, name)
	if err := s.ledgerRepo.Save(ctx, ledger); err != nil {
		s.logger.Error("history: save ledger failed", zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}

// FindEntry 查找归档记录。未登记在 owner 名下即视为不相关，
// 即使磁盘上存在同名归档文件。
func (s *historyService) FindEntry(ctx context.Context, histFile string, owner string) (*domain.HistoryEntry, error) {
	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		s.logger.Error("history: load ledger failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}
	for _, entry := range ledger[owner] {
		if entry.File == histFile {
			e := entry
			return &e, nil
		}
	}
	return nil, code.ErrorHistoryNotLinked.WithArgs(histFile, owner)
}

// ArchiveContent 读取归档快照内容
func (s *historyService) ArchiveContent(ctx context.Context, histFile string) (string, error) {
	content, err := s.ledgerRepo.ReadArchive(ctx, histFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", code.ErrorDocumentNotExist.WithArgs(histFile)
		}
		s.logger.Error("history: read archive failed", zap.String("histFile", histFile), zap.Error(err))
		return "", code.ErrorServerInternal
	}
	return string(content), nil
}

// DiffAgainstCurrent 生成归档与当前内容的差异 HTML 片段
func (s *historyService) DiffAgainstCurrent(ctx context.Context, name string, histFile string) (string, error) {
	archived, err := s.ArchiveContent(ctx, histFile)
	if err != nil {
		return "", err
	}
	current, err := s.docRepo.Read(ctx, name)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("history: read current failed", zap.String("document", name), zap.Error(err))
		return "", code.ErrorServerInternal
	}
	if !diff.HasChanges(archived, string(current)) {
		return "", nil
	}
	return diff.PrettyHTML(archived, string(current)), nil
}

// Prune 每个文档只保留最新 keep 个归档
func (s *historyService) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		s.logger.Error("history: load ledger failed", zap.Error(err))
		return 0, code.ErrorServerInternal
	}

	pruned := 0
	for name, entries := range ledger {
		if len(entries) <= keep {
			continue
		}
		cut := len(entries) - keep
		// 删除失败的归档保留在台账里，下次清理重试，避免孤儿文件
		retained := make([]domain.HistoryEntry, 0, keep)
		for _, entry := range entries[:cut] {
			if err := s.ledgerRepo.DeleteArchive(ctx, entry.File); err != nil {
				s.logger.Warn("history: prune archive failed",
					zap.String("histFile", entry.File), zap.Error(err))
				retained = append(retained, entry)
				continue
			}
			pruned++
		}
		ledger[name] = append(retained, entries[cut:]...)
	}

	if pruned == 0 {
		return 0, nil
	}
	if err := s.ledgerRepo.Save(ctx, ledger); err != nil {
		s.logger.Error("history: save ledger failed", zap.Error(err))
		return pruned, code.ErrorServerInternal
	}
	return pruned, nil
}
