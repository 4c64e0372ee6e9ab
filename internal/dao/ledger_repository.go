package dao

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/haierkeys/file-cms-service/internal/domain"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ledgerRepository persists the version ledger as one JSON file and the
// archived snapshots as flat files in the history directory.
//
// Read-modify-write without locking, matching the rest of the flat-file
// stores. Concurrent edits to the same document can clobber each other.
type ledgerRepository struct {
	dao *Dao
}

// NewLedgerRepository 创建版本台账仓库实例
func NewLedgerRepository(dao *Dao) domain.LedgerRepository {
	return &ledgerRepository{dao: dao}
}

func (r *ledgerRepository) archivePath(file string) string {
	return filepath.Join(r.dao.config.HistoryPath, filepath.Base(file))
}

// Load returns the ledger. An absent, empty or corrupt backing file is
// treated as an empty ledger.
// Load 返回台账，文件缺失、为空或损坏时视为空台账
func (r *ledgerRepository) Load(ctx context.Context) (domain.Ledger, error) {
	ledger := domain.Ledger{}

	content, err := os.ReadFile(r.dao.config.LedgerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger, nil
		}
		return nil, errors.Wrap(err, "dao: read ledger")
	}
	if len(content) == 0 {
		return ledger, nil
	}

	if err := json.Unmarshal(content, &ledger); err != nil {
		r.dao.logger.Warn("dao: ledger file corrupt, starting empty", zap.Error(err))
		return domain.Ledger{}, nil
	}
	return ledger, nil
}

func (r *ledgerRepository) Save(ctx context.Context, l domain.Ledger) error {
	content, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return errors.Wrap(err, "dao: marshal ledger")
	}
	if err := os.WriteFile(r.dao.config.LedgerFile, content, 0644); err != nil {
		return errors.Wrap(err, "dao: write ledger")
	}
	return nil
}

func (r *ledgerRepository) WriteArchive(ctx context.Context, file string, content []byte) error {
	if err := os.WriteFile(r.archivePath(file), content, 0644); err != nil {
		return errors.Wrap(err, "dao: write archive")
	}
	return nil
}

func (r *ledgerRepository) ReadArchive(ctx context.Context, file string) ([]byte, error) {
	content, err := os.ReadFile(r.archivePath(file))
	if err != nil {
		return nil, err
	}
	return content, nil
}

func (r *ledgerRepository) DeleteArchive(ctx context.Context, file string) error {
	if err := os.Remove(r.archivePath(file)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "dao: delete archive")
	}
	return nil
}
