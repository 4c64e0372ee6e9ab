package dao

import (
	"context"
	"os"
	"path/filepath"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/pkg/fileurl"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// documentRepository stores documents as flat files in the data directory.
type documentRepository struct {
	dao *Dao
}

// NewDocumentRepository 创建文档仓库实例
func NewDocumentRepository(dao *Dao) domain.DocumentRepository {
	return &documentRepository{dao: dao}
}

func (r *documentRepository) path(name string) string {
	// Base strips any path components so a crafted name cannot escape
	// the data directory.
	return filepath.Join(r.dao.config.DataPath, filepath.Base(name))
}

// List returns entries with a non-empty extension, in directory order.
// Directories and extensionless files are excluded.
func (r *documentRepository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dao.config.DataPath)
	if err != nil {
		return nil, errors.Wrap(err, "dao: list documents")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if fileurl.GetFileExt(entry.Name()) == "" {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (r *documentRepository) Read(ctx context.Context, name string) ([]byte, error) {
	content, err := os.ReadFile(r.path(name))
	if err != nil {
		return nil, err
	}
	return content, nil
}

func (r *documentRepository) Write(ctx context.Context, name string, content []byte) error {
	if err := os.WriteFile(r.path(name), content, 0644); err != nil {
		return errors.Wrap(err, "dao: write document")
	}
	return nil
}

func (r *documentRepository) Exists(ctx context.Context, name string) bool {
	return fileurl.IsFile(r.path(name))
}

// Delete removes the file. A missing file is logged and tolerated.
func (r *documentRepository) Delete(ctx context.Context, name string) error {
	if err := os.Remove(r.path(name)); err != nil {
		if os.IsNotExist(err) {
			r.dao.logger.Debug("dao: delete of missing document", zap.String("document", name))
			return nil
		}
		return errors.Wrap(err, "dao: delete document")
	}
	return nil
}
