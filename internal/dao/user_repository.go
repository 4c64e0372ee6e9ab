package dao

import (
	"context"
	"encoding/json"
	"os"

	"github.com/haierkeys/file-cms-service/internal/domain"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// userRepository persists username → password hash as one JSON file.
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// Load returns the credential mapping. An absent, empty or corrupt file
// is treated as no registered users.
// Load 返回凭据映射，文件缺失、为空或损坏时视为无注册用户
func (r *userRepository) Load(ctx context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{}

	content, err := os.ReadFile(r.dao.config.CredentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return nil, errors.Wrap(err, "dao: read credentials")
	}
	if len(content) == 0 {
		return creds, nil
	}

	if err := json.Unmarshal(content, &creds); err != nil {
		r.dao.logger.Warn("dao: credentials file corrupt, starting empty", zap.Error(err))
		return domain.Credentials{}, nil
	}
	return creds, nil
}

func (r *userRepository) Save(ctx context.Context, c domain.Credentials) error {
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "dao: marshal credentials")
	}
	if err := os.WriteFile(r.dao.config.CredentialsFile, content, 0644); err != nil {
		return errors.Wrap(err, "dao: write credentials")
	}
	return nil
}
