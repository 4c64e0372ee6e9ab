// Package service 实现业务逻辑层
package service

import (
	"context"
	"strings"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/internal/dto"
	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/util"

	"go.uber.org/zap"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Verify 校验登录凭据
	Verify(ctx context.Context, params *dto.UserSignInRequest) (*dto.UserDTO, error)

	// Register 用户注册
	Register(ctx context.Context, params *dto.UserSignUpRequest) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo domain.UserRepository
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
		config:   config,
	}
}

// Verify 校验登录凭据。用户名不存在与密码错误返回同一错误，
// 不泄露哪一项不对。
func (s *userService) Verify(ctx context.Context, params *dto.UserSignInRequest) (*dto.UserDTO, error) {
	creds, err := s.userRepo.Load(ctx)
	if err != nil {
		s.logger.Error("user: load credentials failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	hash, ok := creds[params.Username]
	if !ok || !util.CheckPasswordHash(hash, params.Password) {
		return nil, code.ErrorUserInvalidCredentials
	}
	return &dto.UserDTO{Username: params.Username}, nil
}

// Register 用户注册，注册后不会自动登录
func (s *userService) Register(ctx context.Context, params *dto.UserSignUpRequest) (*dto.UserDTO, error) {
	if s.config == nil || !s.config.RegisterIsEnable {
		return nil, code.ErrorUserRegisterFailed
	}

	// 校验字段非空白
	if strings.TrimSpace(params.Username) == "" || strings.TrimSpace(params.Password) == "" {
		return nil, code.ErrorUserFieldsBlank
	}

	creds, err := s.userRepo.Load(ctx)
	if err != nil {
		s.logger.Error("user: load credentials failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	// 检查用户名是否已存在
	if _, ok := creds[params.Username]; ok {
		return nil, code.ErrorUserAlreadyExists
	}

	// 生成密码哈希
	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		s.logger.Error("user: hash password failed", zap.Error(err))
		return nil, code.ErrorUserRegisterFailed
	}

	creds[params.Username] = hash
	if err := s.userRepo.Save(ctx, creds); err != nil {
		s.logger.Error("user: save credentials failed", zap.Error(err))
		return nil, code.ErrorUserRegisterFailed.WithDetails(err.Error())
	}

	s.logger.Info("user: registered", zap.String("user", params.Username))
	return &dto.UserDTO{Username: params.Username}, nil
}
