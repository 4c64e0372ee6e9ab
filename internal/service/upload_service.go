// Package service 实现业务逻辑层
package service

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/fileurl"
	"github.com/haierkeys/file-cms-service/pkg/storage"

	"go.uber.org/zap"
)

// UploadService 定义图片上传业务服务接口
type UploadService interface {
	// SaveImage 校验扩展名并保存图片，返回保存后的文件名
	SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// uploadService 实现 UploadService 接口
type uploadService struct {
	client storage.Storager
	logger *zap.Logger
	config *ServiceConfig
}

// NewUploadService 创建 UploadService 实例
func NewUploadService(client storage.Storager, logger *zap.Logger, config *ServiceConfig) UploadService {
	return &uploadService{
		client: client,
		logger: logger,
		config: config,
	}
}

// SaveImage 保存上传的图片。文件以上传时的基础文件名存储，
// 同名文件会被覆盖。
func (s *uploadService) SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", code.ErrorUploadFileRequired
	}

	name := filepath.Base(fileHeader.Filename)
	if !fileurl.IsContainExt(name, s.config.ImageExts) {
		return "", code.ErrorUploadBadExtension
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("upload: open file failed", zap.String("file", name), zap.Error(err))
		return "", code.ErrorUploadFileFailed
	}
	defer file.Close()

	if _, err := s.client.SendFile(name, file, fileHeader.Header.Get("Content-Type")); err != nil {
		s.logger.Error("upload: store file failed", zap.String("file", name), zap.Error(err))
		return "", code.ErrorUploadFileFailed.WithDetails(err.Error())
	}

	s.logger.Info("upload: image stored", zap.String("file", name))
	return name, nil
}
