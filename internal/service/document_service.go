// Package service 实现业务逻辑层
package service

import (
	"context"
	"os"
	"strings"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/internal/dto"
	"github.com/haierkeys/file-cms-service/internal/markdown"
	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/fileurl"

	"go.uber.org/zap"
)

// ContentType 文档渲染结果的内容类型
const (
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypePlain = "text/plain; charset=utf-8"
)

// DocumentService 定义文档业务服务接口
type DocumentService interface {
	// List 列出数据目录下所有文档名
	List(ctx context.Context) ([]string, error)

	// Get 读取文档原始内容
	Get(ctx context.Context, name string) (*dto.DocumentDTO, error)

	// Render 渲染文档：.md 转 HTML，.txt 原样输出
	Render(ctx context.Context, name string) (content []byte, contentType string, err error)

	// Create 校验并创建空文档
	Create(ctx context.Context, params *dto.DocumentCreateRequest) error

	// Write 全量覆盖写入
	Write(ctx context.Context, name string, content string) error

	// Delete 删除文档，缺失不报错
	Delete(ctx context.Context, name string) error

	// Duplicate 以同样的创建校验复制出新文档
	Duplicate(ctx context.Context, source string, params *dto.DocumentDuplicateRequest) error
}

// documentService 实现 DocumentService 接口
type documentService struct {
	docRepo  domain.DocumentRepository
	renderer *markdown.Renderer
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewDocumentService 创建 DocumentService 实例
func NewDocumentService(docRepo domain.DocumentRepository, renderer *markdown.Renderer, logger *zap.Logger, config *ServiceConfig) DocumentService {
	return &documentService{
		docRepo:  docRepo,
		renderer: renderer,
		logger:   logger,
		config:   config,
	}
}

// List 列出数据目录下所有文档名
func (s *documentService) List(ctx context.Context) ([]string, error) {
	names, err := s.docRepo.List(ctx)
	if err != nil {
		s.logger.Error("document: list failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}
	return names, nil
}

// Get 读取文档原始内容
func (s *documentService) Get(ctx context.Context, name string) (*dto.DocumentDTO, error) {
	content, err := s.docRepo.Read(ctx, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, code.ErrorDocumentNotExist.WithArgs(name)
		}
		s.logger.Error("document: read failed", zap.String("document", name), zap.Error(err))
		return nil, code.ErrorServerInternal
	}
	return &dto.DocumentDTO{Name: name, Content: string(content)}, nil
}

// Render 渲染文档。扩展名既不是 .md 也不是 .txt 时返回空内容，
// 由处理器按 200 空响应处理。
func (s *documentService) Render(ctx context.Context, name string) ([]byte, string, error) {
	doc, err := s.Get(ctx, name)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(fileurl.GetFileExt(name)) {
	case ".md":
		html, err := s.renderer.Render([]byte(doc.Content))
		if err != nil {
			s.logger.Error("document: markdown render failed", zap.String("document", name), zap.Error(err))
			return nil, "", code.ErrorServerInternal
		}
		return html, ContentTypeHTML, nil
	case ".txt":
		return []byte(doc.Content), ContentTypePlain, nil
	default:
		return nil, ContentTypePlain, nil
	}
}

// validateName 校验文档名：非空白且扩展名在允许范围内
func (s *documentService) validateName(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return code.ErrorDocumentNameRequired
	}
	if !fileurl.IsContainExt(name, s.config.DocumentExts) {
		return code.ErrorDocumentBadExtension
	}
	if s.docRepo.Exists(ctx, name) {
		return code.ErrorDocumentAlreadyExists.WithArgs(name)
	}
	return nil
}

// Create 校验并创建空文档
func (s *documentService) Create(ctx context.Context, params *dto.DocumentCreateRequest) error {
	if err := s.validateName(ctx, params.Name); err != nil {
		return err
	}
	if err := s.docRepo.Write(ctx, params.Name, []byte(params.Content)); err != nil {
		s.logger.Error("document: create failed", zap.String("document", params.Name), zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}

// Write 全量覆盖写入，不检查文件是否已存在
func (s *documentService) Write(ctx context.Context, name string, content string) error {
	if err := s.docRepo.Write(ctx, name, []byte(content)); err != nil {
		s.logger.Error("document: write failed", zap.String("document", name), zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}

// Delete 删除文档
func (s *documentService) Delete(ctx context.Context, name string) error {
	if err := s.docRepo.Delete(ctx, name); err != nil {
		s.logger.Error("document: delete failed", zap.String("document", name), zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}

// Duplicate 复制文档，新名称走与创建相同的校验
func (s *documentService) Duplicate(ctx context.Context, source string, params *dto.DocumentDuplicateRequest) error {
	src, err := s.Get(ctx, source)
	if err != nil {
		return err
	}
	if err := s.validateName(ctx, params.Name); err != nil {
		return err
	}
	if err := s.docRepo.Write(ctx, params.Name, []byte(src.Content)); err != nil {
		s.logger.Error("document: duplicate failed",
			zap.String("document", params.Name), zap.String("source", source), zap.Error(err))
		return code.ErrorServerInternal
	}
	return nil
}
