package storage

import (
	"io"

	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/storage/aws_s3"
	"github.com/haierkeys/file-cms-service/pkg/storage/local_fs"
)

type Type = string

const LOCAL Type = "localfs"
const S3 Type = "s3"

var StorageTypeMap = map[Type]bool{
	LOCAL: true,
	S3:    true,
}

// Config Unified storage configuration
// Config 统一存储配置
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Local FS
	SavePath string `yaml:"save-path" default:"storage/images"`

	// Cloud storage (S3)
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

// Storager is the upload target abstraction used by the image upload flow.
type Storager interface {
	SendFile(pathKey string, file io.Reader, cType string) (string, error)
	Delete(pathKey string) error
}

// NewClient builds the configured storage backend.
// NewClient 根据配置创建存储后端
func NewClient(config *Config) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath: config.SavePath,
		})
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	}
	return nil, code.ErrorInvalidStorageType
}
