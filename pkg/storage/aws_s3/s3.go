package aws_s3

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

type Config struct {
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

// S3 stores uploads in an AWS S3 bucket.
// S3 将上传文件保存到 AWS S3 存储桶
type S3 struct {
	S3Client *s3.Client
	Config   *Config
}

// NewClient 创建 S3 存储实例
func NewClient(conf *Config) (*S3, error) {
	if conf == nil || conf.BucketName == "" {
		return nil, errors.New("aws_s3: bucket name is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret, "")),
		awsconfig.WithRegion(conf.Region),
	)
	if err != nil {
		return nil, errors.Wrap(err, "aws_s3")
	}

	return &S3{
		S3Client: s3.NewFromConfig(cfg),
		Config:   conf,
	}, nil
}
