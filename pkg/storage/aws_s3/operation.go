package aws_s3

import (
	"context"
	"io"

	"github.com/haierkeys/file-cms-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// SendFile 上传文件
func (p *S3) SendFile(pathKey string, file io.Reader, cType string) (string, error) {
	ctx := context.Background()

	fileKey := pathKey
	if p.Config.CustomPath != "" {
		fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	}

	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return "", errors.Wrap(err, "aws_s3")
	}
	return fileKey, nil
}

// Delete 删除文件
func (p *S3) Delete(pathKey string) error {
	ctx := context.Background()

	fileKey := pathKey
	if p.Config.CustomPath != "" {
		fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	}

	_, err := p.S3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		return errors.Wrap(err, "aws_s3")
	}
	return nil
}
