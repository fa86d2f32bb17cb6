package filestorage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"isveren-scraper/config"
)

type Provider interface {
	UploadExport(ctx context.Context, fileName, contentType string, data *bytes.Buffer) error
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadExport(ctx context.Context, fileName, contentType string, data *bytes.Buffer) error {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileName,
		bytes.NewReader(data.Bytes()), int64(data.Len()),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла выгрузки в S3")
	}
	return nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
