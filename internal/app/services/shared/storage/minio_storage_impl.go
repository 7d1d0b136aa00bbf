package storage

import (
	"context"
	"io"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType, bucketName string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
