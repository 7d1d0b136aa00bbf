package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType, bucketName string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
