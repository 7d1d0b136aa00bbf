package storage

import (
	"bytes"
	"context"
	"io"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const uploadObjectPrefix = "household"

// ObjectUploader stores attachments in a bucket and hands back a presigned
// link. The object name doubles as the file id.
type ObjectUploader struct {
	Storage    contracts.Storage
	BucketName string
	URLExpiry  time.Duration
	Log        *zap.Logger
	now        func() time.Time
}

var _ contracts.FileUploader = (*ObjectUploader)(nil)

func NewObjectUploader(storage contracts.Storage, bucketName string, urlExpiry time.Duration, logger *zap.Logger) *ObjectUploader {
	return &ObjectUploader{
		Storage:    storage,
		BucketName: bucketName,
		URLExpiry:  urlExpiry,
		Log:        logger,
		now:        time.Now,
	}
}

func (u *ObjectUploader) UploadFile(ctx context.Context, fileName, mimeType string, file io.Reader) *models.UploadResult {
	requestID := utils.GetRequestID(ctx)
	u.Log.Info("ObjectUploader.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	result, err := u.uploadFile(ctx, fileName, mimeType, file)
	if err != nil {
		u.Log.Error("ObjectUploader.UploadFile error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, u.BucketName),
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Error(err),
		)
		return nil
	}

	u.Log.Info("ObjectUploader.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, u.BucketName),
		zap.String(constvars.LoggingFileNameKey, result.FileID),
	)
	return result
}

func (u *ObjectUploader) uploadFile(ctx context.Context, fileName, mimeType string, file io.Reader) (*models.UploadResult, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotReadFile(err)
	}
	if mimeType == "" {
		mimeType = constvars.MIMEOctetStream
	}

	objectName := utils.GenerateFileName(uploadObjectPrefix, fileName, u.now())
	objectName, err = u.Storage.UploadFile(ctx, bytes.NewReader(content), int64(len(content)), objectName, mimeType, u.BucketName)
	if err != nil {
		return nil, err
	}

	url, err := u.Storage.GetObjectUrlWithExpiryTime(ctx, u.BucketName, objectName, u.URLExpiry)
	if err != nil {
		return nil, err
	}
	return &models.UploadResult{URL: url, FileID: objectName}, nil
}
