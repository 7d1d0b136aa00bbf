package contracts

import (
	"context"
	"io"

	"family-health-service/internal/app/models"
)

// RemoteStoreClient reads and writes the whole household document. Every
// failure collapses to nil or false; nothing is returned as an error.
type RemoteStoreClient interface {
	FetchAll(ctx context.Context) *models.Snapshot
	SaveAll(ctx context.Context, snapshot *models.Snapshot) bool
}

// FileUploader stores one file and returns where it can be fetched, or nil.
type FileUploader interface {
	UploadFile(ctx context.Context, fileName, mimeType string, file io.Reader) *models.UploadResult
}
