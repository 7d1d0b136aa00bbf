package controllers

import (
	"errors"
	"net/http"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const uploadFormField = "file"

type UploadController struct {
	Log      *zap.Logger
	Uploader contracts.FileUploader
	MaxBytes int64
}

func NewUploadController(logger *zap.Logger, uploader contracts.FileUploader, maxBytes int64) *UploadController {
	return &UploadController{
		Log:      logger,
		Uploader: uploader,
		MaxBytes: maxBytes,
	}
}

// UploadFile stores one multipart file. A nil result from the uploader is
// reported as a generic 502 so the client can show a single alert.
func (ctrl *UploadController) UploadFile(w http.ResponseWriter, r *http.Request) {
	const operation = "UploadController.UploadFile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if ctrl.Uploader == nil {
		respondError(ctrl.Log, w, operation, requestID, exceptions.ErrUploaderNotConfigured())
		return
	}

	if err := r.ParseMultipartForm(ctrl.MaxBytes); err != nil {
		ctrl.Log.Error(operation+" error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		ctrl.Log.Error(operation+" error reading form file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadFile(err))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get(constvars.HeaderContentType)
	if mimeType == "" {
		mimeType = constvars.MIMEOctetStream
	}

	result := ctrl.Uploader.UploadFile(r.Context(), header.Filename, mimeType, file)
	if result == nil {
		ctrl.Log.Error(operation+" uploader returned no result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, header.Filename),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadFailed(nil))
		return
	}

	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, constvars.UploadFileSuccessMessage, result)
}
