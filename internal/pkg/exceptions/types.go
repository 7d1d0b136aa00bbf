package exceptions

import (
	"fmt"

	"family-health-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotReadFile = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotReadFile)
	}
	ErrFileTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientFileTooLarge, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Context
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Household
	ErrNotFound = func(entity, id string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevEntityNotFound, entity, id))
	}
	ErrNoProfile = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoProfile, constvars.ErrDevNoProfile)
	}
	ErrUploadFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUploadFailed, constvars.ErrDevServerProcess)
	}
	ErrUploaderNotConfigured = func() *CustomError {
		return WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientUploadFailed, constvars.ErrDevUploaderNotConfigured)
	}

	// Outbound HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrUnexpectedHTTPStatus = func(statusCode int, source string) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnexpectedHTTPStatus, statusCode, source))
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrStoreRejected = func(status string) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreRejected, status))
	}
	ErrStoreURLNotConfigured = func() *CustomError {
		return WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreURLNotConfigured)
	}
	ErrInsightNotConfigured = func() *CustomError {
		return WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInsightNotConfigured)
	}
	ErrInsightEmptyResponse = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInsightEmptyResponse)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindDocument)
	}
	ErrMongoDBUpsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoUpsertDocument)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}

	// Redis
	ErrRedisGet = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)
