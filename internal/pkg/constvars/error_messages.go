package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"url":             "must be a valid URL",
	"datetime_value":  "must be a valid date or date-time",
	"relation":        "must be one of [Father, Mother, Child, Grandparent, Other]",
	"record_type":     "must be a known medical record type",
	"note_type":       "must be one of [mobility, diet, sleep, general]",
	"contact_type":    "must be one of [Hospital, Clinic, Doctor, Pharmacy]",
	"language":        "must be either 'ID' or 'EN'",
	"media_category":  "must be one of [all, medical_record, medication, home_care]",
	"tab":             "must be a known tab",
	"required_with":   "is required when %s is present",
	"required_unless": "is required unless %s is %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":             true,
	"max":             true,
	"gt":              true,
	"gte":             true,
	"lt":              true,
	"lte":             true,
	"oneof":           true,
	"required_with":   true,
	"required_unless": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientNoProfile                     = "profile not found: the household database is empty or failed to load, please reload the application"
	ErrClientUploadFailed                  = "failed to upload the file, please try again"
	ErrClientFileTooLarge                  = "the uploaded file is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotReadFile           = "cannot read the uploaded file"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevEntityNotFound           = "%s with id %s not found"
	ErrDevNoProfile                = "member collection is empty"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus     = "unexpected HTTP status %d from %s"
	ErrDevDecodeResponse           = "failed to decode response from %s"
	ErrDevStoreRejected            = "remote store answered with status %q"
	ErrDevStoreURLNotConfigured    = "remote store endpoint is not configured"
	ErrDevInsightNotConfigured     = "insight service credential is not configured"
	ErrDevInsightEmptyResponse     = "insight service returned no candidates"
	ErrDevMongoFindDocument        = "failed to find document in mongo"
	ErrDevMongoUpsertDocument      = "failed to upsert document in mongo"
	ErrDevMinioCreateObject        = "failed to create object in bucket %s"
	ErrDevMinioPresignObject       = "failed to presign object in bucket %s"
	ErrDevRedisGetData             = "failed to get data from redis with key %s"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
	ErrDevUploaderNotConfigured    = "no upload backend is configured"
)
