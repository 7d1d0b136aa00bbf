package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "FHR_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	StoreDriverSpreadsheet = "spreadsheet"
	StoreDriverMongo       = "mongo"

	UploadDriverSpreadsheet = "spreadsheet"
	UploadDriverMinio       = "minio"
)

const (
	// SpreadsheetURLPlaceholder marks an endpoint that was never configured.
	SpreadsheetURLPlaceholder = "MASUKKAN_URL"
	SpreadsheetURLMinLength   = 20

	SpreadsheetQueryCacheBuster = "t"
	SpreadsheetStatusSuccess    = "success"
	SpreadsheetActionSaveAll    = "saveAll"
	SpreadsheetActionUpload     = "upload"
)

const (
	MongoSnapshotCollection = "household_snapshots"
	MongoSnapshotDocumentID = "household"
)

const (
	RedisInsightKeyPrefix = "INSIGHT"
)
