package config

import (
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "family_health"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:         utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			DefaultLanguage:            utils.GetEnvString("APP_DEFAULT_LANGUAGE", constvars.LanguageID),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
		},
		Store: AppStore{
			Driver:         utils.GetEnvString("STORE_DRIVER", constvars.StoreDriverSpreadsheet),
			SpreadsheetURL: utils.GetEnvString("STORE_SPREADSHEET_URL", ""),
		},
		Upload: AppUpload{
			Driver: utils.GetEnvString("UPLOAD_DRIVER", constvars.UploadDriverSpreadsheet),
		},
		Insight: AppInsight{
			APIKey:                  utils.GetEnvString("INSIGHT_API_KEY", ""),
			Model:                   utils.GetEnvString("INSIGHT_MODEL", "gemini-3-flash-preview"),
			BaseUrl:                 utils.GetEnvString("INSIGHT_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			CacheTTLInMinutes:       utils.GetEnvInt("INSIGHT_CACHE_TTL_IN_MINUTES", 360),
			ReportRequestsPerSecond: utils.GetEnvFloat("INSIGHT_REPORT_REQUESTS_PER_SECOND", 1),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "family-health"),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 168),
		},
		RabbitMQ: AppRabbitMQ{
			SyncEventQueue: utils.GetEnvString("APP_RABBITMQ_SYNC_EVENT_QUEUE", "household_sync_events"),
		},
	}
}
