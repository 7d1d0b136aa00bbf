package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Store    AppStore    `mapstructure:"store"`
	Upload   AppUpload   `mapstructure:"upload"`
	Insight  AppInsight  `mapstructure:"insight"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	CorsAllowedOrigins         string `mapstructure:"cors_allowed_origins"`
	DefaultLanguage            string `mapstructure:"default_language"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppStore selects where the household snapshot lives.
type AppStore struct {
	Driver         string `mapstructure:"driver"`
	SpreadsheetURL string `mapstructure:"spreadsheet_url"`
}

type AppUpload struct {
	Driver string `mapstructure:"driver"`
}

type AppInsight struct {
	APIKey                  string  `mapstructure:"api_key"`
	Model                   string  `mapstructure:"model"`
	BaseUrl                 string  `mapstructure:"base_url"`
	CacheTTLInMinutes       int     `mapstructure:"cache_ttl_in_minutes"`
	ReportRequestsPerSecond float64 `mapstructure:"report_requests_per_second"`
}

type AppMinio struct {
	BucketName                          string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	SyncEventQueue string `mapstructure:"sync_event_queue"`
}

func (a App) BodyLimitInBytes() int64 {
	return int64(a.RequestBodyLimitInMegabyte) << 20
}
