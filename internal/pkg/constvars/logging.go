package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingOperationKey     = "operation"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingRedisKey         = "redis_key"
	LoggingQueueNameKey     = "queue_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingFileNameKey      = "file_name"
	LoggingMemberIDKey      = "member_id"
	LoggingEntityIDKey      = "entity_id"
	LoggingCollectionKey    = "collection"
	LoggingCountKey         = "count"
	LoggingSyncOutcomeKey   = "sync_outcome"
	LoggingStoreDriverKey   = "store_driver"
	LoggingLanguageKey      = "language"
	LoggingActiveTabKey     = "active_tab"
	LoggingInsightModelKey  = "insight_model"
	LoggingCacheHitKey      = "cache_hit"
	LoggingResponseLenKey   = "response_length"
	LoggingAgeInMonthsKey   = "age_in_months"
	LoggingUploadDriverKey  = "upload_driver"
	LoggingSnapshotFileKey  = "snapshot_file"
	LoggingHydrateSourceKey = "hydrate_source"
)
