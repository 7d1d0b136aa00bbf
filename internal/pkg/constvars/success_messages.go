package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	GetStateSuccessMessage      = "state retrieved successfully"
	UpdateStateSuccessMessage   = "state updated successfully"
	SyncRequestedSuccessMessage = "sync requested"
	RefetchSuccessMessage       = "household data reloaded"
	CreateEntitySuccessMessage  = "%s created successfully"
	UpdateEntitySuccessMessage  = "%s updated successfully"
	DeleteEntitySuccessMessage  = "%s deleted successfully"
	FindEntitiesSuccessMessage  = "%s retrieved successfully"
	GetDashboardSuccessMessage  = "dashboard retrieved successfully"
	GetViewSuccessMessage       = "view retrieved successfully"
	GetInsightsSuccessMessage   = "insights retrieved successfully"
	AnalyzeRecordSuccessMessage = "record analyzed"
	UploadFileSuccessMessage    = "file uploaded successfully"
	CloseHomeCareSuccessMessage = "home care log closed"
	RescheduleMedSuccessMessage = "medication rescheduled"
	HealthCheckSuccessMessage   = "service is healthy"
)
