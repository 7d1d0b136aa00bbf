package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEOctetStream                = "application/octet-stream"
	MIMEMultipartForm              = "multipart/form-data"
	MIMETextPlainCharsetUTF8       = "text/plain;charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusRequestEntityTooBig = 413
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderGoogAPIKey  = "x-goog-api-key"
)
