package remotestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const spreadsheetSource = "spreadsheet"

// SpreadsheetClient talks to the spreadsheet web app that backs the
// household. Every exported method collapses failures to nil or false.
type SpreadsheetClient struct {
	BaseUrl string
	Client  *http.Client
	Log     *zap.Logger
	now     func() time.Time
}

var (
	_ contracts.RemoteStoreClient = (*SpreadsheetClient)(nil)
	_ contracts.FileUploader      = (*SpreadsheetClient)(nil)
)

type spreadsheetEnvelope struct {
	Status string           `json:"status"`
	Data   *models.Snapshot `json:"data,omitempty"`
	URL    string           `json:"url,omitempty"`
	FileID string           `json:"fileId,omitempty"`
}

type saveAllRequest struct {
	Action  string           `json:"action"`
	Payload *models.Snapshot `json:"payload"`
}

type uploadRequest struct {
	Action   string `json:"action"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

func NewSpreadsheetClient(baseUrl string, logger *zap.Logger) *SpreadsheetClient {
	return &SpreadsheetClient{
		BaseUrl: strings.TrimSpace(baseUrl),
		Client:  &http.Client{},
		Log:     logger,
		now:     time.Now,
	}
}

// IsConfigured reports whether the endpoint looks like a deployed web app.
// An empty, placeholder or too short URL never reaches the network.
func (c *SpreadsheetClient) IsConfigured() bool {
	return c.BaseUrl != "" &&
		!strings.Contains(c.BaseUrl, constvars.SpreadsheetURLPlaceholder) &&
		len(c.BaseUrl) >= constvars.SpreadsheetURLMinLength
}

// Uploader returns the client as a FileUploader, or nil when the endpoint is
// not configured so the upload endpoint can report it.
func (c *SpreadsheetClient) Uploader() contracts.FileUploader {
	if !c.IsConfigured() {
		return nil
	}
	return c
}

func (c *SpreadsheetClient) FetchAll(ctx context.Context) *models.Snapshot {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("SpreadsheetClient.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	snapshot, err := c.fetchAll(ctx)
	if err != nil {
		c.Log.Error("SpreadsheetClient.FetchAll error fetching household",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	c.Log.Info("SpreadsheetClient.FetchAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(snapshot.Members)),
	)
	return snapshot
}

func (c *SpreadsheetClient) fetchAll(ctx context.Context) (*models.Snapshot, error) {
	if !c.IsConfigured() {
		return nil, exceptions.ErrStoreURLNotConfigured()
	}

	endpoint, err := url.Parse(c.BaseUrl)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	query := endpoint.Query()
	query.Set(constvars.SpreadsheetQueryCacheBuster, strconv.FormatInt(c.now().UnixMilli(), 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrUnexpectedHTTPStatus(resp.StatusCode, spreadsheetSource)
	}

	envelope, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	if envelope.Status != constvars.SpreadsheetStatusSuccess {
		return nil, exceptions.ErrStoreRejected(envelope.Status)
	}
	if envelope.Data == nil {
		return &models.Snapshot{}, nil
	}
	return envelope.Data, nil
}

func (c *SpreadsheetClient) SaveAll(ctx context.Context, snapshot *models.Snapshot) bool {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("SpreadsheetClient.SaveAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.saveAll(ctx, snapshot)
	if err != nil {
		c.Log.Error("SpreadsheetClient.SaveAll error saving household",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}

	c.Log.Info("SpreadsheetClient.SaveAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return true
}

func (c *SpreadsheetClient) saveAll(ctx context.Context, snapshot *models.Snapshot) error {
	if !c.IsConfigured() {
		return exceptions.ErrStoreURLNotConfigured()
	}

	envelope, err := c.post(ctx, saveAllRequest{
		Action:  constvars.SpreadsheetActionSaveAll,
		Payload: snapshot,
	})
	if err != nil {
		return err
	}
	if envelope.Status != constvars.SpreadsheetStatusSuccess {
		return exceptions.ErrStoreRejected(envelope.Status)
	}
	return nil
}

// UploadFile sends the whole file base64 encoded in one request.
func (c *SpreadsheetClient) UploadFile(ctx context.Context, fileName, mimeType string, file io.Reader) *models.UploadResult {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("SpreadsheetClient.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	result, err := c.uploadFile(ctx, fileName, mimeType, file)
	if err != nil {
		c.Log.Error("SpreadsheetClient.UploadFile error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Error(err),
		)
		return nil
	}

	c.Log.Info("SpreadsheetClient.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)
	return result
}

func (c *SpreadsheetClient) uploadFile(ctx context.Context, fileName, mimeType string, file io.Reader) (*models.UploadResult, error) {
	if !c.IsConfigured() {
		return nil, exceptions.ErrStoreURLNotConfigured()
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotReadFile(err)
	}

	envelope, err := c.post(ctx, uploadRequest{
		Action:   constvars.SpreadsheetActionUpload,
		FileName: fileName,
		MimeType: mimeType,
		Base64:   base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return nil, err
	}
	if envelope.Status != constvars.SpreadsheetStatusSuccess {
		return nil, exceptions.ErrStoreRejected(envelope.Status)
	}
	return &models.UploadResult{URL: envelope.URL, FileID: envelope.FileID}, nil
}

// post sends body as text/plain, which the web app accepts without a
// preflight. Only the JSON status decides success.
func (c *SpreadsheetClient) post(ctx context.Context, body interface{}) (*spreadsheetEnvelope, error) {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp.Body)
}

func decodeEnvelope(body io.Reader) (*spreadsheetEnvelope, error) {
	envelope := new(spreadsheetEnvelope)
	if err := json.NewDecoder(body).Decode(envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, spreadsheetSource)
	}
	return envelope, nil
}
