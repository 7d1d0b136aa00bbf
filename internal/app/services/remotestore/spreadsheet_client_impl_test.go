package remotestore

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSpreadsheetClient(t *testing.T, handler http.HandlerFunc) *SpreadsheetClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewSpreadsheetClient(server.URL+"/macros/exec", zap.NewNop())
	client.now = func() time.Time { return time.UnixMilli(1709625600000) }
	return client
}

func TestSpreadsheetClient_FetchAll(t *testing.T) {
	t.Run("Success Envelope Yields Data", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "1709625600000", r.URL.Query().Get(constvars.SpreadsheetQueryCacheBuster))
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderAccept))
			_, _ = io.WriteString(w, `{"status":"success","data":{"members":[{"id":"m1","name":"Ayu"}],"records":[{"id":"r1","memberId":"m1","title":"Flu"}]}}`)
		})

		snapshot := client.FetchAll(context.Background())

		require.NotNil(t, snapshot)
		require.Len(t, snapshot.Members, 1)
		assert.Equal(t, "Ayu", snapshot.Members[0].Name)
		require.Len(t, snapshot.Records, 1)
		assert.Equal(t, "Flu", snapshot.Records[0].Title)
	})

	t.Run("Error Status Yields Nil", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"error","message":"sheet missing"}`)
		})

		assert.Nil(t, client.FetchAll(context.Background()))
	})

	t.Run("Non 2xx Yields Nil", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"status":"success","data":{}}`)
		})

		assert.Nil(t, client.FetchAll(context.Background()))
	})

	t.Run("Malformed JSON Yields Nil", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `<html>login</html>`)
		})

		assert.Nil(t, client.FetchAll(context.Background()))
	})

	t.Run("Unreachable Host Yields Nil", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL + "/macros/exec"
		server.Close()

		client := NewSpreadsheetClient(endpoint, zap.NewNop())

		assert.Nil(t, client.FetchAll(context.Background()))
	})
}

func TestSpreadsheetClient_SaveAll(t *testing.T) {
	t.Run("Posts Save All Envelope As Plain Text", func(t *testing.T) {
		var received map[string]json.RawMessage
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, constvars.MIMETextPlainCharsetUTF8, r.Header.Get(constvars.HeaderContentType))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = io.WriteString(w, `{"status":"success"}`)
		})
		snapshot := &models.Snapshot{Members: []models.FamilyMember{{ID: "m1", Name: "Ayu"}}}
		snapshot.Normalize()

		ok := client.SaveAll(context.Background(), snapshot)

		assert.True(t, ok)
		assert.JSONEq(t, `"saveAll"`, string(received["action"]))
		var payload models.Snapshot
		require.NoError(t, json.Unmarshal(received["payload"], &payload))
		assert.Equal(t, "Ayu", payload.Members[0].Name)
		assert.Contains(t, string(received["payload"]), `"homeCareLogs":[]`)
	})

	t.Run("Rejected Write Yields False", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"error"}`)
		})

		assert.False(t, client.SaveAll(context.Background(), &models.Snapshot{}))
	})
}

func TestSpreadsheetClient_UploadFile(t *testing.T) {
	t.Run("Uploads Base64 Content", func(t *testing.T) {
		var received uploadRequest
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = io.WriteString(w, `{"status":"success","url":"https://drive.example/f/abc","fileId":"abc"}`)
		})

		result := client.UploadFile(context.Background(), "lab.pdf", "application/pdf", strings.NewReader("hasil lab"))

		require.NotNil(t, result)
		assert.Equal(t, "https://drive.example/f/abc", result.URL)
		assert.Equal(t, "abc", result.FileID)
		assert.Equal(t, constvars.SpreadsheetActionUpload, received.Action)
		assert.Equal(t, "lab.pdf", received.FileName)
		assert.Equal(t, "application/pdf", received.MimeType)
		decoded, err := base64.StdEncoding.DecodeString(received.Base64)
		require.NoError(t, err)
		assert.Equal(t, "hasil lab", string(decoded))
	})

	t.Run("Failure Yields Nil", func(t *testing.T) {
		client := newTestSpreadsheetClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"error"}`)
		})

		assert.Nil(t, client.UploadFile(context.Background(), "x.png", "image/png", strings.NewReader("x")))
	})
}

func TestSpreadsheetClient_PlaceholderGuard(t *testing.T) {
	endpoints := map[string]func(serverURL string) string{
		"Empty":       func(string) string { return "" },
		"Placeholder": func(serverURL string) string { return serverURL + "/" + constvars.SpreadsheetURLPlaceholder },
		"Too Short":   func(string) string { return "http://a.b/x" },
	}
	for name, endpoint := range endpoints {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				_, _ = io.WriteString(w, `{"status":"success"}`)
			}))
			defer server.Close()

			client := NewSpreadsheetClient(endpoint(server.URL), zap.NewNop())

			assert.False(t, client.IsConfigured())
			assert.Nil(t, client.Uploader())
			assert.Nil(t, client.FetchAll(context.Background()))
			assert.False(t, client.SaveAll(context.Background(), &models.Snapshot{}))
			assert.Nil(t, client.UploadFile(context.Background(), "a.png", "image/png", strings.NewReader("a")))
			assert.Zero(t, hits.Load())
		})
	}
}

func TestSpreadsheetClient_Uploader(t *testing.T) {
	client := NewSpreadsheetClient("https://script.google.com/macros/s/deployment/exec", zap.NewNop())

	require.True(t, client.IsConfigured())
	assert.Same(t, client, client.Uploader())
}
