package insights

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const insightSource = "insight service"

var errInvalidResponseJSON = errors.New("response body is not valid JSON")

// GeminiClient calls the generateContent REST endpoint. Failures never leave
// this type: cards degrade to an empty slice and prose to a fixed message.
type GeminiClient struct {
	BaseUrl string
	APIKey  string
	Model   string
	Client  *http.Client
	Log     *zap.Logger
	now     func() time.Time
}

var _ contracts.InsightClient = (*GeminiClient)(nil)

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type insightsEnvelope struct {
	Insights []models.HealthInsight `json:"insights"`
}

func NewGeminiClient(baseUrl, apiKey, model string, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{},
		Log:     logger,
		now:     time.Now,
	}
}

func (c *GeminiClient) HealthInsights(ctx context.Context, member models.FamilyMember, language string, growthLogs []models.GrowthLog) []models.HealthInsight {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("GeminiClient.HealthInsights called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, member.ID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	text, err := c.generate(ctx, generateContentRequest{
		Contents: []content{userContent(healthInsightsPrompt(member, language, growthLogs, c.now()))},
		GenerationConfig: &generationConfig{
			ResponseMimeType: constvars.MIMEApplicationJSON,
			ResponseSchema:   insightsSchema,
		},
	})
	if err != nil {
		c.Log.Error("GeminiClient.HealthInsights error generating insights",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMemberIDKey, member.ID),
			zap.Error(err),
		)
		return []models.HealthInsight{}
	}

	if strings.TrimSpace(text) == "" {
		return []models.HealthInsight{}
	}
	var envelope insightsEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		c.Log.Error("GeminiClient.HealthInsights error decoding insight cards",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMemberIDKey, member.ID),
			zap.Error(exceptions.ErrDecodeResponse(err, insightSource)),
		)
		return []models.HealthInsight{}
	}
	if envelope.Insights == nil {
		return []models.HealthInsight{}
	}

	c.Log.Info("GeminiClient.HealthInsights succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, member.ID),
		zap.Int(constvars.LoggingCountKey, len(envelope.Insights)),
	)
	return envelope.Insights
}

func (c *GeminiClient) AnalyzeMedicalRecord(ctx context.Context, recordContent, language string) string {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("GeminiClient.AnalyzeMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	text, err := c.generate(ctx, generateContentRequest{
		Contents:          []content{userContent(analyzeRecordPrompt(recordContent, language))},
		SystemInstruction: &content{Parts: []contentPart{{Text: analyzeSystemInstruction}}},
	})
	if err != nil {
		c.Log.Error("GeminiClient.AnalyzeMedicalRecord error generating analysis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return analyzeFailedMessage(language)
	}

	c.Log.Info("GeminiClient.AnalyzeMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLenKey, len(text)),
	)
	return text
}

func (c *GeminiClient) VaccinationSchedule(ctx context.Context, ageInMonths int, language string) string {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("GeminiClient.VaccinationSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAgeInMonthsKey, ageInMonths),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	text, err := c.generate(ctx, generateContentRequest{
		Contents:          []content{userContent(vaccinationSchedulePrompt(ageInMonths, language))},
		SystemInstruction: &content{Parts: []contentPart{{Text: scheduleSystemInstruction}}},
	})
	if err != nil {
		c.Log.Error("GeminiClient.VaccinationSchedule error generating schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return scheduleFailedMessage(language)
	}

	c.Log.Info("GeminiClient.VaccinationSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLenKey, len(text)),
	)
	return text
}

// generate returns the concatenated text of the first candidate.
func (c *GeminiClient) generate(ctx context.Context, request generateContentRequest) (string, error) {
	if c.APIKey == "" {
		return "", exceptions.ErrInsightNotConfigured()
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.BaseUrl, c.Model)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderGoogAPIKey, c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrUnexpectedHTTPStatus(resp.StatusCode, insightSource)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrDecodeResponse(err, insightSource)
	}
	if !gjson.ValidBytes(body) {
		return "", exceptions.ErrDecodeResponse(errInvalidResponseJSON, insightSource)
	}
	if !gjson.GetBytes(body, "candidates.0").Exists() {
		return "", exceptions.ErrInsightEmptyResponse()
	}

	var text strings.Builder
	for _, part := range gjson.GetBytes(body, "candidates.0.content.parts.#.text").Array() {
		text.WriteString(part.String())
	}
	return text.String(), nil
}

func userContent(prompt string) content {
	return content{Role: "user", Parts: []contentPart{{Text: prompt}}}
}

func analyzeFailedMessage(language string) string {
	if language == constvars.LanguageEN {
		return constvars.InsightAnalyzeFailedMessageEN
	}
	return constvars.InsightAnalyzeFailedMessage
}

func scheduleFailedMessage(language string) string {
	if language == constvars.LanguageEN {
		return constvars.InsightScheduleFailedMessageEN
	}
	return constvars.InsightScheduleFailedMessage
}
