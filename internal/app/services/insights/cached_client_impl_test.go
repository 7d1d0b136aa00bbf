package insights

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockInsightClient struct {
	mock.Mock
}

func (m *mockInsightClient) HealthInsights(ctx context.Context, member models.FamilyMember, language string, growthLogs []models.GrowthLog) []models.HealthInsight {
	args := m.Called(ctx, member, language, growthLogs)
	insights, _ := args.Get(0).([]models.HealthInsight)
	return insights
}

func (m *mockInsightClient) AnalyzeMedicalRecord(ctx context.Context, content, language string) string {
	return m.Called(ctx, content, language).String(0)
}

func (m *mockInsightClient) VaccinationSchedule(ctx context.Context, ageInMonths int, language string) string {
	return m.Called(ctx, ageInMonths, language).String(0)
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

var insightKey = mock.MatchedBy(func(key string) bool {
	return strings.HasPrefix(key, constvars.RedisInsightKeyPrefix+":1:ID:")
})

func TestCachedClient_HealthInsights(t *testing.T) {
	cards := []models.HealthInsight{{Title: "Cek gula darah", Content: "Setahun sekali", Source: "AI", Type: "info"}}

	t.Run("Cache Hit Skips The Provider", func(t *testing.T) {
		client := new(mockInsightClient)
		redis := new(mockRedisRepository)
		redis.On("Get", mock.Anything, insightKey).
			Return(`[{"title":"Cek gula darah","content":"Setahun sekali","source":"AI","type":"info"}]`, nil)
		cached := NewCachedClient(client, redis, time.Hour, zap.NewNop())

		insights := cached.HealthInsights(context.Background(), testMember, constvars.LanguageID, nil)

		assert.Equal(t, cards, insights)
		client.AssertNotCalled(t, "HealthInsights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache Miss Stores Cards", func(t *testing.T) {
		client := new(mockInsightClient)
		client.On("HealthInsights", mock.Anything, testMember, constvars.LanguageID, []models.GrowthLog(nil)).Return(cards)
		redis := new(mockRedisRepository)
		redis.On("Get", mock.Anything, insightKey).Return("", nil)
		redis.On("Set", mock.Anything, insightKey, cards, time.Hour).Return(nil)
		cached := NewCachedClient(client, redis, time.Hour, zap.NewNop())

		insights := cached.HealthInsights(context.Background(), testMember, constvars.LanguageID, nil)

		assert.Equal(t, cards, insights)
		redis.AssertExpectations(t)
	})

	t.Run("Empty Result Is Not Cached", func(t *testing.T) {
		client := new(mockInsightClient)
		client.On("HealthInsights", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.HealthInsight{})
		redis := new(mockRedisRepository)
		redis.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
		cached := NewCachedClient(client, redis, time.Hour, zap.NewNop())

		insights := cached.HealthInsights(context.Background(), testMember, constvars.LanguageID, nil)

		assert.Empty(t, insights)
		redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Profile Change Changes The Key", func(t *testing.T) {
		first, err := insightCacheKey(testMember, constvars.LanguageID, nil)
		assert.NoError(t, err)
		changed := testMember.Clone()
		changed.Allergies[0].Reaction = "Sesak napas"
		second, err := insightCacheKey(changed, constvars.LanguageID, nil)
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Prose Calls Pass Through", func(t *testing.T) {
		client := new(mockInsightClient)
		client.On("AnalyzeMedicalRecord", mock.Anything, "isi", constvars.LanguageEN).Return("analysis")
		cached := NewCachedClient(client, new(mockRedisRepository), time.Hour, zap.NewNop())

		assert.Equal(t, "analysis", cached.AnalyzeMedicalRecord(context.Background(), "isi", constvars.LanguageEN))
	})
}
