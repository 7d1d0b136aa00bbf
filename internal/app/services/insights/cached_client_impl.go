package insights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// CachedClient keeps insight cards in Redis keyed by member, language and a
// digest of everything the prompt is built from. Empty results are not
// cached, so a failed call is retried on the next request.
type CachedClient struct {
	contracts.InsightClient
	Redis contracts.RedisRepository
	TTL   time.Duration
	Log   *zap.Logger
}

var _ contracts.InsightClient = (*CachedClient)(nil)

func NewCachedClient(client contracts.InsightClient, redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) *CachedClient {
	return &CachedClient{
		InsightClient: client,
		Redis:         redisRepository,
		TTL:           ttl,
		Log:           logger,
	}
}

func (c *CachedClient) HealthInsights(ctx context.Context, member models.FamilyMember, language string, growthLogs []models.GrowthLog) []models.HealthInsight {
	requestID := utils.GetRequestID(ctx)
	key, err := insightCacheKey(member, language, growthLogs)
	if err != nil {
		c.Log.Error("CachedClient.HealthInsights error building cache key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return c.InsightClient.HealthInsights(ctx, member, language, growthLogs)
	}

	if cached := c.lookup(ctx, key); cached != nil {
		c.Log.Info("CachedClient.HealthInsights served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		return cached
	}

	insights := c.InsightClient.HealthInsights(ctx, member, language, growthLogs)
	if len(insights) == 0 {
		return insights
	}

	if err := c.Redis.Set(ctx, key, insights, c.TTL); err != nil {
		c.Log.Error("CachedClient.HealthInsights error caching insights",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return insights
}

func (c *CachedClient) lookup(ctx context.Context, key string) []models.HealthInsight {
	data, err := c.Redis.Get(ctx, key)
	if err != nil {
		c.Log.Error("CachedClient.lookup error reading cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil
	}
	if data == "" {
		return nil
	}

	var insights []models.HealthInsight
	if err := json.Unmarshal([]byte(data), &insights); err != nil || len(insights) == 0 {
		return nil
	}
	return insights
}

func insightCacheKey(member models.FamilyMember, language string, growthLogs []models.GrowthLog) (string, error) {
	profile, err := json.Marshal(struct {
		Member     models.FamilyMember `json:"member"`
		GrowthLogs []models.GrowthLog  `json:"growthLogs"`
	}{member, growthLogs})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(profile)
	return fmt.Sprintf("%s:%s:%s:%s", constvars.RedisInsightKeyPrefix, member.ID, language, hex.EncodeToString(digest[:8])), nil
}
