package insights

import (
	"context"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FamilyReporter asks for every member's insights one after another, paced
// by a limiter so a large household does not burst the provider quota.
type FamilyReporter struct {
	Client  contracts.InsightClient
	Limiter *rate.Limiter
	Log     *zap.Logger
}

var _ contracts.InsightReporter = (*FamilyReporter)(nil)

func NewFamilyReporter(client contracts.InsightClient, requestsPerSecond float64, logger *zap.Logger) *FamilyReporter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &FamilyReporter{
		Client:  client,
		Limiter: rate.NewLimiter(limit, 1),
		Log:     logger,
	}
}

func (r *FamilyReporter) FamilyReport(ctx context.Context, members []models.FamilyMember, language string) []models.MemberInsightReport {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("FamilyReporter.FamilyReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(members)),
	)

	reports := make([]models.MemberInsightReport, 0, len(members))
	for _, member := range members {
		insights := []models.HealthInsight{}
		if err := r.Limiter.Wait(ctx); err != nil {
			r.Log.Error("FamilyReporter.FamilyReport error waiting for limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMemberIDKey, member.ID),
				zap.Error(err),
			)
		} else {
			insights = r.Client.HealthInsights(ctx, member, language, nil)
		}
		reports = append(reports, models.MemberInsightReport{Member: member, Insights: insights})
	}

	r.Log.Info("FamilyReporter.FamilyReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(reports)),
	)
	return reports
}
